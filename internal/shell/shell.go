// Package shell holds the fixed catalog of named Earth-model shells used to
// label layers and discontinuities during travel-time table construction.
// Each shell carries a default radius in kilometres and the temporary P and
// S phase codes assigned to it before final phase naming.
//
// The catalog is compiled in and never changes, so every accessor is safe
// for concurrent use without synchronization.
package shell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownShell is returned when a name does not match any catalog entry.
var ErrUnknownShell = errors.New("unknown shell")

// Shell identifies one entry of the catalog.
type Shell int

const (
	Center              Shell = iota // Degenerate placeholder at the Earth's centre.
	InnerCore                        // Top of the inner core.
	OuterCore                        // Top of the outer core.
	LowerMantle                      // Top of the lower mantle.
	UpperMantle                      // Top of the upper mantle.
	LowerCrust                       // Top of the lower crust.
	UpperCrust                       // Top of the upper crust.
	InnerCoreBoundary                // Inner core boundary reflector.
	CoreMantleBoundary               // Core-mantle boundary reflector.
	MohoDiscontinuity                // Mohorovičić discontinuity.
	ConradDiscontinuity              // Conrad discontinuity; no phase codes.
	Surface                          // Free surface.
	CoreTop                          // Core side of the core-mantle boundary.
	MantleBottom                     // Mantle side of the core-mantle boundary.

	numShells int = iota
)

// Entry is the constant record behind a Shell.
type Entry struct {
	Name          string    `json:"name"`
	DefaultRadius float64   `json:"default_radius"` // km from the Earth's centre
	TempPCode     PhaseCode `json:"temp_p_code"`
	TempSCode     PhaseCode `json:"temp_s_code"`
}

// catalog is indexed by Shell and must stay in the same order as the
// constants above.
var catalog = [numShells]Entry{
	Center:              {"CENTER", 0, Code(""), Code("")},
	InnerCore:           {"INNER_CORE", 1217, Code("tPKPdf"), Code("tSKSdf")},
	OuterCore:           {"OUTER_CORE", 3482, Code("tPKPab"), Code("tSKSab")},
	LowerMantle:         {"LOWER_MANTLE", 5961, Code("tP"), Code("tS")},
	UpperMantle:         {"UPPER_MANTLE", 6336, Code("tPn"), Code("tSn")},
	LowerCrust:          {"LOWER_CRUST", 6351, Code("tPb"), Code("tSb")},
	UpperCrust:          {"UPPER_CRUST", 6371, Code("tPg"), Code("tSg")},
	InnerCoreBoundary:   {"INNER_CORE_BOUNDARY", 1217, Code("rPKiKP"), Code("rSKiKS")},
	CoreMantleBoundary:  {"CORE_MANTLE_BOUNDARY", 3482, Code(""), Code("rScS")},
	MohoDiscontinuity:   {"MOHO_DISCONTINUITY", 6336, Code("rPmP"), Code("rSmS")},
	ConradDiscontinuity: {"CONRAD_DISCONTINUITY", 6351, NoCode, NoCode},
	Surface:             {"SURFACE", 6371, Code(""), Code("")},
	CoreTop:             {"CORE_TOP", 3482, Code(""), Code("")},
	MantleBottom:        {"MANTLE_BOTTOM", 3482, Code(""), Code("")},
}

var byName = func() map[string]Shell {
	m := make(map[string]Shell, numShells)
	for i, e := range catalog {
		m[e.Name] = Shell(i)
	}
	return m
}()

// Valid reports whether s is one of the catalog entries.
func (s Shell) Valid() bool {
	return s >= 0 && int(s) < numShells
}

// String returns the catalog name of the shell, e.g. "MOHO_DISCONTINUITY".
func (s Shell) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return catalog[s].Name
}

// Entry returns the full record for s. It returns the zero Entry for values
// outside the catalog.
func (s Shell) Entry() Entry {
	if !s.Valid() {
		return Entry{}
	}
	return catalog[s]
}

// DefaultRadius returns the nominal radius of the shell in kilometres.
func (s Shell) DefaultRadius() float64 {
	return s.Entry().DefaultRadius
}

// TempPCode returns the temporary P phase code. ok is false when the shell
// has no P code at all, which is different from a defined empty code.
func (s Shell) TempPCode() (code string, ok bool) {
	return s.Entry().TempPCode.Get()
}

// TempSCode is the S-wave counterpart of TempPCode.
func (s Shell) TempSCode() (code string, ok bool) {
	return s.Entry().TempSCode.Get()
}

// IsDiscontinuity reports whether s names a boundary or the surface rather
// than the top of a layer.
func (s Shell) IsDiscontinuity() bool {
	switch s {
	case InnerCoreBoundary, CoreMantleBoundary, MohoDiscontinuity, ConradDiscontinuity, Surface:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Shell) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShell, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shell) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Parse looks up a shell by name. Matching ignores case and accepts '-' in
// place of '_', so "moho-discontinuity" resolves to MohoDiscontinuity.
func Parse(name string) (Shell, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	if s, ok := byName[key]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownShell, name)
}

// Len returns the number of catalog entries.
func Len() int {
	return numShells
}

// All returns every shell in catalog order.
func All() []Shell {
	out := make([]Shell, numShells)
	for i := range out {
		out[i] = Shell(i)
	}
	return out
}

// Entries returns a copy of every record in catalog order.
func Entries() []Entry {
	out := make([]Entry, numShells)
	copy(out, catalog[:])
	return out
}

// AtRadius returns the shells whose default radius equals km, in catalog
// order. Several entries share a radius where boundaries coincide.
func AtRadius(km float64) []Shell {
	var out []Shell
	for i, e := range catalog {
		if e.DefaultRadius == km {
			out = append(out, Shell(i))
		}
	}
	return out
}
