package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// DocumentVersion is the schema version written by Snapshot.
const DocumentVersion = 1

// ErrCatalogMismatch is returned by Verify when a document disagrees with
// the compiled-in catalog.
var ErrCatalogMismatch = errors.New("catalog mismatch")

// Document is a serializable snapshot of the catalog. Null phase codes are
// nil pointers: JSON writes them as null and TOML omits the key, while empty
// codes are kept as "".
type Document struct {
	Catalog Header   `toml:"catalog" json:"catalog"`
	Shells  []Record `toml:"shell" json:"shells"`
}

// Header describes the document itself.
type Header struct {
	Version int    `toml:"version" json:"version"`
	Units   string `toml:"units" json:"units"`
	Count   int    `toml:"count" json:"count"`
}

// Record is one catalog entry in document form.
type Record struct {
	Name          string  `toml:"name" json:"name"`
	DefaultRadius float64 `toml:"default_radius" json:"default_radius"`
	TempPCode     *string `toml:"temp_p_code,omitempty" json:"temp_p_code"`
	TempSCode     *string `toml:"temp_s_code,omitempty" json:"temp_s_code"`
}

// NewRecord converts an Entry to its document form.
func NewRecord(e Entry) Record {
	return Record{
		Name:          e.Name,
		DefaultRadius: e.DefaultRadius,
		TempPCode:     e.TempPCode.ptr(),
		TempSCode:     e.TempSCode.ptr(),
	}
}

// Entry converts the record back to an Entry.
func (r Record) Entry() Entry {
	return Entry{
		Name:          r.Name,
		DefaultRadius: r.DefaultRadius,
		TempPCode:     codeFromPtr(r.TempPCode),
		TempSCode:     codeFromPtr(r.TempSCode),
	}
}

// Snapshot builds a document holding the given shells, or the whole catalog
// when none are given.
func Snapshot(shells ...Shell) *Document {
	if len(shells) == 0 {
		shells = All()
	}
	doc := &Document{
		Catalog: Header{Version: DocumentVersion, Units: "km"},
		Shells:  make([]Record, 0, len(shells)),
	}
	for _, s := range shells {
		doc.Shells = append(doc.Shells, NewRecord(s.Entry()))
	}
	doc.Catalog.Count = len(doc.Shells)
	return doc
}

// Load reads a catalog document from the given TOML file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &doc, nil
}

// Save writes the document to path as TOML, creating parent directories as
// needed.
func Save(path string, doc *Document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Verify checks that every record matches the compiled-in entry of the same
// name and that the document lists the full catalog exactly once. The first
// problem found is returned wrapped in ErrCatalogMismatch.
func (d *Document) Verify() error {
	if d.Catalog.Count != len(d.Shells) {
		return fmt.Errorf("%w: header count %d, %d records", ErrCatalogMismatch, d.Catalog.Count, len(d.Shells))
	}
	if len(d.Shells) != Len() {
		return fmt.Errorf("%w: %d records, want %d", ErrCatalogMismatch, len(d.Shells), Len())
	}

	seen := make(map[Shell]bool, len(d.Shells))
	for _, r := range d.Shells {
		s, err := Parse(r.Name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCatalogMismatch, err)
		}
		if r.Name != s.String() {
			return fmt.Errorf("%w: name %q is not canonical, want %q", ErrCatalogMismatch, r.Name, s.String())
		}
		if seen[s] {
			return fmt.Errorf("%w: duplicate record %s", ErrCatalogMismatch, s)
		}
		seen[s] = true

		got, want := r.Entry(), s.Entry()
		if got.DefaultRadius != want.DefaultRadius {
			return fmt.Errorf("%w: %s radius %g, want %g", ErrCatalogMismatch, s, got.DefaultRadius, want.DefaultRadius)
		}
		if got.TempPCode != want.TempPCode {
			return fmt.Errorf("%w: %s P code %s, want %s", ErrCatalogMismatch, s, quoted(got.TempPCode), quoted(want.TempPCode))
		}
		if got.TempSCode != want.TempSCode {
			return fmt.Errorf("%w: %s S code %s, want %s", ErrCatalogMismatch, s, quoted(got.TempSCode), quoted(want.TempSCode))
		}
	}
	return nil
}

func quoted(p PhaseCode) string {
	if code, ok := p.Get(); ok {
		return fmt.Sprintf("%q", code)
	}
	return p.String()
}
