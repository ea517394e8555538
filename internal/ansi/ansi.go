// Package ansi provides ANSI escape code constants for terminal output.
package ansi

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"
	Cyan  = "\033[36m"
)

// Styler applies SGR codes when enabled and passes text through unchanged
// otherwise, so callers can honour a --no-color switch in one place.
type Styler struct {
	Enabled bool
}

// Wrap surrounds s with the given codes followed by Reset.
func (st Styler) Wrap(s string, codes ...string) string {
	if !st.Enabled || len(codes) == 0 {
		return s
	}
	out := ""
	for _, c := range codes {
		out += c
	}
	return out + s + Reset
}
