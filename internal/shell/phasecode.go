package shell

import "encoding/json"

// PhaseCode is a temporary phase label that may be absent. The zero value is
// NoCode; Code("") is a defined but blank label.
type PhaseCode struct {
	code    string
	defined bool
}

// NoCode marks a shell for which a phase code is not meaningful.
var NoCode PhaseCode

// Code returns a defined phase code, which may be empty.
func Code(s string) PhaseCode {
	return PhaseCode{code: s, defined: true}
}

// Get returns the label and whether it is defined.
func (p PhaseCode) Get() (string, bool) {
	return p.code, p.defined
}

// Defined reports whether the code exists, even if it is empty.
func (p PhaseCode) Defined() bool {
	return p.defined
}

// String returns the label, or "<none>" for NoCode.
func (p PhaseCode) String() string {
	if !p.defined {
		return "<none>"
	}
	return p.code
}

// ptr converts to the *string form used by the document encoders, where nil
// stands for NoCode.
func (p PhaseCode) ptr() *string {
	if !p.defined {
		return nil
	}
	s := p.code
	return &s
}

func codeFromPtr(s *string) PhaseCode {
	if s == nil {
		return NoCode
	}
	return Code(*s)
}

// MarshalJSON writes a defined code as a string and NoCode as null.
func (p PhaseCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ptr())
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (p *PhaseCode) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = codeFromPtr(s)
	return nil
}
