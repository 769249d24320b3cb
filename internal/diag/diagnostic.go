package diag

import (
	"github.com/nullscript-lang/nullscript/internal/source"
)

// Note attaches secondary context to a diagnostic, e.g. a remediation hint
// naming the alias the user should have written.
type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// WithNote returns a copy of the diagnostic with an extra note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
