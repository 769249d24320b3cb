package diag

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ErrorKind classifies a terminal transpile error.
type ErrorKind uint8

const (
	// KindGeneric is an uncategorized toolchain failure.
	KindGeneric ErrorKind = iota
	// KindSyntax is a syntax-level problem, either caught by the vocabulary
	// validator or reported by the external toolchain.
	KindSyntax
	// KindType is a type error reported by the external toolchain.
	KindType
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "SyntaxError"
	case KindType:
		return "TypeError"
	}
	return "TranspileError"
}

// TranspileError is the terminal, user-facing error of a failed transpile.
// It is immutable once constructed and always returned to the caller;
// presentation (colors, icons) is the caller's concern.
type TranspileError struct {
	Kind    ErrorKind
	Message string
	Hint    string
	Path    string
	Line    int
	Col     int
}

// NewTranspileError constructs a TranspileError without location info.
func NewTranspileError(kind ErrorKind, message string) *TranspileError {
	return &TranspileError{Kind: kind, Message: message}
}

// WithLocation returns a copy carrying file/line/column attribution.
func (e *TranspileError) WithLocation(path string, line, col int) *TranspileError {
	out := *e
	out.Path = path
	out.Line = line
	out.Col = col
	return &out
}

// WithHint returns a copy carrying a remediation hint.
func (e *TranspileError) WithHint(hint string) *TranspileError {
	out := *e
	out.Hint = hint
	return &out
}

// Location renders " in file:line:col" or "" when nothing is known.
func (e *TranspileError) Location() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(" in ")
		b.WriteString(filepath.Base(e.Path))
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
		if e.Col > 0 {
			fmt.Fprintf(&b, ":%d", e.Col)
		}
	}
	return b.String()
}

func (e *TranspileError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(e.Location())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}
