package rewrite

import (
	"fmt"
	"strings"

	"github.com/nullscript-lang/nullscript/internal/diag"
	"github.com/nullscript-lang/nullscript/internal/keywords"
	"github.com/nullscript-lang/nullscript/internal/source"
)

// Validator is the pre-rewrite gate: it rejects source that spells canonical
// keywords directly instead of using the alias vocabulary, and statements
// led by unknown words. It is a heuristic line scan, not a parse; false
// negatives are fine, the external toolchain catches real syntax errors.
type Validator struct {
	table *keywords.Table
}

// NewValidator creates a validator over the given keyword table.
func NewValidator(table *keywords.Table) *Validator {
	return &Validator{table: table}
}

// Validate scans the file line by line, reporting every violation to r.
// Returns true when the file is clean. Text inside strings and comments is
// never inspected.
func (v *Validator) Validate(f *source.File, r diag.Reporter) bool {
	src := f.Content
	code := codeMask(src)

	clean := true
	var lineStart uint32
	for lineStart <= uint32(len(src)) {
		lineEnd := lineStart
		for lineEnd < uint32(len(src)) && src[lineEnd] != '\n' {
			lineEnd++
		}
		if v.checkLine(f, r, code, lineStart, lineEnd) {
			clean = false
		}
		if lineEnd >= uint32(len(src)) {
			break
		}
		lineStart = lineEnd + 1
	}
	return clean
}

// checkLine reports at most one violation for the line [start, end).
func (v *Validator) checkLine(f *source.File, r diag.Reporter, code []bool, start, end uint32) bool {
	src := f.Content
	first := skipSpaces(src, start, end)
	if first >= end {
		return false
	}
	// Lines that begin inside a comment, string or template are not code.
	if !code[first] {
		return false
	}

	for _, fu := range keywords.ForbiddenUses() {
		if at, ok := v.findForbidden(src, code, fu, start, end); ok {
			sp := source.Span{File: f.ID, Start: at, End: at + uint32(len(fu.Keyword))}
			r.Report(diag.VocCanonicalKeyword, diag.SevError, sp,
				fmt.Sprintf("using %q instead of %q", fu.Keyword, fu.Alias),
				[]diag.Note{{Span: sp, Msg: "run 'nsc keywords' to see the NullScript vocabulary"}})
			return true
		}
	}

	return v.checkUnknownLeadingWord(f, r, start, end, first)
}

// findForbidden locates a whole-word occurrence of fu.Keyword in the line
// that matches the required form and sits in code (not string/comment).
func (v *Validator) findForbidden(src []byte, code []bool, fu keywords.ForbiddenUse, start, end uint32) (uint32, bool) {
	line := string(src[start:end])
	kw := fu.Keyword
	from := 0
	for {
		rel := strings.Index(line[from:], kw)
		if rel < 0 {
			return 0, false
		}
		at := start + uint32(from+rel)
		after := at + uint32(len(kw))
		from += rel + len(kw)

		if !code[at] {
			continue
		}
		if at > start && isIdentContinue(src[at-1]) {
			continue
		}
		if after < end && isIdentContinue(src[after]) {
			continue
		}
		if matchForm(src, fu.Form, after, end) {
			return at, true
		}
	}
}

func matchForm(src []byte, form keywords.ForbiddenForm, after, end uint32) bool {
	k := skipSpaces(src, after, end)
	switch form {
	case keywords.FormBare:
		return true
	case keywords.FormIdent:
		return k > after && k < end && isIdentStart(src[k])
	case keywords.FormParen:
		return k < end && src[k] == '('
	case keywords.FormBrace:
		return k < end && src[k] == '{'
	case keywords.FormSpace:
		return k > after && k < end
	}
	return false
}

// checkUnknownLeadingWord rejects statements shaped like
// "<word> <identifier> =" when <word> is neither a known alias nor a
// connector word. This catches typos before the rewrite engine silently
// passes them through.
func (v *Validator) checkUnknownLeadingWord(f *source.File, r diag.Reporter, start, end, first uint32) bool {
	src := f.Content
	if !isIdentStart(src[first]) {
		return false
	}
	wordEnd := identEnd(src, first, end)
	word := string(src[first:wordEnd])

	identStart := skipSpaces(src, wordEnd, end)
	if identStart == wordEnd || identStart >= end || !isIdentStart(src[identStart]) {
		return false
	}
	eq := skipSpaces(src, identEnd(src, identStart, end), end)
	if eq >= end || src[eq] != '=' {
		return false
	}

	if v.table.IsAlias(word) {
		return false
	}
	for _, ok := range keywords.ConnectorWords() {
		if word == ok {
			return false
		}
	}

	sp := source.Span{File: f.ID, Start: first, End: wordEnd}
	r.Report(diag.VocUnknownKeyword, diag.SevError, sp,
		fmt.Sprintf("unknown keyword %q", word),
		[]diag.Note{{Span: sp, Msg: "run 'nsc keywords' to see all available options"}})
	return true
}

// codeMask marks every byte that belongs to a code span.
func codeMask(src []byte) []bool {
	mask := make([]bool, len(src))
	for _, seg := range Scan(src) {
		if seg.Kind != SegCode {
			continue
		}
		for i := seg.Start; i < seg.End; i++ {
			mask[i] = true
		}
	}
	return mask
}

// ValidateSource validates in-memory text and returns the first violation
// as a *diag.TranspileError carrying a 1-based line number, or nil.
func (v *Validator) ValidateSource(src, path string) error {
	fs := source.NewFileSet()
	name := path
	if name == "" {
		name = "<input>"
	}
	id := fs.AddVirtual(name, []byte(src))

	bag := diag.NewBag(64)
	if v.Validate(fs.Get(id), diag.BagReporter{Bag: bag}) {
		return nil
	}
	bag.Sort()
	d := bag.Items()[0]
	pos, _ := fs.Resolve(d.Primary)

	terr := diag.NewTranspileError(diag.KindSyntax, d.Message).
		WithLocation(path, int(pos.Line), int(pos.Col))
	if len(d.Notes) > 0 {
		terr = terr.WithHint(d.Notes[0].Msg)
	}
	return terr
}
