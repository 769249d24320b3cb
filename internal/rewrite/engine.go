package rewrite

import (
	"strings"

	"github.com/nullscript-lang/nullscript/internal/keywords"
)

// Engine rewrites NullScript source into canonical TypeScript, token by
// token. It is pure and stateless between calls: safe for concurrent use.
//
// Rewriting happens in one left-to-right walk over classified code spans.
// Per word the passes apply in their required order: function-declaration
// aliases first, then multi-word phrases, then generic single-token
// substitution. Canonical spellings never collide with alias spellings, so
// rewriting already-canonical text is the identity and the walk is
// equivalent to running the three passes sequentially over the whole text.
type Engine struct {
	table *keywords.Table
}

// NewEngine creates an engine over the given keyword table.
func NewEngine(table *keywords.Table) *Engine {
	return &Engine{table: table}
}

// Rewrite translates src from the alias vocabulary into the canonical one.
// It is total: unknown words, malformed code and unterminated literals pass
// through untouched; vocabulary misuse is the validator's concern and
// syntax errors are the external toolchain's.
func (e *Engine) Rewrite(src string) string {
	raw := []byte(src)
	segs := Scan(raw)

	var out strings.Builder
	out.Grow(len(src) + len(src)/8)

	// Brace depth across code spans decides declaration context for the
	// function pass: depth 0 is top level, anything deeper is member or
	// shorthand position. Strings, comments and template text never count.
	depth := 0
	for _, seg := range segs {
		if seg.Kind != SegCode {
			out.Write(raw[seg.Start:seg.End])
			continue
		}
		e.rewriteCode(&out, raw, seg, &depth)
	}
	return out.String()
}

func (e *Engine) rewriteCode(out *strings.Builder, src []byte, seg Segment, depth *int) {
	i := seg.Start
	for i < seg.End {
		b := src[i]
		switch {
		case b == '{':
			*depth++
			out.WriteByte(b)
			i++
		case b == '}':
			if *depth > 0 {
				*depth--
			}
			out.WriteByte(b)
			i++
		case isDigit(b):
			// A digit-led run is one token; "123fr" contains no alias.
			j := identEnd(src, i, seg.End)
			out.Write(src[i:j])
			i = j
		case isIdentStart(b):
			j := identEnd(src, i, seg.End)
			i = e.rewriteWord(out, src, seg, i, j, *depth)
		default:
			out.WriteByte(b)
			i++
		}
	}
}

// rewriteWord handles one whole identifier word [start, wend) and returns
// the offset to continue from.
func (e *Engine) rewriteWord(out *strings.Builder, src []byte, seg Segment, start, wend uint32, depth int) uint32 {
	word := string(src[start:wend])

	if canon, ok := e.table.FuncDecl()[word]; ok {
		return e.rewriteFuncDecl(out, src, seg, canon, wend, depth)
	}

	if canon, ok := e.table.MultiWord()[word]; ok {
		// The phrase form needs trailing whitespace, newlines included;
		// collapse it to the single space the canonical phrase carries.
		k := skipLineSpace(src, wend, seg.End)
		if k > wend {
			out.WriteString(canon)
			out.WriteByte(' ')
			return k
		}
		out.WriteString(word)
		return wend
	}

	if word == keywords.DeleteAlias {
		// The canonical deletion keyword takes an operand expression;
		// match "remove <path>" as a unit and re-emit the operand.
		if k := skipLineSpace(src, wend, seg.End); k > wend && k < seg.End && isIdentStart(src[k]) {
			canon, _ := e.table.Lookup(word)
			out.WriteString(canon)
			out.WriteByte(' ')
			return k
		}
		out.WriteString(word)
		return wend
	}

	if canon, ok := e.table.Lookup(word); ok {
		out.WriteString(canon)
		return wend
	}

	out.WriteString(word)
	return wend
}

// rewriteFuncDecl handles a function-declaration alias. The asynchronous
// alias always becomes its two-word canonical form. The synchronous alias
// depends on declaration context when followed by an identifier and a
// parameter list: top level keeps the keyword, member position drops it
// (method shorthand needs none).
func (e *Engine) rewriteFuncDecl(out *strings.Builder, src []byte, seg Segment, canon string, wend uint32, depth int) uint32 {
	if strings.ContainsRune(canon, ' ') {
		out.WriteString(canon)
		return wend
	}

	k := skipLineSpace(src, wend, seg.End)
	if k > wend && k < seg.End && isIdentStart(src[k]) && e.declaresFunction(src, seg, k) {
		if depth == 0 {
			out.WriteString(canon)
			out.WriteByte(' ')
		}
		return k
	}
	// Anonymous form "feels (...)" or bare use as a value: plain keyword.
	out.WriteString(canon)
	return wend
}

// declaresFunction reports whether an identifier at i is followed by an
// optional generic-parameter list and an opening parameter list.
func (e *Engine) declaresFunction(src []byte, seg Segment, i uint32) bool {
	p := skipSpaces(src, identEnd(src, i, seg.End), seg.End)
	if p < seg.End && src[p] == '<' {
		q := p + 1
		for q < seg.End && src[q] != '>' && src[q] != '\n' {
			q++
		}
		if q >= seg.End || src[q] != '>' {
			return false
		}
		p = skipSpaces(src, q+1, seg.End)
	}
	return p < seg.End && src[p] == '('
}
