package rewrite

import (
	"fmt"

	"fortio.org/safecast"
)

// SegmentKind classifies a contiguous span of source text. Only SegCode
// spans are ever rewritten; everything else passes through byte-for-byte.
type SegmentKind uint8

const (
	// SegCode is ordinary code subject to alias substitution.
	SegCode SegmentKind = iota
	// SegString is a single- or double-quoted string literal.
	SegString
	// SegTemplate is the literal part of a template string, including the
	// backtick delimiters and the ${ } interpolation markers. Interpolation
	// interiors are emitted as SegCode.
	SegTemplate
	// SegLineComment is a // comment up to (not including) the newline.
	SegLineComment
	// SegBlockComment is a /* */ comment.
	SegBlockComment
)

// Segment is a classified half-open byte range [Start, End) of the input.
type Segment struct {
	Kind  SegmentKind
	Start uint32
	End   uint32
}

// Scan splits src into classified segments. The scan is total: unterminated
// literals and comments simply run to the end of input (or, for quoted
// strings, to the end of line); well-formedness is the downstream
// toolchain's problem, not ours.
func Scan(src []byte) []Segment {
	n, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}

	segs := make([]Segment, 0, 8)
	add := func(kind SegmentKind, start, end uint32) {
		if end > start {
			segs = append(segs, Segment{Kind: kind, Start: start, End: end})
		}
	}

	// interp holds the brace depth of each open template interpolation;
	// a '}' at depth 0 closes the innermost interpolation and resumes the
	// enclosing template literal.
	var interp []uint32

	var i, codeStart uint32
	for i < n {
		b := src[i]
		switch {
		case b == '/' && i+1 < n && src[i+1] == '/':
			add(SegCode, codeStart, i)
			j := i + 2
			for j < n && src[j] != '\n' {
				j++
			}
			add(SegLineComment, i, j)
			i, codeStart = j, j

		case b == '/' && i+1 < n && src[i+1] == '*':
			add(SegCode, codeStart, i)
			j := i + 2
			for j < n {
				if src[j] == '*' && j+1 < n && src[j+1] == '/' {
					j += 2
					break
				}
				j++
			}
			add(SegBlockComment, i, j)
			i, codeStart = j, j

		case b == '\'' || b == '"':
			add(SegCode, codeStart, i)
			j := scanQuoted(src, i, n)
			add(SegString, i, j)
			i, codeStart = j, j

		case b == '`':
			add(SegCode, codeStart, i)
			j, open := scanTemplateChunk(src, i+1, n)
			add(SegTemplate, i, j)
			if open {
				interp = append(interp, 0)
			}
			i, codeStart = j, j

		case b == '{' && len(interp) > 0:
			interp[len(interp)-1]++
			i++

		case b == '}' && len(interp) > 0:
			top := len(interp) - 1
			if interp[top] > 0 {
				interp[top]--
				i++
				break
			}
			// Closing '}' of the interpolation: it belongs to the template.
			add(SegCode, codeStart, i)
			interp = interp[:top]
			j, open := scanTemplateChunk(src, i+1, n)
			add(SegTemplate, i, j)
			if open {
				interp = append(interp, 0)
			}
			i, codeStart = j, j

		default:
			i++
		}
	}
	add(SegCode, codeStart, n)
	return segs
}

// scanQuoted consumes a ' or " literal starting at start. Returns the offset
// one past the closing quote. A bare newline terminates the literal without
// consuming the newline.
func scanQuoted(src []byte, start, n uint32) uint32 {
	quote := src[start]
	i := start + 1
	for i < n {
		switch src[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1
		case '\n':
			return i
		default:
			i++
		}
	}
	return n
}

// scanTemplateChunk consumes template-literal text from start until either
// the closing backtick (openInterp false) or a "${" interpolation opener
// (openInterp true). The returned offset is one past whichever delimiter
// ended the chunk.
func scanTemplateChunk(src []byte, start, n uint32) (end uint32, openInterp bool) {
	i := start
	for i < n {
		switch src[i] {
		case '\\':
			i += 2
		case '`':
			return i + 1, false
		case '$':
			if i+1 < n && src[i+1] == '{' {
				return i + 2, true
			}
			i++
		default:
			i++
		}
	}
	return n, false
}
