// Package tsdiag translates raw TypeScript compiler output back into the
// NullScript vocabulary. The external toolchain only ever sees rewritten
// canonical code, so its diagnostics name canonical keywords and synthetic
// .ts paths; this package maps them onto the .ns source the user wrote.
package tsdiag

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nullscript-lang/nullscript/internal/diag"
)

var (
	// "path/to/file.ts:12:1 - error TS1434: ..." is the compiler's pretty
	// format; ":12:1" alone covers terse single-line output.
	locRe      = regexp.MustCompile(`([\w./\\-]+\.ts):(\d+):(\d+)\s*-\s*error`)
	bareLocRe  = regexp.MustCompile(`:(\d+):(\d+)`)
	tsErrRe    = regexp.MustCompile(`error TS(\d+):\s*(.+)`)
	tsPrefixRe = regexp.MustCompile(`error TS\d+:\s*`)
)

// Translate converts raw compiler output into a NullScript error attached
// to nsPath. Translation is total: output nothing in the catalog explains
// still comes back as a cleaned-up generic error. The returned kind is
// Syntax for vocabulary-level mistakes the catalog recognizes, Type for
// unexplained TS2xxx checker diagnostics and Generic otherwise.
func Translate(raw, nsPath string) *diag.TranspileError {
	line, col := extractLocation(raw)
	msg, tsCode := extractMessage(raw)

	for _, m := range catalog() {
		if strings.Contains(msg, m.pattern) {
			return diag.NewTranspileError(diag.KindSyntax, m.message).
				WithHint(m.hint).
				WithLocation(nsPath, line, col)
		}
	}

	clean := cleanup(msg)
	if tsCode >= 2000 && tsCode < 3000 {
		return diag.NewTranspileError(diag.KindType, clean).
			WithLocation(nsPath, line, col)
	}
	return diag.NewTranspileError(diag.KindGeneric, "Transpilation error: "+clean).
		WithHint("This might be due to incorrect NullScript syntax. Run 'nsc keywords' to see available keywords.").
		WithLocation(nsPath, line, col)
}

// extractLocation pulls the first line:column pair out of the output.
// Missing locations come back as zero, which the error formatter omits.
func extractLocation(raw string) (line, col int) {
	if m := locRe.FindStringSubmatch(raw); m != nil {
		line, _ = strconv.Atoi(m[2])
		col, _ = strconv.Atoi(m[3])
		return line, col
	}
	if m := bareLocRe.FindStringSubmatch(raw); m != nil {
		line, _ = strconv.Atoi(m[1])
		col, _ = strconv.Atoi(m[2])
		return line, col
	}
	return 0, 0
}

// extractMessage returns the text of the first "error TSxxxx:" line and its
// numeric code, or the raw output and zero when no such line exists.
func extractMessage(raw string) (string, int) {
	for _, ln := range strings.Split(raw, "\n") {
		m := tsErrRe.FindStringSubmatch(ln)
		if m == nil {
			continue
		}
		code, _ := strconv.Atoi(m[1])
		return m[2], code
	}
	return raw, 0
}

// cleanup strips compiler noise from an untranslated message: TS code
// prefixes, stack-trace lines, node runtime chatter. At most three lines
// survive.
func cleanup(msg string) string {
	msg = tsPrefixRe.ReplaceAllString(msg, "")
	var kept []string
	for _, ln := range strings.Split(msg, "\n") {
		trimmed := strings.TrimSpace(ln)
		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "at "):
		case strings.Contains(trimmed, "Command failed:"):
		case strings.Contains(trimmed, "(node:"):
		default:
			kept = append(kept, trimmed)
		}
		if len(kept) == 3 {
			break
		}
	}
	return strings.Join(kept, "\n")
}
