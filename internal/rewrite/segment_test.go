package rewrite_test

import (
	"strings"
	"testing"

	"github.com/nullscript-lang/nullscript/internal/rewrite"
)

func kindName(k rewrite.SegmentKind) string {
	switch k {
	case rewrite.SegCode:
		return "code"
	case rewrite.SegString:
		return "str"
	case rewrite.SegTemplate:
		return "tpl"
	case rewrite.SegLineComment:
		return "line"
	case rewrite.SegBlockComment:
		return "block"
	}
	return "?"
}

// render flattens a scan into "kind(text)" tokens for easy comparison.
func render(src string) string {
	var b strings.Builder
	for i, seg := range rewrite.Scan([]byte(src)) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kindName(seg.Kind))
		b.WriteByte('(')
		b.WriteString(src[seg.Start:seg.End])
		b.WriteByte(')')
	}
	return b.String()
}

func TestScanClassification(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			"plain code",
			"maybe x = 1;",
			"code(maybe x = 1;)",
		},
		{
			"double quoted string",
			`a("hi")b`,
			`code(a() str("hi") code()b)`,
		},
		{
			"escaped quote stays inside",
			`x = "a\"b";`,
			`code(x = ) str("a\"b") code(;)`,
		},
		{
			"line comment to end of line",
			"a; // rest\nb;",
			"code(a; ) line(// rest) code(\nb;)",
		},
		{
			"block comment",
			"a /* mid */ b",
			"code(a ) block(/* mid */) code( b)",
		},
		{
			"unterminated block comment runs to end",
			"a /* open",
			"code(a ) block(/* open)",
		},
		{
			"unterminated string stops at newline",
			"x = \"open\ny;",
			"code(x = ) str(\"open) code(\ny;)",
		},
		{
			"template without interpolation",
			"x = `hi`;",
			"code(x = ) tpl(`hi`) code(;)",
		},
		{
			"template interpolation interior is code",
			"x = `a ${b} c`;",
			"code(x = ) tpl(`a ${) code(b) tpl(} c`) code(;)",
		},
		{
			"nested braces inside interpolation",
			"`${ {k: v} }`",
			"tpl(`${) code( {k: v} ) tpl(}`)",
		},
		{
			"comment markers inside string are text",
			`s = "// not a comment";`,
			`code(s = ) str("// not a comment") code(;)`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := render(tc.src); got != tc.want {
				t.Fatalf("Scan(%q)\n got: %s\nwant: %s", tc.src, got, tc.want)
			}
		})
	}
}

func TestScanCoversEveryByte(t *testing.T) {
	src := "feels f() { pls `a ${x /* c */} b`; } // done"
	segs := rewrite.Scan([]byte(src))
	var next uint32
	for _, seg := range segs {
		if seg.Start != next {
			t.Fatalf("gap before segment at %d, previous ended at %d", seg.Start, next)
		}
		if seg.End <= seg.Start {
			t.Fatalf("empty segment at %d", seg.Start)
		}
		next = seg.End
	}
	if int(next) != len(src) {
		t.Fatalf("segments end at %d, source length %d", next, len(src))
	}
}
