package rewrite_test

import (
	"testing"

	"github.com/nullscript-lang/nullscript/internal/keywords"
	"github.com/nullscript-lang/nullscript/internal/rewrite"
)

func newEngine(t *testing.T) *rewrite.Engine {
	t.Helper()
	table, err := keywords.New()
	if err != nil {
		t.Fatalf("keywords.New() error: %v", err)
	}
	return rewrite.NewEngine(table)
}

func TestRewriteBasics(t *testing.T) {
	e := newEngine(t)
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"declarations",
			"definitely message = \"Hello\";\nmaybe count = 0;\nmayhap old = 1;",
			"const message = \"Hello\";\nlet count = 0;\nvar old = 1;",
		},
		{
			"conditional with comparison",
			"checkthis (count is 0) {\n  speak.say(message);\n}",
			"if (count === 0) {\n  console.log(message);\n}",
		},
		{
			"values",
			"definitely flags = [fr, cap, nocap, ghost];",
			"const flags = [true, false, null, undefined];",
		},
		{
			"logical operators",
			"checkthis (a and b or not c) { pls fr; }",
			"if (a && b || ! c) { return true; }",
		},
		{
			"class with inheritance",
			"bigbrain Dog inherits Animal {\n}",
			"class Dog extends Animal {\n}",
		},
		{
			"loop keywords",
			"since (maybe i = 0; i less 10; i++) { keepgoing; }",
			"for (let i = 0; i < 10; i++) { continue; }",
		},
		{
			"try catch finally",
			"oops {\n  trigger fresh LoadError();\n} mybad (e) {\n} anyway {\n}",
			"try {\n  throw new LoadError();\n} catch (e) {\n} finally {\n}",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Rewrite(tc.in)
			if got != tc.want {
				t.Fatalf("Rewrite(%q)\n got: %q\nwant: %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRoundTripIdentityOnCanonicalInput(t *testing.T) {
	e := newEngine(t)
	canonical := "const x = 5;\nfunction add(a, b) {\n    return a + b;\n}\nif (x === 5) {\n    console.log(x);\n}\n"
	if got := e.Rewrite(canonical); got != canonical {
		t.Fatalf("canonical input was altered:\n got: %q\nwant: %q", got, canonical)
	}
}

func TestRewriteIdempotent(t *testing.T) {
	e := newEngine(t)
	in := "feels add(a, b) {\n    pls a + b;\n}\ndefinitely x = fr;\n"
	once := e.Rewrite(in)
	twice := e.Rewrite(once)
	if once != twice {
		t.Fatalf("double rewrite differs:\n once: %q\ntwice: %q", once, twice)
	}
}

func TestNoPartialWordCorruption(t *testing.T) {
	e := newEngine(t)
	cases := []struct {
		in   string
		want string
	}{
		{"frfr", "frfr"},
		{"fr_suffix", "fr_suffix"},
		{"prefix_fr", "prefix_fr"},
		{"$fr", "$fr"},
		{"fr$", "fr$"},
		{"123fr", "123fr"},
		{"plsHelp()", "plsHelp()"},
		{"fr", "true"},
		{"(fr)", "(true)"},
		{"fr;", "true;"},
	}
	for _, tc := range cases {
		if got := e.Rewrite(tc.in); got != tc.want {
			t.Errorf("Rewrite(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStringAndCommentOpacity(t *testing.T) {
	e := newEngine(t)
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"double quoted",
			"definitely s = \"pls fr nocap\";",
			"const s = \"pls fr nocap\";",
		},
		{
			"single quoted",
			"definitely s = 'checkthis orelse';",
			"const s = 'checkthis orelse';",
		},
		{
			"line comment",
			"maybe x = 1; // pls leave fr alone",
			"let x = 1; // pls leave fr alone",
		},
		{
			"block comment",
			"/* feels add() is cap */ maybe x = fr;",
			"/* feels add() is cap */ let x = true;",
		},
		{
			"escaped quote",
			"definitely s = \"say \\\"pls\\\" now\";",
			"const s = \"say \\\"pls\\\" now\";",
		},
		{
			"template text opaque",
			"definitely t = `pls fr`;",
			"const t = `pls fr`;",
		},
		{
			"template interpolation is code",
			"definitely t = `value: ${fr}`;",
			"const t = `value: ${true}`;",
		},
		{
			"nested braces in interpolation",
			"definitely t = `v: ${obj[key] and fr} end pls`;",
			"const t = `v: ${obj[key] && true} end pls`;",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.Rewrite(tc.in); got != tc.want {
				t.Fatalf("Rewrite(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFunctionDeclarationContext(t *testing.T) {
	e := newEngine(t)

	top := "feels add(a, b) {\n    pls a + b;\n}"
	wantTop := "function add(a, b) {\n    return a + b;\n}"
	if got := e.Rewrite(top); got != wantTop {
		t.Fatalf("top-level declaration:\n got: %q\nwant: %q", got, wantTop)
	}

	member := "bigbrain Counter {\n    feels increment() {\n        self.count = self.count + 1;\n    }\n}"
	wantMember := "class Counter {\n    increment() {\n        this.count = this.count + 1;\n    }\n}"
	if got := e.Rewrite(member); got != wantMember {
		t.Fatalf("member declaration:\n got: %q\nwant: %q", got, wantMember)
	}
}

func TestAsyncFunctionAlwaysKeyword(t *testing.T) {
	e := newEngine(t)

	top := "bigfeels fetchData(url) {\n    pls hold pull(url);\n}"
	want := "async function fetchData(url) {\n    return await pull(url);\n}"
	if got := e.Rewrite(top); got != want {
		t.Fatalf("async top-level:\n got: %q\nwant: %q", got, want)
	}

	member := "bigbrain Api {\n    bigfeels load() {\n        pls 1;\n    }\n}"
	wantMember := "class Api {\n    async function load() {\n        return 1;\n    }\n}"
	if got := e.Rewrite(member); got != wantMember {
		t.Fatalf("async member:\n got: %q\nwant: %q", got, wantMember)
	}
}

func TestFunctionAliasFallbacks(t *testing.T) {
	e := newEngine(t)
	cases := []struct {
		in   string
		want string
	}{
		// Anonymous function expression.
		{"definitely f = feels (x) { pls x; };", "const f = function (x) { return x; };"},
		// Bare use as a value.
		{"speak.say(what feels);", "console.log(typeof function);"},
		// Generic parameter list.
		{"feels identity<T>(x) { pls x; }", "function identity<T>(x) { return x; }"},
	}
	for _, tc := range cases {
		if got := e.Rewrite(tc.in); got != tc.want {
			t.Errorf("Rewrite(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMultiWordPhrasePrecedence(t *testing.T) {
	e := newEngine(t)
	in := "checkthis (x) { } orsomething (y) { } orelse { }"
	want := "if (x) { } else if (y) { } else { }"
	if got := e.Rewrite(in); got != want {
		t.Fatalf("Rewrite(%q) = %q, want %q", in, got, want)
	}
}

func TestDeletionOperandPreservation(t *testing.T) {
	e := newEngine(t)
	cases := []struct {
		in   string
		want string
	}{
		{"remove obj.a.b[0];", "delete obj.a.b[0];"},
		{"remove cache[name];", "delete cache[name];"},
		// Aliases inside the operand still get their own substitution.
		{"remove self.cache;", "delete this.cache;"},
		// No operand expression: left untouched.
		{"remove;", "remove;"},
		// Method call position, not the deletion keyword.
		{"obj.remove();", "obj.remove();"},
	}
	for _, tc := range cases {
		if got := e.Rewrite(tc.in); got != tc.want {
			t.Errorf("Rewrite(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAliasSplitFromContinuationByNewline(t *testing.T) {
	e := newEngine(t)
	cases := []struct {
		in   string
		want string
	}{
		// A line break after the alias is still the trailing whitespace
		// the phrase form needs.
		{"checkthis (x) { } orsomething\n(y) { }", "if (x) { } else if (y) { }"},
		{"remove\nobj.prop;", "delete obj.prop;"},
		{"feels\nadd(a) { pls a; }", "function add(a) { return a; }"},
		// Without any whitespace the phrase form does not apply.
		{"orsomething(y) { }", "orsomething(y) { }"},
	}
	for _, tc := range cases {
		if got := e.Rewrite(tc.in); got != tc.want {
			t.Errorf("Rewrite(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
