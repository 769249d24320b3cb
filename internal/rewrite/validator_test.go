package rewrite_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/nullscript-lang/nullscript/internal/diag"
	"github.com/nullscript-lang/nullscript/internal/keywords"
	"github.com/nullscript-lang/nullscript/internal/rewrite"
	"github.com/nullscript-lang/nullscript/internal/source"
)

func newValidator(t *testing.T) *rewrite.Validator {
	t.Helper()
	table, err := keywords.New()
	if err != nil {
		t.Fatalf("keywords.New() error: %v", err)
	}
	return rewrite.NewValidator(table)
}

func validate(t *testing.T, src string) (bool, *diag.Bag) {
	t.Helper()
	v := newValidator(t)
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.ns", []byte(src))
	bag := diag.NewBag(64)
	clean := v.Validate(fs.Get(id), diag.BagReporter{Bag: bag})
	return clean, bag
}

func TestValidateAcceptsAliasVocabulary(t *testing.T) {
	src := strings.Join([]string{
		"use config from './config.ns';",
		"",
		"definitely greeting = \"hello\";",
		"maybe count = 0;",
		"",
		"feels add(a, b) {",
		"    pls a + b;",
		"}",
		"",
		"checkthis (count is 0) {",
		"    speak.say(greeting);",
		"} orelse {",
		"    speak.yell(\"nonzero\");",
		"}",
	}, "\n")

	clean, bag := validate(t, src)
	if !clean {
		t.Fatalf("expected clean source, got %d diagnostics: %+v", bag.Len(), bag.Items())
	}
}

func TestValidateRejectsCanonicalKeywords(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		keyword string
		alias   string
	}{
		{"const declaration", "const x = 5;", "const", "definitely"},
		{"let declaration", "let y = 1;", "let", "maybe"},
		{"function declaration", "function add(a) { pls a; }", "function", "feels"},
		{"if statement", "if (x) { speak.say(x); }", "if", "checkthis"},
		{"bare true", "maybe flag = true;", "true", "fr"},
		{"bare null", "maybe empty = null;", "null", "nocap"},
		{"return statement", "feels f() { return 1; }", "return", "pls"},
		{"class declaration", "class Dog { }", "class", "bigbrain"},
		{"throw statement", "trigger_handler(); throw err;", "throw", "trigger"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clean, bag := validate(t, tc.src)
			if clean {
				t.Fatalf("expected violation for %q", tc.src)
			}
			d := bag.Items()[0]
			if d.Code != diag.VocCanonicalKeyword {
				t.Fatalf("code = %v, want %v", d.Code, diag.VocCanonicalKeyword)
			}
			if !strings.Contains(d.Message, tc.keyword) || !strings.Contains(d.Message, tc.alias) {
				t.Fatalf("message %q should name %q and %q", d.Message, tc.keyword, tc.alias)
			}
		})
	}
}

func TestValidateWholeWordOnly(t *testing.T) {
	cases := []string{
		"definitely iffy = 1;",
		"definitely lettuce = 2;",
		"definitely construct = 3;",
		"maybe truthy = fr;",
		"definitely classy = fr;",
	}
	for _, src := range cases {
		if clean, bag := validate(t, src); !clean {
			t.Errorf("false positive on %q: %+v", src, bag.Items())
		}
	}
}

func TestValidateIgnoresStringsAndComments(t *testing.T) {
	cases := []string{
		"definitely s = \"const x = 5\";",
		"definitely s = 'let y = true';",
		"// if (x) { return null; }",
		"/* function add(a) { } */ maybe x = 1;",
		"definitely t = `class true null`;",
	}
	for _, src := range cases {
		if clean, bag := validate(t, src); !clean {
			t.Errorf("false positive on %q: %+v", src, bag.Items())
		}
	}
}

func TestValidateUnknownLeadingWord(t *testing.T) {
	clean, bag := validate(t, "defnitely x = 5;")
	if clean {
		t.Fatal("expected unknown-keyword violation")
	}
	d := bag.Items()[0]
	if d.Code != diag.VocUnknownKeyword {
		t.Fatalf("code = %v, want %v", d.Code, diag.VocUnknownKeyword)
	}
	if !strings.Contains(d.Message, "defnitely") {
		t.Fatalf("message %q should name the bad word", d.Message)
	}

	// Plain reassignment of an existing binding is not a declaration.
	if clean, bag := validate(t, "count = 5;"); !clean {
		t.Fatalf("false positive on reassignment: %+v", bag.Items())
	}

	// Connector words may lead a statement without being aliases.
	for _, line := range []string{
		"export x = 5;",
		"import config from './config.js';",
		"from './x.js';",
		"as helper;",
	} {
		if clean, bag := validate(t, line); !clean {
			t.Fatalf("false positive on %q: %+v", line, bag.Items())
		}
	}
}

func TestValidateSourceFirstViolationLocation(t *testing.T) {
	v := newValidator(t)

	if err := v.ValidateSource("definitely x = 5;\n", "main.ns"); err != nil {
		t.Fatalf("clean source: unexpected error %v", err)
	}

	err := v.ValidateSource("definitely a = 1;\nlet b = 2;\n", "main.ns")
	if err == nil {
		t.Fatal("expected violation")
	}
	var terr *diag.TranspileError
	if !errors.As(err, &terr) {
		t.Fatalf("error type %T, want *diag.TranspileError", err)
	}
	if terr.Kind != diag.KindSyntax {
		t.Fatalf("kind = %v, want %v", terr.Kind, diag.KindSyntax)
	}
	if terr.Path != "main.ns" || terr.Line != 2 || terr.Col != 1 {
		t.Fatalf("location = %s:%d:%d, want main.ns:2:1", terr.Path, terr.Line, terr.Col)
	}
	if terr.Hint == "" {
		t.Fatal("expected a hint pointing at the keywords listing")
	}
}
