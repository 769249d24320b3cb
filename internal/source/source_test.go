package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nef")
	idx := buildLineIndex(content)
	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline ends line 1
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{7, 4, 1},
		{8, 4, 2},
	}
	for _, tc := range cases {
		got := toLineCol(idx, tc.off)
		if got.Line != tc.line || got.Col != tc.col {
			t.Errorf("toLineCol(%d) = %d:%d, want %d:%d", tc.off, got.Line, got.Col, tc.line, tc.col)
		}
	}
}

func TestToLineColSingleLine(t *testing.T) {
	got := toLineCol(nil, 7)
	if got.Line != 1 || got.Col != 8 {
		t.Fatalf("toLineCol(nil, 7) = %d:%d, want 1:8", got.Line, got.Col)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\r\n"))
	if !changed {
		t.Fatal("normalizeCRLF did not report changes")
	}
	if string(out) != "a\nb\rc\n" {
		t.Fatalf("normalizeCRLF = %q", out)
	}
	out, changed = normalizeCRLF([]byte("plain"))
	if changed || string(out) != "plain" {
		t.Fatalf("normalizeCRLF(plain) = %q, changed=%v", out, changed)
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.ns")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("pls fr;\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "pls fr;\n" {
		t.Fatalf("Content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("Flags = %v, want BOM and CRLF flags set", f.Flags)
	}
}

func TestResolveAndLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ns", []byte("maybe x = 1;\npls x;\n"))
	start, end := fs.Resolve(Span{File: id, Start: 13, End: 16})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 4 {
		t.Fatalf("end = %d:%d, want 2:4", end.Line, end.Col)
	}
	f := fs.Get(id)
	if got := f.Line(2); got != "pls x;" {
		t.Fatalf("Line(2) = %q", got)
	}
	if got := f.Line(9); got != "" {
		t.Fatalf("Line(9) = %q, want empty", got)
	}
}
