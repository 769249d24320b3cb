package project_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nullscript-lang/nullscript/internal/project"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\n")

	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("name = %q, want demo", m.Config.Package.Name)
	}
	if got, want := m.Config.Build, project.DefaultBuild(); got != want {
		t.Errorf("build = %+v, want defaults %+v", got, want)
	}
	if m.Root != dir {
		t.Errorf("root = %q, want %q", m.Root, dir)
	}
	if m.SrcDir() != filepath.Join(dir, "src") || m.OutDir() != filepath.Join(dir, "dist") {
		t.Errorf("resolved dirs = %q, %q", m.SrcDir(), m.OutDir())
	}
}

func TestLoadFullBuildSection(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, strings.Join([]string{
		"[package]",
		"name = \"demo\"",
		"",
		"[build]",
		"src = \"code\"",
		"out = \"build\"",
		"target = \"js\"",
		"skip_type_check = true",
	}, "\n"))

	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b := m.Config.Build
	if b.Src != "code" || b.Out != "build" || b.Target != project.TargetJS || !b.SkipTypeCheck {
		t.Fatalf("build = %+v", b)
	}
}

func TestLoadRejectsBadManifests(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing package", "[build]\nsrc = \"src\"\n", "missing [package]"},
		{"missing name", "[package]\n", "missing [package].name"},
		{"blank name", "[package]\nname = \"  \"\n", "missing [package].name"},
		{"unknown key", "[package]\nname = \"x\"\nnmae = \"typo\"\n", "unknown keys"},
		{"unknown section", "[package]\nname = \"x\"\n[bulid]\nsrc = \"s\"\n", "unknown keys"},
		{"bad target", "[package]\nname = \"x\"\n[build]\ntarget = \"wasm\"\n", "[build].target"},
		{"empty out", "[package]\nname = \"x\"\n[build]\nout = \"\"\n", "must not be empty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tc.content)
			_, err := project.Load(path)
			if err == nil {
				t.Fatalf("expected error for %q", tc.content)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestFindWalksUpToRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := project.Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find: ok=%v err=%v", ok, err)
	}
	if path != filepath.Join(root, project.ManifestName) {
		t.Fatalf("path = %q", path)
	}

	_, ok, err = project.Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find in empty dir: %v", err)
	}
	if ok {
		t.Fatal("found a manifest where none exists")
	}
}

func TestScaffold(t *testing.T) {
	dir := t.TempDir()
	if err := project.Scaffold(dir, "demo"); err != nil {
		t.Fatalf("Scaffold: %v", err)
	}

	m, ok, err := project.LoadFrom(dir)
	if err != nil || !ok {
		t.Fatalf("LoadFrom after scaffold: ok=%v err=%v", ok, err)
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("name = %q", m.Config.Package.Name)
	}
	main, err := os.ReadFile(filepath.Join(dir, "src", "main.ns"))
	if err != nil {
		t.Fatalf("read main.ns: %v", err)
	}
	if !strings.Contains(string(main), "feels greet") {
		t.Errorf("main.ns content %q", main)
	}

	if err := project.Scaffold(dir, "demo"); err == nil {
		t.Fatal("second scaffold should refuse to overwrite")
	}
}
