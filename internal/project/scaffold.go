package project

import (
	"fmt"
	"os"
	"path/filepath"
)

const manifestTemplate = `[package]
name = %q

[build]
src = "src"
out = "dist"
target = "ts"
`

const mainTemplate = `feels greet(name) {
    pls ` + "`hello, ${name}!`" + `;
}

speak.say(greet(%q));
`

// Scaffold creates a fresh project skeleton in dir: an ns.toml manifest and
// a src/main.ns entry point. It refuses to touch a directory that already
// has a manifest.
func Scaffold(dir, name string) error {
	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists", manifestPath)
	}

	srcDir := filepath.Join(dir, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", srcDir, err)
	}
	if err := os.WriteFile(manifestPath, fmt.Appendf(nil, manifestTemplate, name), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}
	mainPath := filepath.Join(srcDir, "main.ns")
	if err := os.WriteFile(mainPath, fmt.Appendf(nil, mainTemplate, name), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", mainPath, err)
	}
	return nil
}
