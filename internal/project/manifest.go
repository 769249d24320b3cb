// Package project locates and parses the ns.toml project manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a NullScript project root.
const ManifestName = "ns.toml"

// Target selects what the build emits.
type Target string

const (
	// TargetTS leaves rewritten TypeScript in the output directory.
	TargetTS Target = "ts"
	// TargetJS additionally compiles the rewritten sources to JavaScript.
	TargetJS Target = "js"
)

// Manifest is a parsed ns.toml plus where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	Src           string `toml:"src"`
	Out           string `toml:"out"`
	Target        Target `toml:"target"`
	SkipTypeCheck bool   `toml:"skip_type_check"`
}

// DefaultBuild returns the build settings an empty [build] section implies.
func DefaultBuild() BuildConfig {
	return BuildConfig{Src: "src", Out: "dist", Target: TargetTS}
}

// Find walks from startDir up to the filesystem root looking for ns.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses and validates the manifest at path. Parsing is strict: keys
// the schema does not know are an error, as is a missing package name or an
// unknown build target. Absent build keys fall back to DefaultBuild.
func Load(path string) (*Manifest, error) {
	cfg := Config{Build: DefaultBuild()}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, fmt.Errorf("%s: missing [package].name", path)
	}
	switch cfg.Build.Target {
	case TargetTS, TargetJS:
	default:
		return nil, fmt.Errorf("%s: [build].target must be %q or %q, got %q",
			path, TargetTS, TargetJS, cfg.Build.Target)
	}
	if strings.TrimSpace(cfg.Build.Src) == "" || strings.TrimSpace(cfg.Build.Out) == "" {
		return nil, fmt.Errorf("%s: [build].src and [build].out must not be empty", path)
	}

	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// LoadFrom finds the nearest manifest above startDir and loads it. The
// second return value is false when no manifest exists.
func LoadFrom(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// SrcDir resolves the configured source directory against the project root.
func (m *Manifest) SrcDir() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Build.Src))
}

// OutDir resolves the configured output directory against the project root.
func (m *Manifest) OutDir() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Build.Out))
}
