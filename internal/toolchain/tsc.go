package toolchain

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/nullscript-lang/nullscript/internal/diag"
	"github.com/nullscript-lang/nullscript/internal/tsdiag"
)

// tsConfig mirrors the tsconfig.json written next to each compiled file.
type tsConfig struct {
	CompilerOptions tsCompilerOptions `json:"compilerOptions"`
	Include         []string          `json:"include"`
}

type tsCompilerOptions struct {
	Target                      string `json:"target"`
	Module                      string `json:"module"`
	ModuleResolution            string `json:"moduleResolution"`
	OutDir                      string `json:"outDir"`
	EsModuleInterop             bool   `json:"esModuleInterop"`
	AllowSyntheticDefaultImport bool   `json:"allowSyntheticDefaultImports"`
	SkipLibCheck                bool   `json:"skipLibCheck"`
	NoEmit                      bool   `json:"noEmit"`
}

func writeTSConfig(dir, include string) error {
	cfg := tsConfig{
		CompilerOptions: tsCompilerOptions{
			Target:                      "ES2022",
			Module:                      "ES2022",
			ModuleResolution:            "node",
			OutDir:                      ".",
			EsModuleInterop:             true,
			AllowSyntheticDefaultImport: true,
			SkipLibCheck:                true,
		},
		Include: []string{include},
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "tsconfig.json"), data, 0o644)
}

// EmitJS compiles one rewritten TypeScript source to JavaScript at jsPath
// using the external tsc binary. The compile happens in a throwaway temp
// directory so project-level TypeScript config never interferes. Compiler
// failures come back translated into the NullScript vocabulary and located
// at nsPath.
func EmitJS(ctx context.Context, nsPath string, tsSource []byte, jsPath string, skipTypeCheck bool) error {
	tmpDir, err := os.MkdirTemp("", "nullscript-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	stem := strings.TrimSuffix(filepath.Base(nsPath), SourceExt)
	tsName := stem + ".ts"
	if err := os.WriteFile(filepath.Join(tmpDir, tsName), tsSource, 0o644); err != nil {
		return fmt.Errorf("failed to stage %s: %w", tsName, err)
	}
	if err := writeTSConfig(tmpDir, tsName); err != nil {
		return fmt.Errorf("failed to write tsconfig.json: %w", err)
	}

	args := []string{"--project", "tsconfig.json"}
	if skipTypeCheck {
		args = append([]string{"--noCheck"}, args...)
	}
	if raw, err := runTool(ctx, tmpDir, "tsc", args...); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return tsdiag.Translate(raw, nsPath)
	}

	tmpJS := filepath.Join(tmpDir, stem+".js")
	data, err := os.ReadFile(tmpJS)
	if err != nil {
		return diag.NewTranspileError(diag.KindGeneric,
			"JavaScript file was not generated by TypeScript compiler").
			WithLocation(nsPath, 0, 0)
	}
	if err := os.MkdirAll(filepath.Dir(jsPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := os.WriteFile(jsPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", jsPath, err)
	}
	return nil
}

// RunNode executes a generated JavaScript file under node with inherited
// stdio. The returned error carries node's exit status.
func RunNode(ctx context.Context, jsPath string) error {
	cmd := exec.CommandContext(ctx, "node", jsPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("node %s: %w", filepath.Base(jsPath), err)
	}
	return nil
}

// runTool runs an external binary in dir and returns its combined output.
// tsc reports compile errors on stdout, so on failure stdout wins and
// stderr is the fallback.
func runTool(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		out := strings.TrimSpace(stdout.String())
		if out == "" {
			out = strings.TrimSpace(stderr.String())
		}
		if out == "" {
			out = "TypeScript compilation failed"
		}
		return out, err
	}
	return stdout.String(), nil
}
