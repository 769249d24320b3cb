package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nullscript-lang/nullscript/internal/diag"
	"github.com/nullscript-lang/nullscript/internal/keywords"
	"github.com/nullscript-lang/nullscript/internal/project"
	"github.com/nullscript-lang/nullscript/internal/toolchain"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [file.ns]",
	Short: "Transpile and execute a NullScript file",
	Long: `Transpile a single .ns file to JavaScript and execute it under node.
Without an argument the project entry point src/main.ns is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().Bool("skip-type-check", false, "pass --noCheck to the TypeScript compiler")
}

func runRun(cmd *cobra.Command, args []string) error {
	skipTypeCheck, err := cmd.Flags().GetBool("skip-type-check")
	if err != nil {
		return err
	}

	entry, err := resolveRunEntry(args)
	if err != nil {
		return err
	}

	table, err := keywords.New()
	if err != nil {
		return err
	}
	cache, _ := toolchain.OpenDiskCache("nullscript")
	p := toolchain.NewPipeline(table, toolchain.Options{
		Target:         project.TargetJS,
		SkipTypeCheck:  skipTypeCheck,
		Cache:          cache,
		MaxDiagnostics: maxDiagnosticsFlag(cmd),
	})

	tmpDir, err := os.MkdirTemp("", "nullscript-run-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	stem := strings.TrimSuffix(filepath.Base(entry), toolchain.SourceExt)
	res, err := p.BuildFile(cmd.Context(), entry, filepath.Join(tmpDir, stem+".js"))
	if err != nil {
		if terr, ok := err.(*diag.TranspileError); ok {
			printTranspileError(terr)
			return fmt.Errorf("transpile failed")
		}
		return err
	}

	return toolchain.RunNode(cmd.Context(), res.JSPath)
}

// resolveRunEntry picks the file to execute: the argument if given, else
// the manifest's source directory entry point.
func resolveRunEntry(args []string) (string, error) {
	if len(args) > 0 {
		entry := args[0]
		if !strings.HasSuffix(entry, toolchain.SourceExt) {
			return "", fmt.Errorf("%s is not a %s file", entry, toolchain.SourceExt)
		}
		if _, err := os.Stat(entry); err != nil {
			return "", fmt.Errorf("cannot run %s: %w", entry, err)
		}
		return entry, nil
	}

	manifest, found, err := project.LoadFrom(".")
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%s", noManifestMessage)
	}
	entry := filepath.Join(manifest.SrcDir(), "main.ns")
	if _, err := os.Stat(entry); err != nil {
		return "", fmt.Errorf("project entry point missing: %w", err)
	}
	return entry, nil
}
