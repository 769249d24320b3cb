package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nullscript-lang/nullscript/internal/diag"
	"github.com/nullscript-lang/nullscript/internal/keywords"
	"github.com/nullscript-lang/nullscript/internal/project"
	"github.com/nullscript-lang/nullscript/internal/rewrite"
	"github.com/nullscript-lang/nullscript/internal/source"
	"github.com/nullscript-lang/nullscript/internal/toolchain"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate NullScript vocabulary without building",
	Long: `Scan every .ns file for canonical TypeScript keywords that should be
NullScript aliases, and for unknown leading keywords. Nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	srcDir := ""
	if len(args) > 0 {
		srcDir = args[0]
	} else {
		manifest, found, err := project.LoadFrom(".")
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%s", noManifestMessage)
		}
		srcDir = manifest.SrcDir()
	}

	table, err := keywords.New()
	if err != nil {
		return err
	}
	validator := rewrite.NewValidator(table)

	files, err := toolchain.ListNSFiles(srcDir)
	if err != nil {
		return fmt.Errorf("failed to list sources in %s: %w", srcDir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %s", toolchain.SourceExt, srcDir)
	}

	maxDiagnostics := maxDiagnosticsFlag(cmd)
	total := 0
	for _, path := range files {
		fs := source.NewFileSet()
		id, err := fs.Load(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		bag := diag.NewBag(maxDiagnostics)
		if validator.Validate(fs.Get(id), diag.BagReporter{Bag: bag}) {
			continue
		}
		bag.Sort()
		total += bag.Len()
		printViolations(path, fs, bag)
	}

	if total > 0 {
		return fmt.Errorf("found %d vocabulary violations", total)
	}
	if !quietFlag(cmd) {
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "checked %d files, no violations\n", len(files))
	}
	return nil
}

func printViolations(path string, fs *source.FileSet, bag *diag.Bag) {
	locColor := color.New(color.Bold)
	codeColor := color.New(color.FgRed)

	for _, d := range bag.Items() {
		pos, _ := fs.Resolve(d.Primary)
		locColor.Fprintf(os.Stderr, "%s:%d:%d ", path, pos.Line, pos.Col)
		codeColor.Fprintf(os.Stderr, "%s ", d.Code.ID())
		fmt.Fprintln(os.Stderr, d.Message)
		for _, n := range d.Notes {
			fmt.Fprintf(os.Stderr, "  note: %s\n", n.Msg)
		}
	}
}
