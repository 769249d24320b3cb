package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nullscript-lang/nullscript/internal/diag"
	"github.com/nullscript-lang/nullscript/internal/keywords"
	"github.com/nullscript-lang/nullscript/internal/project"
	"github.com/nullscript-lang/nullscript/internal/toolchain"
)

const noManifestMessage = "no ns.toml found\nplease specify the source directory explicitly, e.g.:\n  nsc build path/to/src"

var buildCmd = &cobra.Command{
	Use:   "build [flags] [path]",
	Short: "Transpile a NullScript project",
	Long: `Transpile every .ns file of a project into TypeScript (or JavaScript
with --target=js). Without a path the project is located via ns.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("out", "", "output directory (defaults to [build].out from ns.toml)")
	buildCmd.Flags().String("target", "", "build target: ts or js (defaults to [build].target)")
	buildCmd.Flags().Bool("skip-type-check", false, "pass --noCheck to the TypeScript compiler")
	buildCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = one per CPU)")
	buildCmd.Flags().Bool("no-cache", false, "bypass the transpile cache")
	buildCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

// buildSettings is the resolved configuration one build runs with.
type buildSettings struct {
	srcDir string
	outDir string
	opts   toolchain.Options
}

func runBuild(cmd *cobra.Command, args []string) error {
	settings, err := resolveBuildSettings(cmd, args)
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	useTUI, err := useProgressUI(uiValue)
	if err != nil {
		return err
	}

	table, err := keywords.New()
	if err != nil {
		return err
	}

	files, err := toolchain.ListNSFiles(settings.srcDir)
	if err != nil {
		return fmt.Errorf("failed to list sources in %s: %w", settings.srcDir, err)
	}

	var res *toolchain.Result
	if useTUI && !quietFlag(cmd) {
		res, err = runBuildWithUI(cmd.Context(), "building "+settings.srcDir,
			files, table, settings.opts, settings.srcDir, settings.outDir)
	} else {
		p := toolchain.NewPipeline(table, settings.opts)
		res, err = p.Build(cmd.Context(), settings.srcDir, settings.outDir)
	}
	if err != nil {
		return err
	}
	return reportBuild(cmd, res)
}

// resolveBuildSettings merges the manifest with command-line overrides.
// An explicit path argument points at the source directory and works
// without any manifest.
func resolveBuildSettings(cmd *cobra.Command, args []string) (buildSettings, error) {
	outFlag, err := cmd.Flags().GetString("out")
	if err != nil {
		return buildSettings{}, err
	}
	targetFlag, err := cmd.Flags().GetString("target")
	if err != nil {
		return buildSettings{}, err
	}
	skipTypeCheck, err := cmd.Flags().GetBool("skip-type-check")
	if err != nil {
		return buildSettings{}, err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return buildSettings{}, err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return buildSettings{}, err
	}

	settings := buildSettings{
		opts: toolchain.Options{
			Jobs:           jobs,
			SkipTypeCheck:  skipTypeCheck,
			MaxDiagnostics: maxDiagnosticsFlag(cmd),
		},
	}

	startDir := "."
	if len(args) > 0 {
		startDir = args[0]
	}
	manifest, found, err := project.LoadFrom(startDir)
	if err != nil {
		return buildSettings{}, err
	}
	switch {
	case found:
		settings.srcDir = manifest.SrcDir()
		settings.outDir = manifest.OutDir()
		settings.opts.Target = manifest.Config.Build.Target
		if manifest.Config.Build.SkipTypeCheck {
			settings.opts.SkipTypeCheck = true
		}
	case len(args) > 0:
		settings.srcDir = args[0]
		settings.outDir = filepath.Join(args[0], "..", "dist")
		settings.opts.Target = project.TargetTS
	default:
		return buildSettings{}, fmt.Errorf("%s", noManifestMessage)
	}

	if outFlag != "" {
		settings.outDir = outFlag
	}
	if targetFlag != "" {
		switch project.Target(strings.ToLower(targetFlag)) {
		case project.TargetTS:
			settings.opts.Target = project.TargetTS
		case project.TargetJS:
			settings.opts.Target = project.TargetJS
		default:
			return buildSettings{}, fmt.Errorf("unsupported target: %s (supported: ts, js)", targetFlag)
		}
	}

	if !noCache {
		cache, err := toolchain.OpenDiskCache("nullscript")
		if err == nil {
			settings.opts.Cache = cache
		}
	}
	return settings, nil
}

// settingsFromManifest resolves build settings purely from ns.toml, for
// commands that take no build flags of their own.
func settingsFromManifest(startDir string, maxDiagnostics int) (buildSettings, error) {
	manifest, found, err := project.LoadFrom(startDir)
	if err != nil {
		return buildSettings{}, err
	}
	if !found {
		return buildSettings{}, fmt.Errorf("%s", noManifestMessage)
	}
	settings := buildSettings{
		srcDir: manifest.SrcDir(),
		outDir: manifest.OutDir(),
		opts: toolchain.Options{
			Target:         manifest.Config.Build.Target,
			SkipTypeCheck:  manifest.Config.Build.SkipTypeCheck,
			MaxDiagnostics: maxDiagnostics,
		},
	}
	if cache, err := toolchain.OpenDiskCache("nullscript"); err == nil {
		settings.opts.Cache = cache
	}
	return settings, nil
}

// reportBuild prints the build summary and per-file failures. A build with
// any failed file exits non-zero.
func reportBuild(cmd *cobra.Command, res *toolchain.Result) error {
	failed := res.Failed()
	quiet := quietFlag(cmd)

	for _, f := range failed {
		printTranspileError(f.Err)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed", len(failed), len(res.Files))
	}
	if !quiet {
		okColor := color.New(color.FgGreen)
		okColor.Fprintf(cmd.OutOrStdout(), "built %d files in %s", len(res.Files), res.Elapsed.Round(time.Millisecond))
		if hits := res.CacheHits(); hits > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), " (%d cached)", hits)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

// printTranspileError renders one failure the way users see compiler
// output: header with location, message, then the hint.
func printTranspileError(terr *diag.TranspileError) {
	errColor := color.New(color.FgRed, color.Bold)
	hintColor := color.New(color.FgCyan)

	errColor.Fprintln(os.Stderr, terr.Kind.String()+terr.Location())
	fmt.Fprintln(os.Stderr, terr.Message)
	if terr.Hint != "" {
		hintColor.Fprintln(os.Stderr, "hint: "+terr.Hint)
	}
	fmt.Fprintln(os.Stderr)
}
