package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nullscript-lang/nullscript/internal/diag"
	"github.com/nullscript-lang/nullscript/internal/keywords"
	"github.com/nullscript-lang/nullscript/internal/toolchain"
	"github.com/nullscript-lang/nullscript/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Rebuild on every source change",
	Long: `Watch the project's source directory and retranspile each .ns file as
it changes. Runs until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringSlice("ignore", nil, "path substrings to ignore")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ignore, err := cmd.Flags().GetStringSlice("ignore")
	if err != nil {
		return err
	}
	startDir := "."
	if len(args) > 0 {
		startDir = args[0]
	}
	settings, err := settingsFromManifest(startDir, maxDiagnosticsFlag(cmd))
	if err != nil {
		return err
	}

	table, err := keywords.New()
	if err != nil {
		return err
	}
	p := toolchain.NewPipeline(table, settings.opts)

	// Full build first so the watcher starts from a consistent output tree.
	if res, err := p.Build(cmd.Context(), settings.srcDir, settings.outDir); err == nil {
		reportWatchBuild(res)
	}

	quiet := quietFlag(cmd)
	w, err := watch.New(settings.srcDir, ignore, func(path string) {
		outPath, err := toolchain.OutputPath(settings.srcDir, settings.outDir, path, ".ts")
		if err != nil {
			return
		}
		res, err := p.BuildFile(cmd.Context(), path, outPath)
		if err != nil {
			if terr, ok := err.(*diag.TranspileError); ok {
				printTranspileError(terr)
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			return
		}
		if !quiet {
			elapsed := res.Timings.Sum(toolchain.StageValidate, toolchain.StageRewrite, toolchain.StageEmit)
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "rebuilt %s in %s\n",
				res.NSPath, elapsed.Round(time.Millisecond))
		}
	})
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "watching %s (press Ctrl+C to stop)\n", settings.srcDir)
	}
	return w.Run(cmd.Context())
}

func reportWatchBuild(res *toolchain.Result) {
	for _, f := range res.Failed() {
		printTranspileError(f.Err)
	}
}
