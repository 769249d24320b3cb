package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nullscript-lang/nullscript/internal/project"
	"github.com/nullscript-lang/nullscript/internal/toolchain"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove build output and the transpile cache",
	Long:  "Remove the project output directory and drop the shared transpile cache.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().Bool("cache-only", false, "drop the cache but keep build output")
}

func runClean(cmd *cobra.Command, args []string) error {
	cacheOnly, err := cmd.Flags().GetBool("cache-only")
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if !cacheOnly {
		startDir := "."
		if len(args) > 0 && args[0] != "" {
			startDir = args[0]
		}
		manifest, found, err := project.LoadFrom(startDir)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%s", noManifestMessage)
		}
		outDir := manifest.OutDir()
		if _, err := os.Stat(outDir); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to stat %q: %w", outDir, err)
			}
			fmt.Fprintln(out, "output directory not found")
		} else {
			if err := os.RemoveAll(outDir); err != nil {
				return fmt.Errorf("failed to remove %q: %w", outDir, err)
			}
			fmt.Fprintf(out, "removed %s\n", outDir)
		}
	}

	cache, err := toolchain.OpenDiskCache("nullscript")
	if err != nil {
		return err
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to drop cache: %w", err)
	}
	fmt.Fprintln(out, "dropped transpile cache")
	return nil
}
