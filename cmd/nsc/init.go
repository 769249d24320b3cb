package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nullscript-lang/nullscript/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new NullScript project",
	Long: `Initialize a new NullScript project by creating a project manifest
(ns.toml) and a hello-world entry point (src/main.ns). If [path|name] is
omitted, initializes the current directory. If a non-existing name is
provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "nullscript-project"
	}

	if err := project.Scaffold(target, name); err != nil {
		return err
	}

	if !quietFlag(cmd) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "created %s\n", filepath.Join(target, project.ManifestName))
		fmt.Fprintf(out, "created %s\n", filepath.Join(target, "src", "main.ns"))
		fmt.Fprintln(out, "\nnext steps:")
		fmt.Fprintln(out, "  nsc build")
		fmt.Fprintln(out, "  nsc run")
	}
	return nil
}
