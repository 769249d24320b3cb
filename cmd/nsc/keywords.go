package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/nullscript-lang/nullscript/internal/keywords"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [category]",
	Short: "Show the NullScript vocabulary",
	Long: `List every NullScript alias and the TypeScript keyword it rewrites to,
grouped by category. With an argument only that category is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeywords,
}

func runKeywords(cmd *cobra.Command, args []string) error {
	table, err := keywords.New()
	if err != nil {
		return err
	}

	categories := table.Categories()
	if len(args) > 0 {
		cat, ok := table.Category(args[0])
		if !ok {
			return fmt.Errorf("unknown category %q (available: %s)",
				args[0], strings.Join(table.CategoryNames(), ", "))
		}
		categories = []keywords.Category{cat}
	}

	out := cmd.OutOrStdout()
	titleColor := color.New(color.FgYellow, color.Bold)
	aliasColor := color.New(color.FgCyan)
	arrowColor := color.New(color.Faint)

	for i, cat := range categories {
		if i > 0 {
			fmt.Fprintln(out)
		}
		titleColor.Fprintf(out, "%s\n", cat.Title)

		width := 0
		for _, e := range cat.Entries {
			if w := runewidth.StringWidth(e.Alias); w > width {
				width = w
			}
		}
		for _, e := range cat.Entries {
			pad := strings.Repeat(" ", width-runewidth.StringWidth(e.Alias))
			fmt.Fprint(out, "  ")
			aliasColor.Fprint(out, e.Alias)
			fmt.Fprint(out, pad)
			arrowColor.Fprint(out, "  ->  ")
			fmt.Fprintln(out, e.Canonical)
		}
	}
	return nil
}
