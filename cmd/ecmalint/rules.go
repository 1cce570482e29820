package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/internal/rules"
)

var rulesJSON bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List all bundled rules",
	Long:  "List every bundled rule with its tags, as a table or as JSON.",
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "Output as JSON")
}

func runRules(_ *cobra.Command, _ []string) error {
	registry, err := rule.NewRegistry(rules.All()...)
	if err != nil {
		return errors.Wrap(err, "building rule registry")
	}

	meta := registry.Metadata()

	if rulesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(meta), "encoding rules")
	}

	t := tablewriter.NewTable(os.Stdout,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
	)

	t.Header([]string{"Code", "Tags"})

	for _, m := range meta {
		tags := make([]string, 0, len(m.Tags))
		for _, tag := range m.Tags {
			tags = append(tags, string(tag))
		}

		if err := t.Append([]string{m.Code, strings.Join(tags, ", ")}); err != nil {
			return errors.Wrap(err, "building rules table")
		}
	}

	return errors.Wrap(t.Render(), "rendering rules table")
}
