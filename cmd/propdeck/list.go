package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/propdeck/internal/catalog"
	"github.com/alexisbeaulieu97/propdeck/internal/classify"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	a, err := newApp(cmd, flags, "list")
	if err != nil {
		return err
	}
	defer a.Close()

	if len(a.catalog.Components) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No components in catalog.")
		return nil
	}

	entries := make([]listEntry, 0, len(a.catalog.Components))
	for _, comp := range a.catalog.Components {
		entries = append(entries, newListEntry(comp, a.classifier))
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, entries)
	}
	return renderListTable(cmd, entries)
}

type listEntry struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Props    int    `json:"props"`
	Path     string `json:"path"`
}

func newListEntry(comp catalog.Component, classifier *classify.Classifier) listEntry {
	path := "grouping"
	if comp.Grouping == nil {
		path = string(classifier.PathFor(classify.Input{Component: comp.Name, Category: comp.Category, Props: comp.Props}))
	}
	return listEntry{Name: comp.Name, Category: comp.Category, Props: len(comp.Props), Path: path}
}

func renderListTable(cmd *cobra.Command, entries []listEntry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tCATEGORY\tPROPS\tGROUPING")
	for _, e := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n", e.Name, valueOrFallback(e.Category, "-"), e.Props, e.Path)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Count      int         `json:"count"`
	Components []listEntry `json:"components"`
}

func renderListJSON(cmd *cobra.Command, entries []listEntry) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(listJSONPayload{Count: len(entries), Components: entries})
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
