package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/propdeck/internal/classify"
)

type classifyOptions struct {
	format string
}

func newClassifyCmd(flags *rootFlags) *cobra.Command {
	opts := &classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify <component>",
		Short: "Print the panel grouping for a component",
		Long: `Print the tab and subcategory grouping the customize panel would use for a
component, along with the classification path that produced it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "yaml", "Output format: yaml or json")

	return cmd
}

func runClassify(cmd *cobra.Command, flags *rootFlags, opts *classifyOptions, name string) error {
	if opts.format != "yaml" && opts.format != "json" {
		return newCommandError("classify", "parsing flags", fmt.Errorf("unknown format %q", opts.format), "Use --format yaml or --format json.")
	}

	a, err := newApp(cmd, flags, "classify")
	if err != nil {
		return err
	}
	defer a.Close()

	store := a.store()
	if err := store.Select(name); err != nil {
		return err
	}
	grouping := store.Grouping()

	out := cmd.OutOrStdout()
	if opts.format == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(grouping)
	}

	comp, _ := store.Selected()
	path := "grouping"
	if comp.Grouping == nil {
		path = string(a.classifier.PathFor(classify.Input{Component: comp.Name, Category: comp.Category, Props: comp.Props}))
	}
	fmt.Fprintf(out, "# %s (%s path)\n", comp.Name, path)

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(grouping); err != nil {
		return fmt.Errorf("encode grouping: %w", err)
	}
	return encoder.Close()
}
