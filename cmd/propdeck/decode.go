package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/propdeck/internal/codec"
	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

type decodeOptions struct {
	shape     string
	canonical bool
}

func newDecodeCmd() *cobra.Command {
	opts := &decodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode structured prop text into records",
		Long: `Decode a structured-text prop value with the codec for one shape and print the
records as YAML. The text is read from stdin when no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := decodeInput(cmd, args)
			if err != nil {
				return err
			}
			return runDecode(cmd, opts, text)
		},
	}

	cmd.Flags().StringVar(&opts.shape, "shape", string(schema.EditorList), "Shape: list, label-badge, tree, comparison-rows, roadmap or forecast")
	cmd.Flags().BoolVar(&opts.canonical, "canonical", false, "Print the canonical encoding instead of records")

	return cmd
}

func decodeInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func runDecode(cmd *cobra.Command, opts *decodeOptions, text string) error {
	records, canonical, ok := decodeShape(schema.EditorKind(opts.shape), text)
	if !ok {
		return newCommandError("decode", "selecting shape", fmt.Errorf("unknown shape %q", opts.shape), "Use one of list, label-badge, tree, comparison-rows, roadmap or forecast.")
	}

	out := cmd.OutOrStdout()
	if opts.canonical {
		fmt.Fprintln(out, canonical)
		return nil
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return encoder.Close()
}

// decodeShape returns the decoded records and their canonical re-encoding.
func decodeShape(kind schema.EditorKind, text string) (any, string, bool) {
	switch kind {
	case schema.EditorList, schema.EditorItemIcons:
		items := codec.DecodeList(text)
		return items, codec.EncodeList(items), true
	case schema.EditorLabelBadge:
		records := codec.DecodeLabelBadges(text)
		return records, codec.EncodeLabelBadges(records), true
	case schema.EditorTree:
		nodes := codec.DecodeTree(text)
		return nodes, codec.EncodeTree(nodes), true
	case schema.EditorComparisonRows:
		rows := codec.DecodeComparisonRows(text)
		return rows, codec.EncodeComparisonRows(rows), true
	case schema.EditorRoadmap:
		items := codec.DecodeRoadmap(text)
		return items, codec.EncodeRoadmap(items), true
	case schema.EditorForecast:
		entries := codec.DecodeForecast(text)
		return entries, codec.EncodeForecast(entries), true
	}
	return nil, "", false
}
