package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	catalogPath string
	rulesPath   string
	verbose     bool
	logFile     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "propdeck",
		Short:         "propdeck customizes component props from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a terminal there is nothing to draw on, so fall back to listing.
			if isTerminal(cmd.OutOrStdout()) {
				return runTUI(cmd, flags)
			}
			return runList(cmd, flags, &listOptions{})
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.catalogPath, "catalog", "c", "", "Catalog file (YAML or TOML); the built-in catalog is used when empty")
	cmd.PersistentFlags().StringVar(&flags.rulesPath, "rules", "", "Classifier rules file merged over the defaults")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newClassifyCmd(flags))
	cmd.AddCommand(newDecodeCmd())
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newTUICmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
