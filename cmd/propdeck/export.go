package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/propdeck/internal/editor"
	"github.com/alexisbeaulieu97/propdeck/internal/playground"
	"github.com/alexisbeaulieu97/propdeck/pkg/diff"
	propdeckerrors "github.com/alexisbeaulieu97/propdeck/pkg/errors"
)

type exportOptions struct {
	set  []string
	diff bool
	copy bool
}

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <component>",
		Short: "Print usage code for a component",
		Long: `Print the JSX usage snippet for a component with its default props, or with
props overridden through --set. Values are parsed the same way the panel's
inline editors parse them, so numbers are clamped and colors validated.`,
		Example: `  propdeck export PricingCard --set planName=Team --set padding=32
  propdeck export Navbar --set "navItems=Home\nDocs:new" --diff`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Override a prop as key=value (repeatable; \\n starts a new line)")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Print a diff against the default code instead")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the code to the clipboard")

	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts *exportOptions, name string) error {
	a, err := newApp(cmd, flags, "export")
	if err != nil {
		return err
	}
	defer a.Close()

	store := a.store()
	if err := store.Select(name); err != nil {
		return err
	}
	for _, assignment := range opts.set {
		if err := applyAssignment(store, assignment); err != nil {
			return newCommandError("export", "applying --set "+assignment, err, "Check the prop name with 'propdeck classify "+name+"'.")
		}
	}

	code := store.Code()
	out := cmd.OutOrStdout()
	if opts.diff {
		patch := diff.Unified(store.DefaultCode(), code, name+" (default)", name+" (custom)")
		if patch == "" {
			fmt.Fprintln(out, "No changes from defaults.")
		} else {
			added, removed := diff.Stats(store.DefaultCode(), code)
			fmt.Fprint(out, patch)
			fmt.Fprintf(out, "%d added, %d removed; changed: %s\n", added, removed, strings.Join(store.Changed(), ", "))
		}
	} else {
		fmt.Fprintln(out, code)
	}

	if opts.copy {
		if err := copyToClipboard(code); err != nil {
			return newCommandError("export", "copying to clipboard", err, "Drop --copy and pipe the output instead.")
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied code to clipboard.")
	}
	return nil
}

func applyAssignment(store *playground.Store, assignment string) error {
	key, raw, ok := strings.Cut(assignment, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return propdeckerrors.NewValidationError("set", "expected key=value", nil)
	}
	key = strings.TrimSpace(key)

	comp, _ := store.Selected()
	def, ok := comp.Props.Lookup(key)
	if !ok {
		return propdeckerrors.NewValidationError(key, "not a prop of "+comp.Name, nil)
	}

	value, err := editor.Apply(def, store.Value(key), strings.ReplaceAll(raw, `\n`, "\n"))
	if err != nil {
		return err
	}
	store.UpdateProp(key, value)
	return nil
}
