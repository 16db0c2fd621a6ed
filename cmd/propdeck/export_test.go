package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	original := copyToClipboard
	copyToClipboard = fn
	t.Cleanup(func() { copyToClipboard = original })
}

func TestExportDefaults(t *testing.T) {
	stdout, _, err := executeCommand(t, "export", "PricingCard")
	require.NoError(t, err)
	require.Contains(t, stdout, "<PricingCard\n")
	require.Contains(t, stdout, `  planName="Pro"`)
	require.Contains(t, stdout, "  highlighted={true}")
}

func TestExportWithOverridesAndDiff(t *testing.T) {
	stdout, _, err := executeCommand(t, "export", "PricingCard", "--set", "planName=Team", "--set", `features=One\nTwo`, "--diff")
	require.NoError(t, err)
	require.Contains(t, stdout, `-  planName="Pro"`)
	require.Contains(t, stdout, `+  planName="Team"`)
	require.Contains(t, stdout, "+  features={`One\n+Two`}\n")
	require.Contains(t, stdout, "changed: planName, features")
}

func TestExportDiffWithoutChanges(t *testing.T) {
	stdout, _, err := executeCommand(t, "export", "PricingCard", "--diff")
	require.NoError(t, err)
	require.Equal(t, "No changes from defaults.\n", stdout)
}

func TestExportRejectsUnknownProp(t *testing.T) {
	_, _, err := executeCommand(t, "export", "PricingCard", "--set", "nope=1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a prop of PricingCard")
}

func TestExportRejectsMalformedAssignment(t *testing.T) {
	_, _, err := executeCommand(t, "export", "PricingCard", "--set", "planName")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected key=value")
}

func TestExportCopy(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error {
		copied = s
		return nil
	})

	stdout, stderr, err := executeCommand(t, "export", "PricingCard", "--copy")
	require.NoError(t, err)
	require.Equal(t, stdout, copied+"\n")
	require.Contains(t, stderr, "Copied code to clipboard.")
}

func TestExportCopyFailure(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no display") })

	_, _, err := executeCommand(t, "export", "PricingCard", "--copy")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no display")
}
