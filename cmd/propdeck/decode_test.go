package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeLabelBadges(t *testing.T) {
	stdout, _, err := executeCommand(t, "decode", "--shape", "label-badge", "Dashboard\nMessages:3")
	require.NoError(t, err)
	require.Contains(t, stdout, "label: Dashboard")
	require.Contains(t, stdout, "label: Messages")
	require.Contains(t, stdout, `badge: "3"`)
}

func TestDecodeCanonicalFromStdin(t *testing.T) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetIn(strings.NewReader("Favorites: Airdrop , Recents\n\nPlaces\n"))
	root.SetArgs([]string{"decode", "--shape", "tree", "--canonical"})

	require.NoError(t, root.Execute())
	require.Equal(t, "Favorites:Airdrop,Recents\nPlaces\n", stdout.String())
}

func TestDecodeDefaultsToList(t *testing.T) {
	stdout, _, err := executeCommand(t, "decode", "A\n\nB")
	require.NoError(t, err)
	require.Equal(t, "- A\n- B\n", stdout)
}

func TestDecodeUnknownShape(t *testing.T) {
	_, _, err := executeCommand(t, "decode", "--shape", "matrix", "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown shape "matrix"`)
}
