package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListCommandJSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, len(payload.Components), payload.Count)
	require.NotZero(t, payload.Count)
	require.Equal(t, "PricingCard", payload.Components[0].Name)
}

func TestListCommandCustomCatalog(t *testing.T) {
	path := writeFile(t, "catalog.toml", `
[[components]]
name = "Badge"

[[components.props]]
name = "text"
type = "text"
default = "New"

[[components]]
name = "Banner"
category = "banners"

[[components.props]]
name = "message"
type = "text"
`)

	stdout, _, err := executeCommand(t, "list", "--catalog", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "Badge")
	require.Contains(t, stdout, "banners")
	require.Contains(t, stdout, "generic")
	require.NotContains(t, stdout, "PricingCard")
}

func TestListCommandMissingCatalog(t *testing.T) {
	_, _, err := executeCommand(t, "list", "--catalog", "does-not-exist.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to list: loading catalog")
}
