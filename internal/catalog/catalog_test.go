package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/propdeck/internal/classify"
	"github.com/alexisbeaulieu97/propdeck/internal/logger"
	"github.com/alexisbeaulieu97/propdeck/internal/schema"
	propdeckerrors "github.com/alexisbeaulieu97/propdeck/pkg/errors"
)

func TestDefaultCatalogLoads(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)
	require.Contains(t, c.Names(), "PricingCard")
	require.Contains(t, c.Names(), "FileTree")
	require.Equal(t, []string{"badges", "cards", "inputs", "sidebars", "tabbars", "tabs-controls"}, c.Categories())

	tree, ok := c.Lookup("FileTree")
	require.True(t, ok)
	def, ok := tree.Props.Lookup("treeItems")
	require.True(t, ok)
	require.Contains(t, def.Default, "Favorites:Airdrop")

	login, ok := c.Lookup("LoginForm")
	require.True(t, ok)
	require.Equal(t, []string{"redirectUrl"}, login.HiddenProps)

	stat, ok := c.Lookup("StatTile")
	require.True(t, ok)
	require.NotNil(t, stat.Grouping)
	require.Equal(t, schema.LayoutSections, stat.Grouping.Type)
}

func TestDefaultCatalogCoversClassifierPaths(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)
	classifier := classify.New(classify.DefaultRules(), nil)

	paths := map[classify.Path]bool{}
	for _, comp := range c.Components {
		in := classify.Input{Component: comp.Name, Category: comp.Category, Props: comp.Props}
		paths[classifier.PathFor(in)] = true

		grouping := classifier.Classify(in)
		if classifier.PathFor(in) == classify.PathCategory {
			require.ElementsMatch(t, comp.Props.Names(), grouping.AllKeys(), comp.Name)
		}
	}
	require.True(t, paths[classify.PathIdentity])
	require.True(t, paths[classify.PathCategory])
	require.True(t, paths[classify.PathGeneric])
}

func TestParseTOMLCatalog(t *testing.T) {
	t.Parallel()

	data := []byte(`
[[components]]
name = "Chip"
category = "badges"

[[components.props]]
name = "text"
type = "text"
default = "Beta"

[[components.props]]
name = "paddingX"
type = "number"
default = 6
min = 0.0
max = 24.0
`)

	c, err := Parse("chips.toml", data, FormatTOML)
	require.NoError(t, err)

	chip, ok := c.Lookup("Chip")
	require.True(t, ok)
	require.Equal(t, []string{"text", "paddingX"}, chip.Props.Names())
	require.Equal(t, 6.0, chip.Props.Defaults()["paddingX"])

	def, _ := chip.Props.Lookup("paddingX")
	require.NotNil(t, def.Max)
	require.Equal(t, 24.0, *def.Max)
}

func TestValidateRejectsBadCatalogs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{
			name:  "unknown prop type",
			yaml:  "components:\n  - name: A\n    props:\n      - name: x\n        type: colour\n",
			field: "components[0].props[0].type",
		},
		{
			name:  "invalid prop name",
			yaml:  "components:\n  - name: A\n    props:\n      - name: 1x\n        type: text\n",
			field: "components[0].props[0].name",
		},
		{
			name:  "select without options",
			yaml:  "components:\n  - name: A\n    props:\n      - name: size\n        type: select\n",
			field: "components[0].props[0].options",
		},
		{
			name:  "duplicate component",
			yaml:  "components:\n  - name: A\n    props: []\n  - name: A\n    props: []\n",
			field: "components[1].name",
		},
		{
			name:  "duplicate prop",
			yaml:  "components:\n  - name: A\n    props:\n      - {name: x, type: text}\n      - {name: x, type: color}\n",
			field: "components[0].props[1].name",
		},
		{
			name:  "min above max",
			yaml:  "components:\n  - name: A\n    props:\n      - {name: x, type: number, min: 5, max: 1}\n",
			field: "components[0].props[0].min",
		},
		{
			name:  "unknown hidden prop",
			yaml:  "components:\n  - name: A\n    hiddenProps: [y]\n    props:\n      - {name: x, type: text}\n",
			field: "components[0].hiddenProps",
		},
		{
			name:  "grouping references unknown prop",
			yaml:  "components:\n  - name: A\n    props:\n      - {name: x, type: text}\n    grouping:\n      type: sections\n      sections:\n        - name: main\n          fields:\n            - key: y\n",
			field: "components[0].grouping",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse("catalog.yaml", []byte(tt.yaml), FormatYAML)
			var validationErr *propdeckerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestParseReportsYAMLLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("catalog.yaml", []byte("components:\n  - name: A\n   props: [\n"), FormatYAML)
	var parseErr *propdeckerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Greater(t, parseErr.Line, 0)
}

func TestLoadPicksFormatFromExtension(t *testing.T) {
	t.Parallel()

	require.Equal(t, FormatTOML, FormatFor("catalog.TOML"))
	require.Equal(t, FormatYAML, FormatFor("catalog.yml"))

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[components]]\nname = \"Empty\"\nprops = []\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Empty"}, c.Names())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerateSchemaUsesYAMLNames(t *testing.T) {
	t.Parallel()

	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, "propdeck catalog", doc["title"])
	require.Contains(t, string(data), `"hiddenProps"`)
	require.Contains(t, string(data), `"color-variant"`)
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("components:\n  - name: A\n    props: []\n"), 0o600))

	w, err := NewWatcher(path, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Catalog, 4)
	go w.Run(ctx, func(c *Catalog, err error) {
		if err != nil {
			return
		}
		select {
		case reloaded <- c:
		default:
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("components:\n  - name: B\n    props: []\n"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-reloaded:
			if len(c.Names()) == 1 && c.Names()[0] == "B" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for catalog reload")
		}
	}
}
