package panel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

func textProps(names ...string) schema.Props {
	props := make(schema.Props, 0, len(names))
	for _, name := range names {
		props = append(props, schema.Prop{Name: name, PropDefinition: schema.PropDefinition{Type: schema.TypeText}})
	}
	return props
}

func fields(keys ...string) []schema.Field {
	out := make([]schema.Field, 0, len(keys))
	for _, key := range keys {
		out = append(out, schema.Field{Key: key})
	}
	return out
}

func separators(fields []FieldPlan) []bool {
	out := make([]bool, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Separator)
	}
	return out
}

func TestBuildPlanSeparatorsIgnoreHiddenProps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		keys   []string
		hidden []string
		want   []string
		seps   []bool
	}{
		{name: "nothing hidden", keys: []string{"a", "b", "c"}, want: []string{"a", "b", "c"}, seps: []bool{true, true, false}},
		{name: "middle hidden", keys: []string{"a", "b", "c"}, hidden: []string{"b"}, want: []string{"a", "c"}, seps: []bool{true, false}},
		{name: "last hidden", keys: []string{"a", "b", "c"}, hidden: []string{"c"}, want: []string{"a", "b"}, seps: []bool{true, false}},
		{name: "single", keys: []string{"a"}, want: []string{"a"}, seps: []bool{false}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := schema.GroupingConfig{
				Type:        schema.LayoutSections,
				Sections:    []schema.Section{{Name: "general", Label: "General", Fields: fields(tt.keys...)}},
				HiddenProps: tt.hidden,
			}
			plan := BuildPlan(config, textProps(tt.keys...))

			require.False(t, plan.ShowTabs)
			require.Len(t, plan.Sections, 1)
			require.Equal(t, tt.want, plan.Keys())
			require.Equal(t, tt.seps, separators(plan.Sections[0].Fields))
		})
	}
}

func TestBuildPlanTabsAndSubtabs(t *testing.T) {
	t.Parallel()

	config := schema.GroupingConfig{
		Type: schema.LayoutTabs,
		Tabs: []schema.Tab{
			{Name: "content", Label: "Content", Subcategories: []schema.Subcategory{
				{Name: "general", Label: "General", Fields: fields("title", "body")},
				{Name: "features", Fields: []schema.Field{{Key: "features", Editor: schema.EditorList}}},
				{Name: "ghost", Label: "Ghost", Fields: fields("secret")},
			}},
			{Name: "style", Label: "Style", Fields: fields("padding")},
			{Name: "empty", Label: "Empty", Fields: fields("secret", "undeclared")},
		},
		HiddenProps: []string{"secret"},
	}
	props := textProps("title", "body", "features", "padding", "secret")

	plan := BuildPlan(config, props)

	require.True(t, plan.ShowTabs)
	require.Len(t, plan.Tabs, 2)

	content := plan.Tabs[0]
	require.True(t, content.ShowSubtabs)
	require.Len(t, content.Subtabs, 2)
	require.Equal(t, "Features", content.Subtabs[1].Label)
	require.Equal(t, schema.EditorList, content.Subtabs[1].Fields[0].Editor)
	require.True(t, content.Subtabs[1].Fields[0].Specialized())
	require.Equal(t, schema.EditorGeneric, content.Subtabs[0].Fields[0].Editor)

	style := plan.Tabs[1]
	require.False(t, style.ShowSubtabs)
	require.Equal(t, []string{"title", "body", "features", "padding"}, plan.Keys())

	field, ok := plan.Field("padding")
	require.True(t, ok)
	require.Equal(t, "Padding", field.Label)
	_, ok = plan.Field("secret")
	require.False(t, ok)
}

func TestBuildPlanEmpty(t *testing.T) {
	t.Parallel()

	plan := BuildPlan(schema.GroupingConfig{Type: schema.LayoutTabs}, nil)
	require.False(t, plan.ShowTabs)
	require.Empty(t, plan.Keys())
}

func TestHumanize(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"backgroundColor": "Background Color",
		"paddingX":        "Padding X",
		"title":           "Title",
		"nav_items":       "Nav Items",
		"item2Color":      "Item2 Color",
		"URL":             "URL",
		"":                "",
	}
	for in, want := range tests {
		require.Equal(t, want, Humanize(in), in)
	}
}
