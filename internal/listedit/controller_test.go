package listedit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/propdeck/internal/codec"
)

func TestControllerTypesIntoEmptyList(t *testing.T) {
	t.Parallel()

	c := New[codec.LabelBadge](LabelBadgeShape{}, "")
	require.Equal(t, 1, c.Len())

	encoded := c.UpdateField(0, FieldLabel, "Home")
	require.Equal(t, "Home", encoded)
	require.Equal(t, 1, c.Len())
	require.True(t, c.Pending())

	encoded = c.Commit()
	require.Equal(t, "Home", encoded)
	require.Equal(t, 2, c.Len())
	require.False(t, c.Pending())
	require.Equal(t, "", c.At(1).Label)
}

func TestControllerLabelBadgeEdit(t *testing.T) {
	t.Parallel()

	c := New[codec.LabelBadge](LabelBadgeShape{}, "Dashboard\nMessages:3")
	require.Equal(t, 3, c.Len())

	require.Equal(t, "Dashboard:5\nMessages:3", c.UpdateField(0, FieldBadge, "5"))
}

func TestControllerInitializeIsIdempotent(t *testing.T) {
	t.Parallel()

	c := New[string](ListShape{}, "a\nb")
	first := c.Items()
	c.Initialize("a\nb")
	require.Equal(t, first, c.Items())
	require.Equal(t, "a\nb", c.Encoded())
}

func TestControllerClearingRecordKeepsIt(t *testing.T) {
	t.Parallel()

	c := New[string](ListShape{}, "a\nb\nc")
	encoded := c.UpdateField(1, FieldValue, "")
	require.Equal(t, "a\nc", encoded)
	require.Equal(t, []string{"a", "", "c", ""}, c.Items())
}

func TestControllerCollapsesDoubleTrailingSlot(t *testing.T) {
	t.Parallel()

	c := New[string](ListShape{}, "a\nb")
	require.Equal(t, "a", c.UpdateField(1, FieldValue, ""))
	require.Equal(t, []string{"a", ""}, c.Items())
}

func TestControllerAdd(t *testing.T) {
	t.Parallel()

	c := New[string](ListShape{}, "a")
	require.False(t, c.Add())
	require.Equal(t, 2, c.Len())

	c.UpdateField(1, FieldValue, "b")
	require.True(t, c.Add())
	require.Equal(t, []string{"a", "b", ""}, c.Items())
}

func TestControllerRemoveAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		encoded   string
		index     int
		wantFocus int
		wantItems []string
		wantValue string
	}{
		{name: "middle", encoded: "a\nb\nc", index: 1, wantFocus: 0, wantItems: []string{"a", "c", ""}, wantValue: "a\nc"},
		{name: "first", encoded: "a\nb", index: 0, wantFocus: 0, wantItems: []string{"b", ""}, wantValue: "b"},
		{name: "only record", encoded: "a", index: 0, wantFocus: 0, wantItems: []string{""}, wantValue: ""},
		{name: "trailing slot", encoded: "a", index: 1, wantFocus: 0, wantItems: []string{"a", ""}, wantValue: "a"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New[string](ListShape{}, tt.encoded)
			focus, encoded := c.RemoveAt(tt.index)
			require.Equal(t, tt.wantFocus, focus)
			require.Equal(t, tt.wantValue, encoded)
			require.Equal(t, tt.wantItems, c.Items())
		})
	}
}

func TestControllerKeyboardPolicy(t *testing.T) {
	t.Parallel()

	c := New[string](ListShape{}, "a")

	focus, added := c.HandleEnter(1)
	require.False(t, added)
	require.Equal(t, 1, focus)

	c.UpdateField(1, FieldValue, "b")
	focus, added = c.HandleEnter(1)
	require.True(t, added)
	require.Equal(t, 2, focus)
	require.Equal(t, []string{"a", "b", ""}, c.Items())

	focus, added = c.HandleEnter(0)
	require.False(t, added)
	require.Equal(t, 2, focus)
	require.Equal(t, []string{"a", "b", ""}, c.Items())

	focus, _, removed := c.HandleBackspace(0)
	require.False(t, removed)
	require.Equal(t, 0, focus)

	c.UpdateField(1, FieldValue, "")
	focus, encoded, removed := c.HandleBackspace(1)
	require.True(t, removed)
	require.Equal(t, 0, focus)
	require.Equal(t, "a", encoded)
	require.Equal(t, []string{"a", ""}, c.Items())
}

func TestControllerBackspaceKeepsLastRecord(t *testing.T) {
	t.Parallel()

	c := New[string](ListShape{}, "")
	_, _, removed := c.HandleBackspace(0)
	require.False(t, removed)
	require.Equal(t, 1, c.Len())
}

func TestControllerSyncUsesVersions(t *testing.T) {
	t.Parallel()

	c := New[string](ListShape{}, "a")
	c.UpdateField(1, FieldValue, "b")
	c.Acknowledge(1)

	require.False(t, c.Sync("a\nb", 1))
	require.Equal(t, []string{"a", "b"}, c.Items())

	require.True(t, c.Sync("x", 2))
	require.Equal(t, []string{"x", ""}, c.Items())
	require.Equal(t, uint64(2), c.Version())

	require.False(t, c.Sync("stale", 1))
	require.Equal(t, "x", c.Encoded())
}

func TestControllerTrailingSlotInvariant(t *testing.T) {
	t.Parallel()

	c := New[codec.RoadmapItem](RoadmapShape{}, "Beta:done:blue")
	steps := []func(){
		func() { c.UpdateField(1, FieldTitle, "Launch") },
		func() { c.Commit() },
		func() { c.UpdateField(1, FieldTitle, "") },
		func() { c.Commit() },
		func() { c.RemoveAt(0) },
		func() { c.Commit() },
	}
	for _, step := range steps {
		step()
		c.Commit()
		items := c.Items()
		require.Equal(t, "", items[len(items)-1].Title)
		if len(items) > 1 {
			require.NotEqual(t, "", items[len(items)-2].Title)
		}
	}
	require.Equal(t, codec.DefaultRoadmapColor, c.At(c.Len()-1).Color)
}

func TestForecastShapeParsesTemp(t *testing.T) {
	t.Parallel()

	c := New[ForecastRow](ForecastShape{}, "")
	c.UpdateField(0, FieldTime, "Mon")
	require.Equal(t, "Mon:21", c.UpdateField(0, FieldTemp, "21"))
	require.Equal(t, "Mon:0", c.UpdateField(0, FieldTemp, "hot"))
	require.Equal(t, "hot", ForecastShape{}.Get(c.At(0), FieldTemp))
}

func TestForecastShapeKeepsPartialTemp(t *testing.T) {
	t.Parallel()

	c := New[ForecastRow](ForecastShape{}, "Mon:3\nTue:warm")
	require.Equal(t, []ForecastRow{{Time: "Mon", TempText: "3"}, {Time: "Tue", TempText: "0"}, {}}, c.Items())

	tests := []struct {
		text string
		want string
	}{
		{text: "", want: "Mon:0\nTue:0"},
		{text: "-", want: "Mon:0\nTue:0"},
		{text: "-5", want: "Mon:-5\nTue:0"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, c.UpdateField(0, FieldTemp, tt.text))
		require.Equal(t, tt.text, ForecastShape{}.Get(c.At(0), FieldTemp))
		require.Equal(t, "Mon", c.At(0).Time)
	}
}

func TestComparisonRowShapeFields(t *testing.T) {
	t.Parallel()

	c := New[codec.ComparisonRow](ComparisonRowShape{}, "Storage:10GB:1TB")
	require.Equal(t, "Storage:10GB:2TB", c.UpdateField(0, FieldRight, "2TB"))
	require.Equal(t, []string{FieldLabel, FieldLeft, FieldRight}, c.Shape().Fields())
}
