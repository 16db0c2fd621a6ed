package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

func bounds(lo, hi float64) schema.PropDefinition {
	return schema.PropDefinition{Type: schema.TypeNumber, Min: &lo, Max: &hi}
}

func TestNumberParsesAndClamps(t *testing.T) {
	t.Parallel()

	def := bounds(0, 64)
	tests := []struct {
		input string
		want  float64
	}{
		{input: "12", want: 12},
		{input: " 7.5 ", want: 7.5},
		{input: "-3", want: 0},
		{input: "100", want: 64},
		{input: "abc", want: 0},
		{input: "NaN", want: 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Number(def, tt.input), tt.input)
	}
	require.Equal(t, -3.0, Number(schema.PropDefinition{Type: schema.TypeNumber}, "-3"))
}

func TestSliderStepsWithinRange(t *testing.T) {
	t.Parallel()

	def := schema.PropDefinition{Type: schema.TypeSlider, Step: 0.05}
	lo, hi := 0.0, 1.0
	def.Min, def.Max = &lo, &hi

	require.Equal(t, 0.45, Slider(def, 0.4, 1))
	require.Equal(t, 0.3, Slider(def, 0.4, -2))
	require.Equal(t, 1.0, Slider(def, 0.98, 1))
	require.Equal(t, 0.0, Slider(def, 0.02, -1))

	require.Equal(t, 11.0, Slider(schema.PropDefinition{Type: schema.TypeSlider}, 10.0, 1))
}

func TestToggleSelectCycle(t *testing.T) {
	t.Parallel()

	require.True(t, Toggle(false))
	require.False(t, Toggle(true))
	require.True(t, Toggle("x"))

	options := []string{"sm", "md", "lg"}
	require.Equal(t, "md", Cycle(options, "sm", 1))
	require.Equal(t, "sm", Cycle(options, "lg", 1))
	require.Equal(t, "lg", Cycle(options, "sm", -1))
	require.Equal(t, "md", Cycle(options, "unknown", 1))

	got, err := Select(options, " LG ")
	require.NoError(t, err)
	require.Equal(t, "lg", got)
	_, err = Select(options, "xl")
	require.Error(t, err)
}

func TestTextareaEscapes(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a\nb", Textarea(`a\nb`))
	require.Equal(t, `a\nb\nc`, EscapeNewlines("a\r\nb\nc"))
	require.Equal(t, "a\nb", Textarea(EscapeNewlines("a\nb")))
}

func TestColorKeepsCurrentFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		current string
		want    string
	}{
		{name: "hex to hex", input: "#FF0000", current: "#00ff00", want: "#ff0000"},
		{name: "short hex", input: "#0f0", current: "#000000", want: "#00ff00"},
		{name: "bare hex", input: "0000ff", current: "#000000", want: "#0000ff"},
		{name: "hex to rgb", input: "#ff8000", current: "rgb(0, 0, 0)", want: "rgb(255, 128, 0)"},
		{name: "rgb to hex", input: "rgb(0, 0, 255)", current: "#123456", want: "#0000ff"},
		{name: "hsl to hsl", input: "hsl(120, 100%, 50%)", current: "hsl(0, 0%, 0%)", want: "hsl(120, 100%, 50%)"},
		{name: "hsl to hex", input: "hsl(0,100%,50%)", current: "#ffffff", want: "#ff0000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Color(tt.input, tt.current)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestColorRejectsGarbage(t *testing.T) {
	t.Parallel()

	got, err := Color("tomato", "#112233")
	require.Error(t, err)
	require.Equal(t, "#112233", got)

	_, err = ParseColor("rgb(1,2)")
	require.Error(t, err)
}

func TestLighten(t *testing.T) {
	t.Parallel()

	lighter, err := Lighten("#000000", 0.5)
	require.NoError(t, err)
	require.Equal(t, "#808080", lighter)

	darker, err := Lighten("hsl(0, 100%, 50%)", -0.1)
	require.NoError(t, err)
	require.Equal(t, "hsl(0, 100%, 40%)", darker)
}

func TestFileDataURL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	path := filepath.Join(dir, "pixel.png")
	require.NoError(t, os.WriteFile(path, png, 0o600))

	got, err := File(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "data:image/png;base64,"), got)

	cleared, err := File("  ")
	require.NoError(t, err)
	require.Equal(t, "", cleared)

	_, err = File(filepath.Join(dir, "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = File(dir)
	require.Error(t, err)
}

func TestApplyDispatchesOnType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		def     schema.PropDefinition
		current any
		input   string
		want    any
	}{
		{name: "text", def: schema.PropDefinition{Type: schema.TypeText}, current: "", input: "Hi", want: "Hi"},
		{name: "textarea", def: schema.PropDefinition{Type: schema.TypeTextarea}, current: "", input: `a\nb`, want: "a\nb"},
		{name: "number", def: bounds(0, 10), current: 1.0, input: "42", want: 10.0},
		{name: "boolean", def: schema.PropDefinition{Type: schema.TypeBoolean}, current: false, input: "true", want: true},
		{name: "color", def: schema.PropDefinition{Type: schema.TypeColor}, current: "#000000", input: "rgb(255,255,255)", want: "#ffffff"},
		{name: "variant without options", def: schema.PropDefinition{Type: schema.TypeColorVariant}, current: "", input: "brand", want: "brand"},
		{name: "variant with options", def: schema.PropDefinition{Type: schema.TypeColorVariant, Options: []string{"primary", "danger"}}, current: "primary", input: "Danger", want: "danger"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Apply(tt.def, tt.current, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAdjustAndInline(t *testing.T) {
	t.Parallel()

	sel := schema.PropDefinition{Type: schema.TypeSelect, Options: []string{"a", "b"}}
	got, ok := Adjust(sel, "a", 1)
	require.True(t, ok)
	require.Equal(t, "b", got)
	require.False(t, Inline(sel))

	_, ok = Adjust(schema.PropDefinition{Type: schema.TypeText}, "x", 1)
	require.False(t, ok)
	require.True(t, Inline(schema.PropDefinition{Type: schema.TypeText}))

	require.True(t, Inline(schema.PropDefinition{Type: schema.TypeColorVariant}))
	require.False(t, Inline(schema.PropDefinition{Type: schema.TypeColorVariant, Options: []string{"x"}}))

	toggled, ok := Adjust(schema.PropDefinition{Type: schema.TypeBoolean}, true, 1)
	require.True(t, ok)
	require.Equal(t, false, toggled)
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	require.Equal(t, `a\nb`, Display(schema.PropDefinition{Type: schema.TypeTextarea}, "a\nb"))
	require.Equal(t, "on", Display(schema.PropDefinition{Type: schema.TypeBoolean}, true))
	require.Equal(t, "12.5", Display(schema.PropDefinition{Type: schema.TypeNumber}, 12.5))
	require.Equal(t, "<image/png, 26 bytes>", Display(schema.PropDefinition{Type: schema.TypeFile}, "data:image/png;base64,AAAA"))
}
