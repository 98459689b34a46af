package slide_test

import (
	"testing"

	"github.com/adrianliechti/carousel/pkg/slide"

	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	tests := []struct {
		input string
		want  slide.Type
	}{
		{"title", slide.TypeTitle},
		{"TITLE", slide.TypeTitle},
		{"Title", slide.TypeTitle},
		{"quote", slide.TypeQuote},
		{"QuOtE", slide.TypeQuote},
		{"", slide.TypeDefault},
		{"body", slide.TypeDefault},
		{" title", slide.TypeDefault},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, slide.Slide{Type: tt.input}.Kind())
		})
	}
}

func TestContent(t *testing.T) {
	text := "Hello"
	empty := ""

	require.Equal(t, "Hello", slide.Slide{Number: 3, Text: &text}.Content())
	require.Equal(t, "", slide.Slide{Number: 3, Text: &empty}.Content())
	require.Equal(t, "Slide 3", slide.Slide{Number: 3}.Content())
	require.Equal(t, "Slide 0", slide.Slide{}.Content())
}

func TestFileName(t *testing.T) {
	require.Equal(t, "post1.png", slide.FileName(1))
	require.Equal(t, "post12.png", slide.FileName(12))
	require.Equal(t, "post-1.png", slide.FileName(-1))
}

func TestStylesLookup(t *testing.T) {
	styles := slide.DefaultStyles()

	require.Equal(t, slide.Style{Font: "garamond", Size: 72}, styles.Lookup(slide.Slide{Type: "Title"}))
	require.Equal(t, slide.Style{Font: "amiri", Size: 48}, styles.Lookup(slide.Slide{Type: "quote"}))
	require.Equal(t, slide.Style{Font: "lora", Size: 60}, styles.Lookup(slide.Slide{Type: "list"}))
	require.Equal(t, slide.Style{Font: "lora", Size: 60}, styles.Lookup(slide.Slide{}))

	partial := slide.Styles{
		slide.TypeDefault: {Font: "lora", Size: 30},
	}

	require.Equal(t, slide.Style{Font: "lora", Size: 30}, partial.Lookup(slide.Slide{Type: "title"}))
}
