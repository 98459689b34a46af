package slide

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
)

type Type string

const (
	TypeDefault Type = ""
	TypeTitle   Type = "title"
	TypeQuote   Type = "quote"
)

type Slide struct {
	Number int
	Type   string

	// Text is nil when the slide carries no text at all.
	Text *string
}

// Kind returns the recognized type of the slide, compared without regard to case.
func (s Slide) Kind() Type {
	switch Type(cases.Fold().String(s.Type)) {
	case TypeTitle:
		return TypeTitle
	case TypeQuote:
		return TypeQuote
	}

	return TypeDefault
}

// Content returns the text to draw, falling back to a numbered placeholder.
func (s Slide) Content() string {
	if s.Text == nil {
		return fmt.Sprintf("Slide %d", s.Number)
	}

	return *s.Text
}

// FileName is the deterministic name of the rendered image.
func FileName(number int) string {
	return "post" + strconv.Itoa(number) + ".png"
}

type Style struct {
	Font string
	Size float64
}

// Styles maps slide types to the font and size they are drawn with.
type Styles map[Type]Style

func DefaultStyles() Styles {
	return Styles{
		TypeTitle:   {Font: "garamond", Size: 72},
		TypeQuote:   {Font: "amiri", Size: 48},
		TypeDefault: {Font: "lora", Size: 60},
	}
}

func (s Styles) Lookup(slide Slide) Style {
	if style, ok := s[slide.Kind()]; ok {
		return style
	}

	return s[TypeDefault]
}
