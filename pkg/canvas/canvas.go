package canvas

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

const (
	Width  = 1080
	Height = 1350

	// LineGap is the vertical space between two consecutive text lines.
	LineGap = 10
)

var (
	GradientTop    = color.RGBA{0, 0, 0, 255}
	GradientBottom = color.RGBA{26, 26, 26, 255}

	TextColor = color.White
)

// Background returns a canvas filled with a top-to-bottom gradient.
func Background(width, height int) *gg.Context {
	dc := gg.NewContext(width, height)

	grad := gg.NewLinearGradient(0, 0, 0, float64(height))
	grad.AddColorStop(0, GradientTop)
	grad.AddColorStop(1, GradientBottom)

	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.SetFillStyle(grad)
	dc.Fill()

	return dc
}

type Size struct {
	Width  float64
	Height float64
}

// Layout returns the top-left corner of every line so the block of lines is
// centered on a width×height canvas.
func Layout(width, height int, sizes []Size) []image.Point {
	if len(sizes) == 0 {
		return nil
	}

	total := 0.0

	for _, s := range sizes {
		total += s.Height
	}

	total += LineGap * float64(len(sizes)-1)

	y := math.Floor((float64(height) - total) / 2)

	result := make([]image.Point, 0, len(sizes))

	for _, s := range sizes {
		x := math.Floor((float64(width) - s.Width) / 2)

		result = append(result, image.Pt(int(x), int(y)))

		y += s.Height + LineGap
	}

	return result
}

// Lines splits text on explicit line breaks. Empty text has no lines.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}

// DrawCenteredText draws text in white, one line per line break, centered on dc.
func DrawCenteredText(dc *gg.Context, text string, face font.Face) {
	lines := Lines(text)

	if len(lines) == 0 {
		return
	}

	dc.SetFontFace(face)
	dc.SetColor(TextColor)

	sizes := make([]Size, len(lines))

	for i, line := range lines {
		w, h := dc.MeasureString(line)
		sizes[i] = Size{Width: w, Height: h}
	}

	points := Layout(dc.Width(), dc.Height(), sizes)

	// the ascender line sits at the top of the line box
	ascent := float64(face.Metrics().Ascent) / 64

	for i, line := range lines {
		p := points[i]
		dc.DrawString(line, float64(p.X), float64(p.Y)+ascent)
	}
}
