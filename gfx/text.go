package gfx

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// TextStyle bundles a font with its color and vertical metrics. CharWidth
// is measured once at construction; the toolkit's layout math assumes a
// fixed-width font, which holds for the FreeMono faces the meter uses.
type TextStyle struct {
	Font       tinyfont.Fonter
	Color      color.RGBA
	LineHeight int16 // row advance
	Baseline   int16 // offset from row top to text baseline
	CharWidth  int16
}

// NewTextStyle measures the font and returns a ready style.
func NewTextStyle(font tinyfont.Fonter, c color.RGBA, lineHeight, baseline int16) TextStyle {
	_, outbox := tinyfont.LineWidth(font, "0")
	return TextStyle{
		Font:       font,
		Color:      c,
		LineHeight: lineHeight,
		Baseline:   baseline,
		CharWidth:  int16(outbox),
	}
}

// WithColor returns a copy of the style in a different color.
func (s TextStyle) WithColor(c color.RGBA) TextStyle {
	s.Color = c
	return s
}

// TextWidth is the advance of text in this style (monospace approximation).
func (s TextStyle) TextWidth(text string) int16 {
	return int16(len(text)) * s.CharWidth
}

// WriteText draws one line of text with the row's top-left at (x, y) and
// returns the x position immediately after it, for layout chaining.
func WriteText(d *Display, x, y int16, style TextStyle, text string) int16 {
	tinyfont.WriteLine(d, style.Font, x, y+style.Baseline, text, style.Color)
	return x + style.TextWidth(text)
}

// WriteTextWithBackground fills a width-wide band of the style's line
// height before drawing. Painting the band first erases leftovers from a
// previous, longer string, so redraws do not ghost when the text shrinks.
func WriteTextWithBackground(d *Display, x, y int16, style TextStyle, text string, bg color.RGBA, width int16) error {
	if err := d.FillRectangle(x, y, width, style.LineHeight, bg); err != nil {
		return err
	}
	tinyfont.WriteLine(d, style.Font, x, y+style.Baseline, text, style.Color)
	return nil
}

// Ellipsize shortens text to fit maxWidth, replacing the tail with "...".
// The budget is counted in character cells (monospace approximation, not
// pixel measurement); text that already fits is returned unchanged, so the
// function is idempotent. Widths under four cells are clamped up to four
// (one visible character plus the marker) rather than slicing with a
// negative index; such text overflows its box instead of panicking.
func Ellipsize(maxWidth int16, text string, style TextStyle) string {
	cw := style.CharWidth
	if cw <= 0 {
		return text
	}
	if int(cw)*len(text) <= int(maxWidth) {
		return text
	}
	visible := int(maxWidth / cw)
	if visible < 4 {
		visible = 4
	}
	return text[:visible-3] + "..."
}
