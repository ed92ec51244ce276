package gfx

import "image/color"

// Label is a single line of ellipsized text over a solid band. UpdateText
// repaints only the label's own region.
type Label struct {
	text  string
	x, y  int16
	width int16
	bg    color.RGBA
	style TextStyle
}

func NewLabel(text string, x, y, width int16, bg color.RGBA, style TextStyle) *Label {
	return &Label{text: text, x: x, y: y, width: width, bg: bg, style: style}
}

func (l *Label) Draw(d *Display) error {
	return WriteTextWithBackground(d, l.x, l.y, l.style,
		Ellipsize(l.width, l.text, l.style), l.bg, l.width)
}

// UpdateText replaces the text and redraws the label.
func (l *Label) UpdateText(d *Display, text string) error {
	l.text = text
	return l.Draw(d)
}

func (l *Label) Text() string { return l.text }
