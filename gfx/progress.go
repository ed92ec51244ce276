package gfx

import "image/color"

// Progress is a full-panel status card: an image centered above a caption.
// UpdateText repaints the card with the new caption.
type Progress struct {
	image Image
	text  string
	x, y  int16
	w, h  int16
	bg    color.RGBA
	style TextStyle
}

func NewProgress(img Image, text string, x, y, w, h int16, bg color.RGBA, style TextStyle) *Progress {
	return &Progress{image: img, text: text, x: x, y: y, w: w, h: h, bg: bg, style: style}
}

func (p *Progress) Draw(d *Display) error {
	if err := d.FillRectangle(p.x, p.y, p.w, p.h, p.bg); err != nil {
		return err
	}

	imageY := p.y
	if p.image != nil {
		iw, ih := p.image.Size()
		imageX := p.x + (p.w-iw)/2
		imageY = p.y + (p.h-ih)/2 - p.style.LineHeight
		if err := p.image.Draw(d, imageX, imageY); err != nil {
			return err
		}
		imageY += ih
	}

	textX := p.x + (p.w-p.style.TextWidth(p.text))/2
	WriteText(d, textX, imageY+p.style.LineHeight/2, p.style, p.text)
	return nil
}

// UpdateText replaces the caption and redraws.
func (p *Progress) UpdateText(d *Display, text string) error {
	p.text = text
	return p.Draw(d)
}

func (p *Progress) Text() string { return p.text }
