package gfx

import "image/color"

// Default button footprint.
const (
	ButtonWidth  = 90
	ButtonHeight = 50

	buttonMargin = 5
	buttonRadius = 10
)

// Button draws a rounded plate inset from its bounding box with an image
// centered on it.
type Button struct {
	image Image
	x, y  int16
	w, h  int16
}

func NewButton(img Image, x, y int16) *Button {
	return &Button{image: img, x: x, y: y, w: ButtonWidth, h: ButtonHeight}
}

// SetImage swaps the button face.
func (b *Button) SetImage(img Image) {
	b.image = img
}

func (b *Button) Draw(d *Display, bg color.RGBA) error {
	plateX := b.x + buttonMargin
	plateY := b.y + buttonMargin
	plateW := b.w - 2*buttonMargin
	plateH := b.h - 2*buttonMargin
	if err := d.fillRoundedRect(plateX, plateY, plateW, plateH, buttonRadius, bg); err != nil {
		return err
	}
	if b.image == nil {
		return nil
	}
	iw, ih := b.image.Size()
	return b.image.Draw(d, plateX+(plateW-iw)/2, plateY+(plateH-ih)/2)
}

// Bounds returns the full (uninset) bounding box.
func (b *Button) Bounds() (x, y, w, h int16) {
	return b.x, b.y, b.w, b.h
}

// Contains reports whether the point falls inside the bounding box.
func (b *Button) Contains(px, py int16) bool {
	return px >= b.x && px < b.x+b.w && py >= b.y && py < b.y+b.h
}
