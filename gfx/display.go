// Package gfx is the widget toolkit: a drivers.Displayer adapter over the
// HAL framebuffer, text primitives, and the list/button/label/progress
// widgets. Widgets draw into the buffer; callers decide when to present.
package gfx

import (
	"image/color"

	"wattmeter/hal"

	"tinygo.org/x/drivers"
)

// Display adapts a hal.Framebuffer to the drivers.Displayer contract the
// font renderer draws against, plus rectangle fills for backgrounds.
type Display struct {
	fb hal.Framebuffer
}

func NewDisplay(fb hal.Framebuffer) *Display {
	return &Display{fb: fb}
}

func (d *Display) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// Display presents the framebuffer to the panel.
func (d *Display) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

// FillScreen clears the whole buffer to one color.
func (d *Display) FillScreen(c color.RGBA) error {
	w, h := d.Size()
	return d.FillRectangle(0, 0, w, h, c)
}

// fillRoundedRect fills a rounded rectangle with corner radius r.
func (d *Display) fillRoundedRect(x, y, width, height, r int16, c color.RGBA) error {
	if r <= 0 {
		return d.FillRectangle(x, y, width, height, c)
	}
	if 2*r > width {
		r = width / 2
	}
	if 2*r > height {
		r = height / 2
	}

	// Center band, then per-row shortened spans through the corners.
	if err := d.FillRectangle(x, y+r, width, height-2*r, c); err != nil {
		return err
	}
	for dy := int16(0); dy < r; dy++ {
		dx := cornerInset(r, dy)
		if err := d.FillRectangle(x+dx, y+dy, width-2*dx, 1, c); err != nil {
			return err
		}
		if err := d.FillRectangle(x+dx, y+height-1-dy, width-2*dx, 1, c); err != nil {
			return err
		}
	}
	return nil
}

// cornerInset returns how far row dy (from the rounded edge) starts inside
// the radius-r corner arc.
func cornerInset(r, dy int16) int16 {
	h := int(r - 1 - dy)
	rr := int(r)
	for dx := int16(0); dx < r; dx++ {
		w := int(r - 1 - dx)
		if w*w+h*h <= (rr-1)*(rr-1) {
			return dx
		}
	}
	return r
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
