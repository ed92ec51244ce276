package gfx

import "image/color"

// Image is a drawable raster asset. Widgets hold images as shared
// immutable values; there is no ownership transfer.
type Image interface {
	Size() (w, h int16)
	Draw(d *Display, x, y int16) error
}

// MonoImage is a 1-bit bitmap drawn in a single color, row-major,
// MSB-first, each row padded to a whole byte. Good enough for glyphs.
type MonoImage struct {
	W, H  int16
	Bits  []byte
	Color color.RGBA
}

func (m *MonoImage) Size() (w, h int16) { return m.W, m.H }

// RGB565Image is a full-color raster in the framebuffer's native pixel
// format, little-endian, tightly packed. Data shorter than W*H*2 truncates
// the drawn region.
type RGB565Image struct {
	W, H int16
	Data []byte
}

func (m *RGB565Image) Size() (w, h int16) { return m.W, m.H }

func (m *RGB565Image) Draw(d *Display, x, y int16) error {
	for row := int16(0); row < m.H; row++ {
		for col := int16(0); col < m.W; col++ {
			off := (int(row)*int(m.W) + int(col)) * 2
			if off+1 >= len(m.Data) {
				return nil
			}
			pixel := uint16(m.Data[off]) | uint16(m.Data[off+1])<<8
			r, g, b := rgb888From565(pixel)
			d.SetPixel(x+col, y+row, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return nil
}

func (m *MonoImage) Draw(d *Display, x, y int16) error {
	stride := (int(m.W) + 7) / 8
	for row := int16(0); row < m.H; row++ {
		base := int(row) * stride
		if base >= len(m.Bits) {
			break
		}
		for col := int16(0); col < m.W; col++ {
			idx := base + int(col)/8
			if idx >= len(m.Bits) {
				break
			}
			if m.Bits[idx]&(0x80>>(uint(col)%8)) != 0 {
				d.SetPixel(x+col, y+row, m.Color)
			}
		}
	}
	return nil
}
