package app

import (
	"image/color"

	"wattmeter/gfx"
)

// batteryGlyph builds the splash icon at runtime: a body outline, the
// terminal nub, and a partial fill. Cheaper than carrying bitmap data
// for something this small.
func batteryGlyph(c color.RGBA) *gfx.MonoImage {
	const (
		w = 26
		h = 12
	)
	stride := (w + 7) / 8
	bits := make([]byte, stride*h)
	set := func(x, y int) {
		bits[y*stride+x/8] |= 0x80 >> uint(x%8)
	}

	// Body outline, x in [0,22].
	for x := 0; x <= 22; x++ {
		set(x, 0)
		set(x, h-1)
	}
	for y := 0; y < h; y++ {
		set(0, y)
		set(22, y)
	}
	// Terminal nub.
	for x := 23; x <= 25; x++ {
		for y := 3; y <= 8; y++ {
			set(x, y)
		}
	}
	// Fill to roughly three quarters.
	for x := 2; x <= 16; x++ {
		for y := 2; y <= h-3; y++ {
			set(x, y)
		}
	}

	return &gfx.MonoImage{W: w, H: h, Bits: bits, Color: c}
}
