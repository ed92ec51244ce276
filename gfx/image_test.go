package gfx

import (
	"image/color"
	"testing"
)

func TestMonoImageDraw(t *testing.T) {
	fb := newTestFramebuffer(16, 16)
	d := NewDisplay(fb)
	c := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	// 4x2, left half set on the top row only.
	img := &MonoImage{W: 4, H: 2, Bits: []byte{0xC0, 0x00}, Color: c}
	if err := img.Draw(d, 2, 3); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if !fb.pixelIs(2, 3, c) || !fb.pixelIs(3, 3, c) {
		t.Fatal("set bits not drawn")
	}
	if fb.pixel(4, 3) != 0 || fb.pixel(2, 4) != 0 {
		t.Fatal("clear bits drawn")
	}
}

func TestRGB565ImageDraw(t *testing.T) {
	fb := newTestFramebuffer(8, 8)
	d := NewDisplay(fb)

	red := rgb565From888(0xff, 0, 0)
	img := &RGB565Image{W: 2, H: 1, Data: []byte{
		byte(red), byte(red >> 8),
		byte(red), byte(red >> 8),
	}}
	if err := img.Draw(d, 1, 1); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// The 565 value must survive the round trip through the draw path.
	if fb.pixel(1, 1) != red || fb.pixel(2, 1) != red {
		t.Fatalf("pixels = %#04x, %#04x, want %#04x", fb.pixel(1, 1), fb.pixel(2, 1), red)
	}
}

func TestRGB565ImageShortDataTruncates(t *testing.T) {
	fb := newTestFramebuffer(8, 8)
	d := NewDisplay(fb)

	img := &RGB565Image{W: 4, H: 4, Data: make([]byte, 2)}
	if err := img.Draw(d, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
}
