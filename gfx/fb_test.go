package gfx

import (
	"image/color"

	"wattmeter/hal"
)

// testFramebuffer is an in-memory RGB565 buffer for widget tests.
type testFramebuffer struct {
	w, h     int
	buf      []byte
	presents int
}

func newTestFramebuffer(w, h int) *testFramebuffer {
	return &testFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *testFramebuffer) Width() int              { return f.w }
func (f *testFramebuffer) Height() int             { return f.h }
func (f *testFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *testFramebuffer) Buffer() []byte          { return f.buf }

func (f *testFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565From888(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(pixel)
		f.buf[i+1] = byte(pixel >> 8)
	}
}

func (f *testFramebuffer) Present() error {
	f.presents++
	return nil
}

// pixel returns the raw RGB565 value at (x, y).
func (f *testFramebuffer) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func (f *testFramebuffer) pixelIs(x, y int, c color.RGBA) bool {
	return f.pixel(x, y) == rgb565From888(c.R, c.G, c.B)
}
