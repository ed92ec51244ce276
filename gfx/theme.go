package gfx

import "image/color"

// Theme is the flat palette shared by every widget on a screen. It is
// built once and passed by pointer; nothing mutates it afterwards.
type Theme struct {
	ButtonBackground color.RGBA
	ButtonForeground color.RGBA
	ScreenBackground color.RGBA
	TextPrimary      color.RGBA
	Highlight        color.RGBA
	Error            color.RGBA
}

// DefaultTheme is the meter's stock dark palette.
func DefaultTheme() *Theme {
	return &Theme{
		ButtonBackground: color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xff},
		ButtonForeground: color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		ScreenBackground: color.RGBA{A: 0xff},
		TextPrimary:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Highlight:        color.RGBA{R: 0x2a, G: 0x6a, B: 0xd0, A: 0xff},
		Error:            color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff},
	}
}
