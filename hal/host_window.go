//go:build !tinygo && cgo

package hal

import (
	"image"

	"wattmeter/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunWindow starts a desktop window that displays the framebuffer and maps
// keys 1/2/3 onto buttons D0/D1/D2. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg HostConfig) error {
	h := NewHost(cfg).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Wattmeter (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*3, h.fb.height*3)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

var buttonKeys = [...]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

func (g *hostGame) Update() error {
	for id, key := range buttonKeys {
		pin := g.h.btns.pin(id)
		if pin == nil {
			continue
		}
		if inpututil.IsKeyJustPressed(key) {
			pin.press()
		}
		if inpututil.IsKeyJustReleased(key) {
			pin.release()
		}
	}
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
