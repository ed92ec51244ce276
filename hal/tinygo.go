//go:build tinygo

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/st7789"
)

// Feather ESP32-S3 TFT wiring.
const (
	pinI2CPower = machine.Pin(7)
	pinSDA      = machine.Pin(3)
	pinSCL      = machine.Pin(4)

	pinTFTSCK = machine.Pin(36)
	pinTFTSDO = machine.Pin(35)
	pinTFTSDI = machine.Pin(37)
	pinTFTDC  = machine.Pin(40)
	pinTFTRST = machine.Pin(41)
	pinTFTCS  = machine.Pin(42)
	pinTFTBL  = machine.Pin(45)

	pinBtnD0 = machine.Pin(0)
	pinBtnD1 = machine.Pin(1)
	pinBtnD2 = machine.Pin(2)
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     *tinyGoFramebuffer
	btns   *tinyGoButtons
	i2c    I2C
}

// New returns the on-device HAL implementation.
//
// UART: UART0, 115200 8N1. The STEMMA/I2C rail is power-gated behind
// GPIO7 and must be switched on before the sensors will ack.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	pinI2CPower.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinI2CPower.High()

	machine.I2C0.Configure(machine.I2CConfig{
		SDA:       pinSDA,
		SCL:       pinSCL,
		Frequency: 100_000,
	})

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		fb:     newTinyGoFramebuffer(),
		btns: newTinyGoButtons(
			newTinyGoPin("D0", pinBtnD0, machine.PinInputPullup),
			newTinyGoPin("D1", pinBtnD1, machine.PinInputPulldown),
			newTinyGoPin("D2", pinBtnD2, machine.PinInputPulldown),
		),
		i2c: machine.I2C0,
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Buttons() Buttons { return h.btns }
func (h *tinyGoHAL) SensorBus() I2C   { return h.i2c }

type tinyGoDisplay struct {
	fb *tinyGoFramebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

// tinyGoFramebuffer keeps the pixel buffer in RAM (little-endian RGB565,
// same layout as the host) and blits it to the ST7789 on Present.
type tinyGoFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd     st7789.Device
	scratch []byte
}

func newTinyGoFramebuffer() *tinyGoFramebuffer {
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       pinTFTSCK,
		SDO:       pinTFTSDO,
		SDI:       pinTFTSDI,
		Frequency: 40_000_000,
	})

	lcd := st7789.New(machine.SPI1, pinTFTRST, pinTFTDC, pinTFTCS, pinTFTBL)
	lcd.Configure(st7789.Config{
		Width:     135,
		Height:    240,
		Rotation:  drivers.Rotation90,
		RowOffset: 40,
	})

	const w = 240
	const h = 135
	return &tinyGoFramebuffer{
		w:       w,
		h:       h,
		stride:  w * 2,
		buf:     make([]byte, w*h*2),
		lcd:     lcd,
		scratch: make([]byte, w*h*2),
	}
}

func (f *tinyGoFramebuffer) Width() int          { return f.w }
func (f *tinyGoFramebuffer) Height() int         { return f.h }
func (f *tinyGoFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *tinyGoFramebuffer) StrideBytes() int    { return f.stride }
func (f *tinyGoFramebuffer) Buffer() []byte      { return f.buf }

func (f *tinyGoFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *tinyGoFramebuffer) Present() error {
	// The buffer is little-endian RGB565; the panel wants big-endian.
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.scratch[i] = f.buf[i+1]
		f.scratch[i+1] = f.buf[i]
	}
	return f.lcd.DrawRGBBitmap8(0, 0, f.scratch, int16(f.w), int16(f.h))
}

// tinyGoPin feeds pin-change interrupts into a small queue that
// WaitForEdge drains.
type tinyGoPin struct {
	name  string
	pin   machine.Pin
	edges chan Edge
}

func newTinyGoPin(name string, pin machine.Pin, mode machine.PinMode) *tinyGoPin {
	p := &tinyGoPin{
		name:  name,
		pin:   pin,
		edges: make(chan Edge, 8),
	}
	pin.Configure(machine.PinConfig{Mode: mode})
	pin.SetInterrupt(machine.PinRising|machine.PinFalling, func(mp machine.Pin) {
		edge := EdgeFalling
		if mp.Get() {
			edge = EdgeRising
		}
		select {
		case p.edges <- edge:
		default:
		}
	})
	return p
}

func (p *tinyGoPin) Name() string { return p.name }

func (p *tinyGoPin) Read() (bool, error) {
	return p.pin.Get(), nil
}

func (p *tinyGoPin) WaitForEdge(e Edge) error {
	// Interrupts queued while nobody was waiting are stale: contact
	// bounce during a monitor's cooldown must not fire again on re-arm.
drain:
	for {
		select {
		case <-p.edges:
		default:
			break drain
		}
	}
	for edge := range p.edges {
		if e == EdgeEither || edge == e {
			return nil
		}
	}
	return ErrNotImplemented
}

type tinyGoButtons struct {
	pins []*tinyGoPin
}

func newTinyGoButtons(pins ...*tinyGoPin) *tinyGoButtons {
	return &tinyGoButtons{pins: pins}
}

func (b *tinyGoButtons) Count() int { return len(b.pins) }

func (b *tinyGoButtons) Pin(id int) InputPin {
	if id < 0 || id >= len(b.pins) {
		return nil
	}
	return b.pins[id]
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
