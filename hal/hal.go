package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// I2C is a register-addressable bus transport.
//
// Tx writes w to the device at addr, then reads len(r) bytes into r.
// Either slice may be empty. The call blocks until the transaction
// completes. The signature matches tinygo.org/x/drivers.I2C so machine
// buses satisfy it directly.
type I2C interface {
	Tx(addr uint16, w, r []byte) error
}

// Edge selects which pin transition ends a WaitForEdge call.
type Edge uint8

const (
	EdgeFalling Edge = iota
	EdgeRising
	EdgeEither
)

func (e Edge) String() string {
	switch e {
	case EdgeFalling:
		return "falling"
	case EdgeRising:
		return "rising"
	case EdgeEither:
		return "either"
	default:
		return "unknown"
	}
}

// InputPin is a single digital input pin with edge detection.
type InputPin interface {
	Name() string
	// WaitForEdge blocks the calling goroutine until the requested
	// transition is observed on the pin. Transitions that occurred while
	// no waiter was armed are discarded, not delivered late; this is
	// what makes a monitor's cooldown sleep an effective debounce.
	WaitForEdge(e Edge) error
	// Read returns the current level (true = high).
	Read() (bool, error)
}

// Buttons provides access to the physical button pins.
type Buttons interface {
	Count() int
	Pin(id int) InputPin
}

// HAL provides the only contact point between the meter runtime and the
// outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Buttons() Buttons
	// SensorBus returns the physical I2C bus the sensors hang off.
	// Callers must route all traffic through a bus arbiter; the HAL
	// performs no locking of its own.
	SensorBus() I2C
}
