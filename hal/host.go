//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// HostConfig controls which simulated peripherals the host HAL exposes.
type HostConfig struct {
	// DisablePowerSensor leaves the INA219 off the simulated bus so the
	// "no sensor" startup path can be exercised.
	DisablePowerSensor bool
	// DisableFuelGauge leaves the MAX17048 off the simulated bus.
	DisableFuelGauge bool
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	btns   *hostButtons
	i2c    *simBus
}

// New returns a host HAL implementation with all simulated devices attached.
func New() HAL {
	return NewHost(HostConfig{})
}

// NewHost returns a host HAL implementation.
//
// The display matches the target panel (240x135 RGB565). Buttons D0..D2
// are driven from the simulator window keyboard (keys 1/2/3). The sensor
// bus carries register-level INA219 and MAX17048 models.
func NewHost(cfg HostConfig) HAL {
	logger := &hostLogger{w: os.Stdout}

	bus := newSimBus()
	if !cfg.DisablePowerSensor {
		bus.attach(0x40, newSimINA219())
	}
	if !cfg.DisableFuelGauge {
		bus.attach(0x36, newSimMAX17048())
	}

	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(240, 135),
		btns: newHostButtons(
			// D0 is pulled up, D1/D2 are pulled down (matches the board).
			newHostPin("D0", true),
			newHostPin("D1", false),
			newHostPin("D2", false),
		),
		i2c: bus,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Buttons() Buttons { return h.btns }
func (h *hostHAL) SensorBus() I2C   { return h.i2c }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
