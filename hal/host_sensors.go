//go:build !tinygo

package hal

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// simDevice is one register-addressable device on the simulated bus.
type simDevice interface {
	Tx(w, r []byte) error
}

// simBus is the single physical I2C bus of the simulator. The mutex models
// the wire: one transaction at a time, whoever wins. Logical exclusion
// between device handles is the arbiter's job, not the bus's.
type simBus struct {
	mu   sync.Mutex
	devs map[uint16]simDevice
}

func newSimBus() *simBus {
	return &simBus{devs: make(map[uint16]simDevice)}
}

func (b *simBus) attach(addr uint16, dev simDevice) {
	b.devs[addr] = dev
}

func (b *simBus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	dev, ok := b.devs[addr]
	if !ok {
		return fmt.Errorf("i2c: no ack from 0x%02x", addr)
	}
	return dev.Tx(w, r)
}

// simINA219 models the INA219 register file: 16-bit big-endian registers,
// register pointer in the first written byte. Shunt/bus/current/power are
// synthesized from a wandering load so the display has something to show.
type simINA219 struct {
	mu    sync.Mutex
	start time.Time
	regs  [8]uint16
}

const (
	ina219RegConfig      = 0x00
	ina219RegShunt       = 0x01
	ina219RegBus         = 0x02
	ina219RegPower       = 0x03
	ina219RegCurrent     = 0x04
	ina219RegCalibration = 0x05
)

func newSimINA219() *simINA219 {
	return &simINA219{start: time.Now()}
}

func (d *simINA219) Tx(w, r []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(w) == 0 {
		return nil // address probe
	}
	reg := w[0]
	if int(reg) >= len(d.regs) {
		return fmt.Errorf("ina219 sim: bad register 0x%02x", reg)
	}

	if len(w) == 3 {
		d.regs[reg] = uint16(w[1])<<8 | uint16(w[2])
		return nil
	}
	if len(r) == 2 {
		v := d.read(reg)
		r[0] = byte(v >> 8)
		r[1] = byte(v)
		return nil
	}
	return nil
}

func (d *simINA219) read(reg uint8) uint16 {
	currentMA, busV := d.load()
	switch reg {
	case ina219RegShunt:
		// 0.1 ohm shunt, 10uV per bit.
		return uint16(int16(currentMA * 0.1 / 0.01))
	case ina219RegBus:
		return uint16(busV*1000/4) << 3
	case ina219RegCurrent:
		lsb := d.currentLSBmA()
		if lsb == 0 {
			return 0 // calibration register not programmed yet
		}
		return uint16(int16(currentMA / lsb))
	case ina219RegPower:
		lsb := d.currentLSBmA()
		if lsb == 0 {
			return 0
		}
		return uint16(busV * currentMA / (20 * lsb))
	default:
		return d.regs[reg]
	}
}

// currentLSBmA recovers the current scale from the programmed calibration
// value, the same way the driver chose it.
func (d *simINA219) currentLSBmA() float64 {
	switch d.regs[ina219RegCalibration] {
	case 4096:
		return 0.1
	case 10240:
		return 0.04
	case 8192:
		return 0.05
	default:
		return 0
	}
}

func (d *simINA219) load() (currentMA, busV float64) {
	t := time.Since(d.start).Seconds()
	currentMA = 160 + 90*math.Sin(2*math.Pi*t/8)
	busV = 5.0 - 0.0004*currentMA
	return currentMA, busV
}

// simMAX17048 models the fuel gauge: VCELL/SOC/CRATE read-only telemetry
// plus a writable CONFIG register so RCOMP updates land somewhere real.
type simMAX17048 struct {
	mu     sync.Mutex
	start  time.Time
	config uint16
}

const (
	max17048RegVCell   = 0x02
	max17048RegSOC     = 0x04
	max17048RegVersion = 0x08
	max17048RegConfig  = 0x0C
	max17048RegCRate   = 0x16
)

func newSimMAX17048() *simMAX17048 {
	return &simMAX17048{start: time.Now(), config: 0x971C}
}

func (d *simMAX17048) Tx(w, r []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(w) == 0 {
		return nil // address probe
	}
	reg := w[0]

	if len(w) == 3 {
		if reg != max17048RegConfig {
			return fmt.Errorf("max17048 sim: register 0x%02x is read-only", reg)
		}
		d.config = uint16(w[1])<<8 | uint16(w[2])
		return nil
	}
	if len(r) == 2 {
		v := d.read(reg)
		r[0] = byte(v >> 8)
		r[1] = byte(v)
		return nil
	}
	return nil
}

func (d *simMAX17048) read(reg uint8) uint16 {
	switch reg {
	case max17048RegVCell:
		// Slow discharge from 4.06V; 78.125uV per bit.
		v := 4.06 - time.Since(d.start).Hours()*0.05
		return uint16(v / 0.000078125)
	case max17048RegSOC:
		return 84 * 256
	case max17048RegVersion:
		return 0x0012
	case max17048RegConfig:
		return d.config
	case max17048RegCRate:
		return 2 // ~0.4 %/hr
	default:
		return 0
	}
}
