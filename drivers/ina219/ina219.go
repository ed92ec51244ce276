// Package ina219 drives the TI INA219 high-side current/power monitor.
package ina219

import "fmt"

// Addr is the default 7-bit bus address.
const Addr = 0x40

const (
	regConfig      = 0x00
	regShunt       = 0x01
	regBus         = 0x02
	regPower       = 0x03
	regCurrent     = 0x04
	regCalibration = 0x05
)

// Bus is the arbitrated device handle the driver talks through.
type Bus interface {
	WriteRead(w, r []byte) error
	Write(w []byte) error
}

// Calibration selects one of the fixed range presets. The set is ordered;
// the UI cycles through it with wraparound.
type Calibration uint8

const (
	Cal32V2A Calibration = iota
	Cal32V1A
	Cal16V400mA

	// NumCalibrations is the cardinality of the preset set.
	NumCalibrations = 3
)

// Next returns the following preset, wrapping at the end of the set.
func (c Calibration) Next() Calibration {
	return (c + 1) % NumCalibrations
}

func (c Calibration) String() string {
	switch c {
	case Cal32V2A:
		return "32V - 2A"
	case Cal32V1A:
		return "32V - 1A"
	case Cal16V400mA:
		return "16V - 400mA"
	default:
		return "unknown"
	}
}

// preset carries the register values and scale factors for one range.
// Config word: bus range | PGA gain | 12-bit bus ADC | 12-bit shunt ADC |
// continuous shunt+bus mode. Power LSB is 20x the current LSB per the
// datasheet, folded into the multiplier.
type preset struct {
	config     uint16
	calValue   uint16
	divider    float32 // raw counts per mA
	multiplier float32 // mW per raw count
}

var presets = [NumCalibrations]preset{
	Cal32V2A:    {config: 0x399F, calValue: 4096, divider: 10, multiplier: 2.0},
	Cal32V1A:    {config: 0x399F, calValue: 10240, divider: 25, multiplier: 0.8},
	Cal16V400mA: {config: 0x019F, calValue: 8192, divider: 20, multiplier: 1.0},
}

// Reading is one power snapshot. Copied by value into events; never shared.
type Reading struct {
	Shunt   float32 // shunt voltage, mV
	Voltage float32 // bus voltage, V
	Current float32 // mA
	Power   float32 // mW
}

// Device is an INA219 bound to a bus handle.
type Device struct {
	bus        Bus
	divider    float32
	multiplier float32
}

// New returns an uninitialized device. Init must succeed before Sense
// returns meaningful values.
func New(bus Bus) *Device {
	return &Device{bus: bus}
}

// Init programs the calibration and configuration registers for the given
// preset. It must be called again after any calibration change; the driver
// caches only the scale factors, the device retains the registers.
func (d *Device) Init(cal Calibration) error {
	if int(cal) >= len(presets) {
		return fmt.Errorf("ina219: invalid calibration %d", cal)
	}
	p := presets[cal]
	if err := d.writeRegister(regCalibration, p.calValue); err != nil {
		return fmt.Errorf("ina219: write calibration: %w", err)
	}
	if err := d.writeRegister(regConfig, p.config); err != nil {
		return fmt.Errorf("ina219: write config: %w", err)
	}
	d.divider = p.divider
	d.multiplier = p.multiplier
	return nil
}

// Sense reads all four measurement registers and converts them to
// engineering units.
func (d *Device) Sense() (Reading, error) {
	if d.divider == 0 {
		return Reading{}, fmt.Errorf("ina219: not initialized")
	}

	shunt, err := d.readRegister(regShunt)
	if err != nil {
		return Reading{}, fmt.Errorf("ina219: read shunt: %w", err)
	}
	busRaw, err := d.readRegister(regBus)
	if err != nil {
		return Reading{}, fmt.Errorf("ina219: read bus: %w", err)
	}
	current, err := d.readRegister(regCurrent)
	if err != nil {
		return Reading{}, fmt.Errorf("ina219: read current: %w", err)
	}
	power, err := d.readRegister(regPower)
	if err != nil {
		return Reading{}, fmt.Errorf("ina219: read power: %w", err)
	}

	return Reading{
		// Shunt register is signed, 10uV per bit.
		Shunt: float32(int16(shunt)) * 0.01,
		// Bus voltage sits in bits 15..3, 4mV per bit.
		Voltage: float32(busRaw>>3) * 4 / 1000,
		Current: float32(int16(current)) / d.divider,
		Power:   float32(power) * d.multiplier,
	}, nil
}

func (d *Device) readRegister(reg uint8) (uint16, error) {
	var buf [2]byte
	if err := d.bus.WriteRead([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

func (d *Device) writeRegister(reg uint8, value uint16) error {
	return d.bus.Write([]byte{reg, byte(value >> 8), byte(value)})
}
