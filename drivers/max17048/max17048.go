// Package max17048 drives the Maxim MAX17048 lithium fuel gauge.
package max17048

import "fmt"

// Addr is the fixed 7-bit bus address.
const Addr = 0x36

const (
	regVCell   = 0x02
	regSOC     = 0x04
	regVersion = 0x08
	regConfig  = 0x0C
	regCRate   = 0x16
)

// defaultRCOMP is the compensation baseline for a 25C-characterized cell.
const defaultRCOMP = 0x97

// Bus is the arbitrated device handle the driver talks through.
type Bus interface {
	WriteRead(w, r []byte) error
	Write(w []byte) error
}

// Device is a MAX17048 bound to a bus handle.
type Device struct {
	bus Bus
}

// New binds the gauge and programs the default RCOMP baseline.
func New(bus Bus) (*Device, error) {
	d := &Device{bus: bus}
	if err := d.compensation(defaultRCOMP); err != nil {
		return nil, fmt.Errorf("max17048: set rcomp: %w", err)
	}
	return d, nil
}

// Version returns the chip production version register.
func (d *Device) Version() (uint16, error) {
	return d.readRegister(regVersion)
}

// CellVoltage returns the cell voltage in volts (78.125uV per bit).
func (d *Device) CellVoltage() (float32, error) {
	raw, err := d.readRegister(regVCell)
	if err != nil {
		return 0, err
	}
	return float32(raw) * 0.000078125, nil
}

// ChargePercent returns the modeled state of charge in percent.
func (d *Device) ChargePercent() (float32, error) {
	raw, err := d.readRegister(regSOC)
	if err != nil {
		return 0, err
	}
	return float32(raw) / 256, nil
}

// ChargeRate returns the charge/discharge rate in %/hr (0.208%/hr per bit).
func (d *Device) ChargeRate() (float32, error) {
	raw, err := d.readRegister(regCRate)
	if err != nil {
		return 0, err
	}
	return float32(raw) * 0.208, nil
}

// CompensateTemp adjusts RCOMP for the given cell temperature. The curve
// is the datasheet's piecewise compensation: above 20C the baseline drops
// by 0.5 per degree, at or below 20C by 5.0 per degree. The two slopes are
// deliberate; a single linear fit does not match the part.
func (d *Device) CompensateTemp(tempC float32) error {
	var rcomp float32
	if tempC > 20 {
		rcomp = defaultRCOMP + (tempC-20)*-0.5
	} else {
		rcomp = defaultRCOMP + (tempC-20)*-5.0
	}
	if rcomp < 0 {
		rcomp = 0
	}
	if rcomp > 0xFF {
		rcomp = 0xFF
	}
	return d.compensation(uint8(rcomp))
}

// compensation rewrites the RCOMP byte (CONFIG high byte), preserving the
// alert/sleep bits in the low byte.
func (d *Device) compensation(rcomp uint8) error {
	value, err := d.readRegister(regConfig)
	if err != nil {
		return err
	}
	value &= 0x00FF
	value |= uint16(rcomp) << 8
	return d.writeRegister(regConfig, value)
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
