package hal

import (
	"strings"
	"testing"
)

func TestSimBusNoAck(t *testing.T) {
	bus := newSimBus()

	var buf [1]byte
	err := bus.Tx(0x40, nil, buf[:])
	if err == nil {
		t.Fatal("Tx to empty bus succeeded, want no-ack error")
	}
	if !strings.Contains(err.Error(), "no ack") {
		t.Fatalf("err = %v, want no-ack", err)
	}
}

func TestSimINA219CalibratedReadings(t *testing.T) {
	bus := newSimBus()
	bus.attach(0x40, newSimINA219())

	// Program the 32V/2A calibration value, then read the current register.
	if err := bus.Tx(0x40, []byte{0x05, 0x10, 0x00}, nil); err != nil {
		t.Fatalf("write calibration: %v", err)
	}
	var buf [2]byte
	if err := bus.Tx(0x40, []byte{0x04}, buf[:]); err != nil {
		t.Fatalf("read current: %v", err)
	}
	raw := int16(uint16(buf[0])<<8 | uint16(buf[1]))
	// Load wanders between 70 and 250 mA; at 0.1mA/bit that is 700..2500.
	if raw < 600 || raw > 2600 {
		t.Fatalf("current register = %d, want a plausible load", raw)
	}
}

func TestSimINA219UncalibratedReadsZero(t *testing.T) {
	bus := newSimBus()
	bus.attach(0x40, newSimINA219())

	var buf [2]byte
	if err := bus.Tx(0x40, []byte{0x04}, buf[:]); err != nil {
		t.Fatalf("read current: %v", err)
	}
	if buf[0] != 0 || buf[1] != 0 {
		t.Fatal("current register nonzero before calibration")
	}
}

func TestSimMAX17048ConfigWritable(t *testing.T) {
	bus := newSimBus()
	bus.attach(0x36, newSimMAX17048())

	if err := bus.Tx(0x36, []byte{0x0C, 0x94, 0x1C}, nil); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var buf [2]byte
	if err := bus.Tx(0x36, []byte{0x0C}, buf[:]); err != nil {
		t.Fatalf("read config: %v", err)
	}
	if got := uint16(buf[0])<<8 | uint16(buf[1]); got != 0x941C {
		t.Fatalf("config = %#04x, want 0x941c", got)
	}

	if err := bus.Tx(0x36, []byte{0x04, 0x00, 0x00}, nil); err == nil {
		t.Fatal("write to read-only SOC register succeeded")
	}
}

func TestHostConfigDisablesDevices(t *testing.T) {
	h := NewHost(HostConfig{DisablePowerSensor: true}).(*hostHAL)

	var buf [1]byte
	if err := h.i2c.Tx(0x40, nil, buf[:]); err == nil {
		t.Fatal("disabled INA219 still acks")
	}
	if err := h.i2c.Tx(0x36, nil, buf[:]); err != nil {
		t.Fatalf("fuel gauge missing: %v", err)
	}
}
