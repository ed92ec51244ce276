package max17048

import (
	"errors"
	"math"
	"testing"
)

type fakeBus struct {
	regs map[uint8]uint16
	err  error
}

func newFakeBus() *fakeBus {
	return &fakeBus{regs: map[uint8]uint16{
		regConfig:  0x971C,
		regVersion: 0x0012,
	}}
}

func (b *fakeBus) WriteRead(w, r []byte) error {
	if b.err != nil {
		return b.err
	}
	if len(w) != 1 || len(r) != 2 {
		return errors.New("unexpected transaction shape")
	}
	v := b.regs[w[0]]
	r[0] = byte(v >> 8)
	r[1] = byte(v)
	return nil
}

func (b *fakeBus) Write(w []byte) error {
	if b.err != nil {
		return b.err
	}
	if len(w) != 3 {
		return errors.New("unexpected transaction shape")
	}
	b.regs[w[0]] = uint16(w[1])<<8 | uint16(w[2])
	return nil
}

func approx(got, want, tol float32) bool {
	return math.Abs(float64(got-want)) <= float64(tol)
}

func TestNewProgramsBaseline(t *testing.T) {
	bus := newFakeBus()
	bus.regs[regConfig] = 0x4C1C

	if _, err := New(bus); err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := bus.regs[regConfig]; got != 0x971C {
		t.Fatalf("config = %#04x, want 0x971c", got)
	}
}

func TestNewBusErrorWrapped(t *testing.T) {
	sentinel := errors.New("i2c: no ack from 0x36")
	bus := newFakeBus()
	bus.err = sentinel

	if _, err := New(bus); !errors.Is(err, sentinel) {
		t.Fatalf("New() err = %v, want wrapped %v", err, sentinel)
	}
}

func TestReadScales(t *testing.T) {
	bus := newFakeBus()
	bus.regs[regVCell] = 51968 // * 78.125uV = 4.06V
	bus.regs[regSOC] = 84 * 256
	bus.regs[regCRate] = 2

	d, err := New(bus)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	v, err := d.CellVoltage()
	if err != nil {
		t.Fatalf("CellVoltage: %v", err)
	}
	if !approx(v, 4.06, 0.0001) {
		t.Fatalf("CellVoltage = %v, want 4.06", v)
	}

	pct, err := d.ChargePercent()
	if err != nil {
		t.Fatalf("ChargePercent: %v", err)
	}
	if pct != 84 {
		t.Fatalf("ChargePercent = %v, want 84", pct)
	}

	rate, err := d.ChargeRate()
	if err != nil {
		t.Fatalf("ChargeRate: %v", err)
	}
	if !approx(rate, 0.416, 0.0001) {
		t.Fatalf("ChargeRate = %v, want 0.416", rate)
	}

	ver, err := d.Version()
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if ver != 0x0012 {
		t.Fatalf("Version = %#04x, want 0x0012", ver)
	}
}

func TestCompensateTempSlopes(t *testing.T) {
	cases := []struct {
		tempC float32
		rcomp uint16
	}{
		{25, 0x94},  // 0x97 - 5*0.5 = 148.5, truncated
		{20, 0x97},  // boundary sits on the steep branch, delta 0
		{0, 0xFB},   // 0x97 + 20*5.0
		{-20, 0xFF}, // clamped high
		{60, 0x83},  // 0x97 - 40*0.5
	}
	for _, tc := range cases {
		bus := newFakeBus()
		d, err := New(bus)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := d.CompensateTemp(tc.tempC); err != nil {
			t.Fatalf("CompensateTemp(%v): %v", tc.tempC, err)
		}
		if got := bus.regs[regConfig] >> 8; got != tc.rcomp {
			t.Fatalf("CompensateTemp(%v): rcomp = %#02x, want %#02x", tc.tempC, got, tc.rcomp)
		}
	}
}

func TestCompensationPreservesLowByte(t *testing.T) {
	bus := newFakeBus()
	bus.regs[regConfig] = 0x0055

	d, err := New(bus)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.CompensateTemp(0); err != nil {
		t.Fatalf("CompensateTemp: %v", err)
	}
	if got := bus.regs[regConfig] & 0x00FF; got != 0x55 {
		t.Fatalf("config low byte = %#02x, want 0x55", got)
	}
}
