// Package bus serializes access to a single physical I2C bus shared by
// several logical devices.
package bus

import (
	"sync"

	"wattmeter/hal"
)

// Shared is the arbiter for one physical bus. All device handles created
// from it take the same lock, so a transaction from one handle can never
// interleave with a transaction from another.
type Shared struct {
	mu  sync.Mutex
	bus hal.I2C
}

// NewShared wraps a physical bus.
func NewShared(b hal.I2C) *Shared {
	return &Shared{bus: b}
}

// Device returns a handle bound to one device address. Handles are cheap
// and safe to hand to separate goroutines.
func (s *Shared) Device(addr uint16) *Device {
	return &Device{shared: s, addr: addr}
}

// Device is a thin per-address handle on the shared bus.
type Device struct {
	shared *Shared
	addr   uint16
}

// WriteRead performs an atomic write-then-read transaction. Transport
// errors propagate unchanged.
func (d *Device) WriteRead(w, r []byte) error {
	d.shared.mu.Lock()
	defer d.shared.mu.Unlock()
	return d.shared.bus.Tx(d.addr, w, r)
}

// Write performs an atomic write transaction.
func (d *Device) Write(w []byte) error {
	d.shared.mu.Lock()
	defer d.shared.mu.Unlock()
	return d.shared.bus.Tx(d.addr, w, nil)
}

// Probe checks whether a device acks at this address.
func (d *Device) Probe() error {
	var buf [1]byte
	return d.WriteRead(nil, buf[:])
}
