package bus

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// countingBus flags any transaction that starts while another is still in
// flight.
type countingBus struct {
	inFlight    int32
	interleaved int32
	txs         int32
}

func (b *countingBus) Tx(addr uint16, w, r []byte) error {
	if atomic.AddInt32(&b.inFlight, 1) != 1 {
		atomic.StoreInt32(&b.interleaved, 1)
	}
	runtime.Gosched() // widen the window so interleaving would be caught
	atomic.AddInt32(&b.txs, 1)
	atomic.AddInt32(&b.inFlight, -1)
	return nil
}

func TestSharedSerializesHandles(t *testing.T) {
	phys := &countingBus{}
	shared := NewShared(phys)
	a := shared.Device(0x40)
	b := shared.Device(0x36)

	const perDevice = 1000
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < perDevice; i++ {
			var buf [2]byte
			if err := a.WriteRead([]byte{0x02}, buf[:]); err != nil {
				t.Errorf("WriteRead: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < perDevice; i++ {
			if err := b.Write([]byte{0x0C, 0x97, 0x00}); err != nil {
				t.Errorf("Write: %v", err)
				return
			}
		}
	}()
	wg.Wait()

	if atomic.LoadInt32(&phys.interleaved) != 0 {
		t.Fatal("transactions from separate handles interleaved")
	}
	if got := atomic.LoadInt32(&phys.txs); got != 2*perDevice {
		t.Fatalf("transactions = %d, want %d", got, 2*perDevice)
	}
}

type erringBus struct {
	err error
}

func (b *erringBus) Tx(addr uint16, w, r []byte) error {
	return b.err
}

func TestDeviceErrorPassthrough(t *testing.T) {
	sentinel := errors.New("i2c: no ack from 0x40")
	d := NewShared(&erringBus{err: sentinel}).Device(0x40)

	if err := d.Probe(); !errors.Is(err, sentinel) {
		t.Fatalf("Probe() err = %v, want %v", err, sentinel)
	}
	if err := d.Write([]byte{0x00}); !errors.Is(err, sentinel) {
		t.Fatalf("Write() err = %v, want %v", err, sentinel)
	}
}

type recordingBus struct {
	addrs []uint16
}

func (b *recordingBus) Tx(addr uint16, w, r []byte) error {
	b.addrs = append(b.addrs, addr)
	return nil
}

func TestDeviceAddressBinding(t *testing.T) {
	phys := &recordingBus{}
	shared := NewShared(phys)

	if err := shared.Device(0x40).Probe(); err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if err := shared.Device(0x36).Probe(); err != nil {
		t.Fatalf("Probe: %v", err)
	}

	want := []uint16{0x40, 0x36}
	if len(phys.addrs) != len(want) {
		t.Fatalf("transactions = %d, want %d", len(phys.addrs), len(want))
	}
	for i, addr := range want {
		if phys.addrs[i] != addr {
			t.Fatalf("addrs[%d] = %#x, want %#x", i, phys.addrs[i], addr)
		}
	}
}
