package input

import (
	"testing"

	"wattmeter/drivers/ina219"
)

func TestSignalEmpty(t *testing.T) {
	var s Signal
	if _, ok := s.TryGet(); ok {
		t.Fatal("TryGet() ok = true on empty signal, want false")
	}
}

func TestSignalConsumesOnce(t *testing.T) {
	var s Signal
	s.Set(ina219.Cal32V1A)

	cal, ok := s.TryGet()
	if !ok {
		t.Fatal("TryGet() ok = false, want true")
	}
	if cal != ina219.Cal32V1A {
		t.Fatalf("TryGet() = %v, want %v", cal, ina219.Cal32V1A)
	}
	if _, ok := s.TryGet(); ok {
		t.Fatal("TryGet() ok = true after consume, want false")
	}
}

func TestSignalLatestWins(t *testing.T) {
	var s Signal
	s.Set(ina219.Cal32V1A)
	s.Set(ina219.Cal16V400mA)

	cal, ok := s.TryGet()
	if !ok {
		t.Fatal("TryGet() ok = false, want true")
	}
	if cal != ina219.Cal16V400mA {
		t.Fatalf("TryGet() = %v, want %v", cal, ina219.Cal16V400mA)
	}
}
