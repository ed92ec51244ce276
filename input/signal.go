package input

import (
	"sync"

	"wattmeter/drivers/ina219"
)

// Signal is a single-slot, latest-wins calibration mailbox from the render
// loop back to the poller. Set overwrites any unread value; there is no
// queue. The zero value is ready to use.
type Signal struct {
	mu  sync.Mutex
	set bool
	cal ina219.Calibration
}

// Set stores a calibration, replacing any pending one.
func (s *Signal) Set(cal ina219.Calibration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cal = cal
	s.set = true
}

// TryGet consumes the pending calibration, if any.
func (s *Signal) TryGet() (ina219.Calibration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return 0, false
	}
	s.set = false
	return s.cal, true
}
