package input

import (
	"fmt"
	"time"

	"wattmeter/hal"
)

// DefaultCooldown is the debounce window after an accepted edge. The
// monitor is not watching the pin during cooldown, so contact bounce
// within the window is never observed.
const DefaultCooldown = 500 * time.Millisecond

// Monitor watches one button pin and emits one event per accepted edge.
type Monitor struct {
	id       int8
	pin      hal.InputPin
	edge     hal.Edge
	cooldown time.Duration
	events   chan<- Event
	log      hal.Logger
}

// NewMonitor builds a monitor for one button. The edge kind follows the
// wiring: pulled-up buttons trigger on the falling edge, pulled-down on
// the rising edge.
func NewMonitor(id int8, pin hal.InputPin, edge hal.Edge, cooldown time.Duration, events chan<- Event, log hal.Logger) *Monitor {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Monitor{
		id:       id,
		pin:      pin,
		edge:     edge,
		cooldown: cooldown,
		events:   events,
		log:      log,
	}
}

// Run blocks on the pin until an edge arrives, emits the button event, and
// sleeps out the cooldown before re-arming. A pin error is fatal to this
// monitor only; the rest of the system keeps running.
func (m *Monitor) Run() {
	for {
		if err := m.pin.WaitForEdge(m.edge); err != nil {
			if m.log != nil {
				m.log.WriteLineString(fmt.Sprintf("button %d: %v; monitor stopped", m.id, err))
			}
			return
		}
		m.events <- ButtonEvent(m.id)
		time.Sleep(m.cooldown)
	}
}
