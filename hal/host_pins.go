//go:build !tinygo

package hal

import "sync"

// hostPin is a simulated digital input. The simulator window presses and
// releases it; WaitForEdge observes the resulting transitions.
type hostPin struct {
	mu    sync.Mutex
	name  string
	idle  bool // level while unpressed (true for pulled-up wiring)
	level bool
	armed bool

	edges chan Edge
}

func newHostPin(name string, idleHigh bool) *hostPin {
	return &hostPin{
		name:  name,
		idle:  idleHigh,
		level: idleHigh,
		edges: make(chan Edge, 8),
	}
}

func (p *hostPin) Name() string { return p.name }

func (p *hostPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level, nil
}

func (p *hostPin) WaitForEdge(e Edge) error {
	// Edges queued while nobody was waiting are stale: contact bounce
	// during a monitor's cooldown must not fire again on re-arm.
drain:
	for {
		select {
		case <-p.edges:
		default:
			break drain
		}
	}
	p.setArmed(true)
	defer p.setArmed(false)

	for edge := range p.edges {
		if e == EdgeEither || edge == e {
			return nil
		}
	}
	return ErrNotImplemented
}

func (p *hostPin) setArmed(armed bool) {
	p.mu.Lock()
	p.armed = armed
	p.mu.Unlock()
}

func (p *hostPin) isArmed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.armed
}

func (p *hostPin) press()   { p.setLevel(!p.idle) }
func (p *hostPin) release() { p.setLevel(p.idle) }

func (p *hostPin) setLevel(level bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if level == p.level {
		return
	}
	edge := EdgeFalling
	if level {
		edge = EdgeRising
	}
	p.level = level

	// Drop the edge if nobody drained the queue; a real pin interrupt
	// during the monitor's cooldown is equally invisible.
	select {
	case p.edges <- edge:
	default:
	}
}

type hostButtons struct {
	pins []*hostPin
}

func newHostButtons(pins ...*hostPin) *hostButtons {
	return &hostButtons{pins: pins}
}

func (b *hostButtons) Count() int { return len(b.pins) }

func (b *hostButtons) Pin(id int) InputPin {
	if id < 0 || id >= len(b.pins) {
		return nil
	}
	return b.pins[id]
}

func (b *hostButtons) pin(id int) *hostPin {
	if id < 0 || id >= len(b.pins) {
		return nil
	}
	return b.pins[id]
}
