package input

import (
	"fmt"
	"time"

	"wattmeter/drivers/ina219"
	"wattmeter/hal"
)

const (
	// DefaultPollInterval is the sensor sampling period.
	DefaultPollInterval = 1 * time.Second
	// DefaultSettle is how long the monitor is left alone after a
	// calibration change before sampling resumes.
	DefaultSettle = 2 * time.Second
)

// Poller owns the power monitor and publishes one snapshot per tick.
type Poller struct {
	dev        *ina219.Device
	defaultCal ina219.Calibration
	interval   time.Duration
	settle     time.Duration
	calib      *Signal
	events     chan<- Event
	log        hal.Logger
}

// NewPoller builds the sampling task. calib is the single-slot signal the
// render loop pushes calibration changes through.
func NewPoller(dev *ina219.Device, defaultCal ina219.Calibration, interval, settle time.Duration, calib *Signal, events chan<- Event, log hal.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Poller{
		dev:        dev,
		defaultCal: defaultCal,
		interval:   interval,
		settle:     settle,
		calib:      calib,
		events:     events,
		log:        log,
	}
}

// Run initializes the driver and samples forever. Initialization failure
// stops the task: the meter degrades to "no sensor" instead of crashing.
// A failed sample is skipped without an event; transient bus errors are
// tolerated, not surfaced.
func (p *Poller) Run() {
	if err := p.dev.Init(p.defaultCal); err != nil {
		if p.log != nil {
			p.log.WriteLineString(fmt.Sprintf("poller: init: %v; sampling disabled", err))
		}
		return
	}

	t := time.NewTicker(p.interval)
	defer t.Stop()
	for range t.C {
		if cal, ok := p.calib.TryGet(); ok {
			// The re-init result is not re-verified before sampling
			// resumes; a bad preset shows up as skipped samples.
			if err := p.dev.Init(cal); err != nil && p.log != nil {
				p.log.WriteLineString(fmt.Sprintf("poller: recalibrate: %v", err))
			}
			time.Sleep(p.settle)
		}
		r, err := p.dev.Sense()
		if err != nil {
			continue
		}
		p.events <- PowerEvent(r)
	}
}
