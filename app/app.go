// Package app wires the meter together: it probes the sensors, spawns the
// input producers, and runs the render loop that owns the display.
package app

import (
	"fmt"
	"time"

	"wattmeter/bus"
	"wattmeter/drivers/ina219"
	"wattmeter/drivers/max17048"
	"wattmeter/gfx"
	"wattmeter/hal"
	"wattmeter/input"
)

// Config carries the timing knobs. Zero values select the defaults; tests
// and the headless runner shrink them.
type Config struct {
	PollInterval time.Duration
	Settle       time.Duration
	Cooldown     time.Duration
	SplashHold   time.Duration
}

const defaultSplashHold = 5 * time.Second

// New initializes and starts the meter with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// Run starts the meter and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	_ = New(h)
	select {}
}

// NewWithConfig starts every task and returns a per-frame step hook for
// the host runner (a no-op; the tasks are free-running goroutines).
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	if cfg.SplashHold <= 0 {
		cfg.SplashHold = defaultSplashHold
	}

	log := h.Logger()
	d := gfx.NewDisplay(h.Display().Framebuffer())
	theme := gfx.DefaultTheme()

	// One arbiter for the physical bus; the two drivers get independent
	// handles and can never interleave transactions.
	shared := bus.NewShared(h.SensorBus())
	powerHandle := shared.Device(ina219.Addr)
	gaugeHandle := shared.Device(max17048.Addr)

	hasPower := powerHandle.Probe() == nil
	hasGauge := gaugeHandle.Probe() == nil
	log.WriteLineString(fmt.Sprintf("ina219 present: %v", hasPower))
	log.WriteLineString(fmt.Sprintf("max17048 present: %v", hasGauge))

	// The single event slot every producer feeds. Capacity 1: producers
	// block until the render loop drains the previous event.
	events := make(chan input.Event, 1)
	calib := &input.Signal{}

	btns := h.Buttons()
	edges := [...]hal.Edge{hal.EdgeFalling, hal.EdgeRising, hal.EdgeRising}
	for id := 0; id < btns.Count() && id < len(edges); id++ {
		pin := btns.Pin(id)
		if pin == nil {
			continue
		}
		go input.NewMonitor(int8(id), pin, edges[id], cfg.Cooldown, events, log).Run()
	}

	if hasPower {
		dev := ina219.New(powerHandle)
		go input.NewPoller(dev, ina219.Cal32V2A, cfg.PollInterval, cfg.Settle, calib, events, log).Run()
	}

	var gauge *max17048.Device
	if hasGauge {
		g, err := max17048.New(gaugeHandle)
		if err != nil {
			log.WriteLineString(fmt.Sprintf("app: fuel gauge: %v", err))
		} else {
			gauge = g
			// Nominal board ambient; no thermistor on this hardware.
			if err := gauge.CompensateTemp(25); err != nil {
				log.WriteLineString(fmt.Sprintf("app: rcomp: %v", err))
			}
		}
	}

	loop := newRenderLoop(d, theme, calib, log)
	go func() {
		loop.boot(gauge, hasPower, cfg.SplashHold)
		loop.run(events)
	}()

	return func() error { return nil }
}
