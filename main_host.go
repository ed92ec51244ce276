//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"wattmeter/app"
	"wattmeter/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var splash time.Duration
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.Host.DisablePowerSensor, "no-sensor", false, "Simulate a missing INA219.")
	flag.BoolVar(&cfg.Host.DisableFuelGauge, "no-gauge", false, "Simulate a missing MAX17048.")
	flag.DurationVar(&splash, "splash", 0, "Battery splash hold time (0 = default).")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{SplashHold: splash})
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, cfg.Host); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
