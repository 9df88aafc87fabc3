//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"oledpanel/app"
	"oledpanel/hal"
)

func main() {
	cfg := app.DefaultConfig()

	var headless hal.HeadlessConfig
	var useOLED bool
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&useOLED, "oled", false, "Drive a real SSD1306 panel over I2C.")
	flag.StringVar(&cfg.Display.Bus, "bus", cfg.Display.Bus, "I2C bus name for -oled (empty = first available).")
	flag.DurationVar(&cfg.Tick, "interval", cfg.Tick, "Time between refreshes.")
	flag.StringVar(&cfg.NetworkInterface, "iface", "", "Network interface for the IP line.")
	flag.BoolVar(&cfg.DebugOutline, "outline", false, "Draw widget bounds.")
	flag.Parse()

	log := hal.NewLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, headless, useOLED, log); err != nil && err != context.Canceled {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config, headless hal.HeadlessConfig, useOLED bool, log hal.Logger) error {
	headless.Interval = cfg.Tick

	if useOLED {
		sink, err := hal.NewOLEDSink(cfg.Display)
		if err != nil {
			return err
		}
		panel, err := app.New(cfg, sink, log)
		if err != nil {
			sink.Close()
			return err
		}
		headless.Enabled = true
		err = hal.RunHeadless(ctx, headless, panel.Tick)
		if cerr := panel.Close(); err == nil || err == context.Canceled {
			err = cerr
		}
		sink.Close()
		return err
	}

	if headless.Enabled {
		sink := hal.NewMemorySink(cfg.Display.Width, cfg.Display.Height)
		panel, err := app.New(cfg, sink, log)
		if err != nil {
			return err
		}
		err = hal.RunHeadless(ctx, headless, panel.Tick)
		if cerr := panel.Close(); err == nil || err == context.Canceled {
			err = cerr
		}
		return err
	}

	sink := hal.NewWindowSink(cfg.Display.Width, cfg.Display.Height)
	panel, err := app.New(cfg, sink, log)
	if err != nil {
		return err
	}
	err = hal.RunWindow(ctx, sink, panel.Step)
	if cerr := panel.Close(); err == nil {
		err = cerr
	}
	return err
}
