//go:build tinygo

package main

import (
	"machine"
	"time"

	"oledpanel/compositor"
	"oledpanel/container"
	"oledpanel/fonts"
	"oledpanel/hal"
	"oledpanel/layout"
)

// The microcontroller build has no OS to ask about services or
// addresses, so the panel shows the on-chip temperature sensor and
// time since boot.
func main() {
	log := hal.NewLogger()
	start := time.Now()

	sink, err := hal.NewOLEDSink(hal.OLEDConfig{
		Width:    128,
		Height:   32,
		Addr:     hal.DefaultOLEDAddr,
		Contrast: 255,
	})
	if err != nil {
		log.WriteLineString("oled init: " + err.Error())
		return
	}

	grid, err := layout.New(128, 32)
	if err != nil {
		log.WriteLineString("layout: " + err.Error())
		return
	}
	if _, err := grid.Split(layout.RootName, layout.AlongWidth, 2, nil); err != nil {
		log.WriteLineString("layout: " + err.Error())
		return
	}

	comp := compositor.New(grid, fonts.NewSet(log), sink, log)
	comp.AddContainer(container.NewMetric("temperature", "T", "C", chipTemperature, log), "root_0")
	comp.AddContainer(container.NewText("uptime", "Up: ", func() (string, error) {
		return time.Since(start).Truncate(time.Second).String(), nil
	}, container.AlignLeft, 12, log), "root_1")

	for {
		if err := comp.Tick(); err != nil {
			log.WriteLineString("tick: " + err.Error())
		}
		time.Sleep(5 * time.Second)
	}
}

func chipTemperature() (float64, error) {
	return float64(machine.ReadTemperature()) / 1000, nil
}
