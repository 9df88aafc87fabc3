package app

import (
	"fmt"
	"time"

	"oledpanel/container"
	"oledpanel/hal"
	"oledpanel/providers"
)

// Config is the panel's whole configuration. It is built once and
// passed by reference; nothing in the core reads global state.
type Config struct {
	Display hal.OLEDConfig
	// Tick is the time between refresh cycles.
	Tick time.Duration
	// Metrics fills the metric areas left to right; at most three are
	// used by the standard layout.
	Metrics  []MetricConfig
	Services []ServiceConfig
	Hostname TextLineConfig
	IP       TextLineConfig
	// NetworkInterface pins the IP line to one interface; empty means
	// the first global unicast address wins.
	NetworkInterface string
	// DebugOutline draws every widget's bounds.
	DebugOutline bool
}

// MetricConfig binds one metric area to a sampler kind.
type MetricConfig struct {
	Name  string
	Kind  string // "cpu", "memory" or "temperature"
	Glyph string
	Unit  string
}

// ServiceConfig binds one service icon to a systemd unit.
type ServiceConfig struct {
	Name  string
	Unit  string
	Glyph string
}

// TextLineConfig styles one info text line.
type TextLineConfig struct {
	Prefix   string
	Align    container.Align
	MaxChars int
}

// DefaultConfig mirrors the stock 128x32 panel setup: three resource
// metrics, Docker and SSH status, hostname and IP lines, refreshed
// every five seconds.
func DefaultConfig() *Config {
	return &Config{
		Display: hal.OLEDConfig{
			Bus:      "1",
			Width:    128,
			Height:   32,
			Addr:     hal.DefaultOLEDAddr,
			Contrast: 255,
		},
		Tick: 5 * time.Second,
		Metrics: []MetricConfig{
			{Name: "memory", Kind: "memory", Glyph: "M", Unit: "%"},
			{Name: "cpu", Kind: "cpu", Glyph: "C", Unit: "%"},
			{Name: "temperature", Kind: "temperature", Glyph: "T", Unit: "C"},
		},
		Services: []ServiceConfig{
			{Name: "Docker", Unit: "docker", Glyph: "D"},
			{Name: "SSH", Unit: "ssh", Glyph: "S"},
		},
		Hostname: TextLineConfig{Prefix: "Host: ", Align: container.AlignLeft, MaxChars: 21},
		IP:       TextLineConfig{Prefix: "IP: ", Align: container.AlignLeft, MaxChars: 21},
	}
}

func metricSource(kind string) (container.MetricSource, error) {
	switch kind {
	case "cpu":
		return providers.CPUPercent(), nil
	case "memory":
		return providers.MemoryPercent(), nil
	case "temperature":
		return providers.CPUTemperature(), nil
	}
	return nil, fmt.Errorf("unknown metric kind %q", kind)
}
