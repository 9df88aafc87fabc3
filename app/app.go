// Package app wires configuration, layout, widgets and the compositor
// into a runnable status panel.
package app

import (
	"fmt"
	"time"

	"oledpanel/compositor"
	"oledpanel/container"
	"oledpanel/fonts"
	"oledpanel/hal"
	"oledpanel/layout"
	"oledpanel/providers"
)

// Panel is an assembled status panel ready to tick.
type Panel struct {
	cfg  *Config
	comp *compositor.Compositor
	log  hal.Logger

	lastTick time.Time
}

// New builds the standard layout on the configured canvas and binds
// one widget per configured entry.
func New(cfg *Config, sink hal.Sink, log hal.Logger) (*Panel, error) {
	grid, err := layout.New(cfg.Display.Width, cfg.Display.Height)
	if err != nil {
		return nil, err
	}
	if err := BuildStandardLayout(grid); err != nil {
		return nil, err
	}

	comp := compositor.New(grid, fonts.NewSet(log), sink, log)
	p := &Panel{cfg: cfg, comp: comp, log: log}

	metrics := cfg.Metrics
	if len(metrics) > len(MetricAreas) {
		metrics = metrics[:len(MetricAreas)]
	}
	for i, mc := range metrics {
		src, err := metricSource(mc.Kind)
		if err != nil {
			return nil, err
		}
		m := container.NewMetric(mc.Name, mc.Glyph, mc.Unit, src, log)
		m.SetDebugOutline(cfg.DebugOutline)
		if err := comp.AddContainer(m, MetricAreas[i]); err != nil {
			return nil, err
		}
	}

	if len(cfg.Services) > 0 {
		svcs := make([]container.Service, len(cfg.Services))
		for i, sc := range cfg.Services {
			svcs[i] = container.Service{
				Name:   sc.Name,
				Glyph:  sc.Glyph,
				Source: providers.SystemdUnit(sc.Unit),
			}
		}
		si := container.NewServiceIcons("services", svcs, log)
		si.SetDebugOutline(cfg.DebugOutline)
		if err := comp.AddContainer(si, AreaServices); err != nil {
			return nil, err
		}
	}

	div := container.NewDivider("divider", container.Horizontal)
	div.SetDebugOutline(cfg.DebugOutline)
	if err := comp.AddContainer(div, AreaDivider); err != nil {
		return nil, err
	}

	hostLine := container.NewText("hostname", cfg.Hostname.Prefix,
		providers.Hostname(), cfg.Hostname.Align, cfg.Hostname.MaxChars, log)
	hostLine.SetDebugOutline(cfg.DebugOutline)
	if err := comp.AddContainer(hostLine, AreaHostname); err != nil {
		return nil, err
	}

	ipLine := container.NewText("ip", cfg.IP.Prefix,
		providers.IPAddress(cfg.NetworkInterface), cfg.IP.Align, cfg.IP.MaxChars, log)
	ipLine.SetDebugOutline(cfg.DebugOutline)
	if err := comp.AddContainer(ipLine, AreaIP); err != nil {
		return nil, err
	}

	return p, nil
}

// Compositor exposes the panel's compositor for suspend/resume and
// registry changes.
func (p *Panel) Compositor() *compositor.Compositor { return p.comp }

// Tick runs one refresh cycle. Flush failures are logged, not
// returned: the panel keeps running and the next tick retries.
func (p *Panel) Tick() error {
	if err := p.comp.Tick(); err != nil {
		if p.log != nil {
			p.log.WriteLineString(fmt.Sprintf("tick: %v", err))
		}
	}
	return nil
}

// Step ticks when the configured interval has elapsed; the window loop
// calls it once per frame.
func (p *Panel) Step() error {
	if !p.lastTick.IsZero() && time.Since(p.lastTick) < p.cfg.Tick {
		return nil
	}
	p.lastTick = time.Now()
	return p.Tick()
}

// Close tears the panel down exactly once.
func (p *Panel) Close() error {
	return p.comp.Close()
}
