// Package compositor binds widgets to layout areas and drives the
// per-tick update, render and flush cycle over the shared 1-bit
// surface.
package compositor

import (
	"fmt"

	"oledpanel/container"
	"oledpanel/fonts"
	"oledpanel/hal"
	"oledpanel/layout"
	"oledpanel/pixel"
)

// Compositor owns one layout grid, the registry of widgets bound to
// it, the shared pixel surface, and the physical sink. It is
// single-threaded: one full tick runs to completion before the next
// begins, and widgets only touch the surface inside their Render call.
type Compositor struct {
	grid    *layout.Grid
	surface *pixel.Surface
	fonts   *fonts.Set
	sink    hal.Sink
	log     hal.Logger

	order  []string // registration order is paint order
	byName map[string]container.Container

	suspended bool
	closed    bool
}

// New returns a compositor whose surface matches the grid's canvas.
func New(grid *layout.Grid, fs *fonts.Set, sink hal.Sink, log hal.Logger) *Compositor {
	return &Compositor{
		grid:    grid,
		surface: pixel.NewSurface(grid.Width(), grid.Height()),
		fonts:   fs,
		sink:    sink,
		log:     log,
		byName:  map[string]container.Container{},
	}
}

// AddContainer resolves areaName and registers the widget at that
// area's rectangle. On an unknown area the registry is left untouched.
// Registering a name that already exists replaces the old entry and
// moves it to the end of the paint order.
func (c *Compositor) AddContainer(ct container.Container, areaName string) error {
	area, err := c.grid.Get(areaName)
	if err != nil {
		return fmt.Errorf("bind container %q: %w", ct.Name(), err)
	}
	ct.SetPosition(area.Rect)

	name := ct.Name()
	if _, exists := c.byName[name]; exists {
		c.dropFromOrder(name)
	}
	c.byName[name] = ct
	c.order = append(c.order, name)
	return nil
}

// RemoveContainer removes the named widget; unknown names are a no-op.
func (c *Compositor) RemoveContainer(name string) {
	if _, exists := c.byName[name]; !exists {
		return
	}
	delete(c.byName, name)
	c.dropFromOrder(name)
}

func (c *Compositor) dropFromOrder(name string) {
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Containers returns the registered widget names in paint order.
func (c *Compositor) Containers() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Tick runs one update-clear-render-flush pass.
//
// Widget updates absorb their own source failures, so the pass always
// reaches the render phase. While suspended, updates still run but the
// render and flush steps are skipped and the buffer goes stale. A
// flush failure is returned for the caller's retry policy; the next
// tick starts again from a clean surface.
func (c *Compositor) Tick() error {
	for _, name := range c.order {
		c.byName[name].Update()
	}

	if c.suspended {
		return nil
	}

	c.surface.Clear()
	for _, name := range c.order {
		c.byName[name].Render(c.surface, c.fonts)
	}

	if err := c.sink.Flush(c.surface); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Suspended reports whether rendering is currently skipped.
func (c *Compositor) Suspended() bool { return c.suspended }

// Suspend powers the panel down. The registry and layout are kept;
// ticks keep updating widget state.
func (c *Compositor) Suspend() {
	if c.suspended {
		return
	}
	c.suspended = true
	if err := c.sink.SetPower(false); err != nil {
		c.logLine("suspend: " + err.Error())
	}
}

// Resume powers the panel back up; the next tick repaints it.
func (c *Compositor) Resume() {
	if !c.suspended {
		return
	}
	c.suspended = false
	if err := c.sink.SetPower(true); err != nil {
		c.logLine("resume: " + err.Error())
	}
}

// Close blanks and powers down the panel. It is safe to call more than
// once; only the first call touches the sink.
func (c *Compositor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.surface.Clear()
	err := c.sink.Flush(c.surface)
	if perr := c.sink.SetPower(false); err == nil {
		err = perr
	}
	return err
}

func (c *Compositor) logLine(s string) {
	if c.log != nil {
		c.log.WriteLineString(s)
	}
}
