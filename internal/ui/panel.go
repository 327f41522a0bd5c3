// Package ui draws the debug panel that edits door parameters at runtime.
package ui

import (
	"fmt"

	"doorview/internal/door"
	"doorview/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/leonelquinteros/gotext"
)

const (
	WidthMin  = 0.5
	WidthMax  = 2
	HeightMin = 1
	HeightMax = 4
)

const (
	panelPadding = 10
	rowHeight    = 24
	labelWidth   = 60
	valueWidth   = 44
)

// Control is a numeric slider bound to a float field.
type Control struct {
	Key   string // untranslated label, also the gotext message id
	Value *float32
	Min   float32
	Max   float32
}

func (c *Control) clamp(v float32) float32 {
	if v < c.Min {
		return c.Min
	}
	if v > c.Max {
		return c.Max
	}
	return v
}

type Panel struct {
	Title    string
	Bounds   rl.Rectangle
	Visible  bool
	controls []*Control
	changed  engine.Event
}

// Attach binds sliders to params.Width and params.Height. Each change
// writes the bound field and then calls onChange on the same goroutine.
func Attach(params *door.Parameters, onChange func()) *Panel {
	p := &Panel{
		Title:   "door",
		Bounds:  rl.Rectangle{X: 10, Y: 10, Width: 260},
		Visible: true,
		controls: []*Control{
			{Key: "width", Value: &params.Width, Min: WidthMin, Max: WidthMax},
			{Key: "height", Value: &params.Height, Min: HeightMin, Max: HeightMax},
		},
	}
	p.Bounds.Height = float32(rowHeight*(len(p.controls)+1) + 2*panelPadding)
	p.changed.AddListener(onChange)
	return p
}

// OnChange is fired after any bound value changes.
func (p *Panel) OnChange() *engine.Event {
	return &p.changed
}

func (p *Panel) Controls() []*Control {
	return p.controls
}

func (p *Panel) control(key string) *Control {
	for _, c := range p.controls {
		if c.Key == key {
			return c
		}
	}
	return nil
}

// Set clamps v into the control's range and, if that changes the bound
// value, writes it and fires OnChange. It reports whether a change happened.
func (p *Panel) Set(key string, v float32) (bool, error) {
	c := p.control(key)
	if c == nil {
		return false, fmt.Errorf("no control %q", key)
	}
	v = c.clamp(v)
	if v == *c.Value {
		return false, nil
	}
	*c.Value = v
	p.changed.Invoke()
	return true, nil
}

// Nudge moves a control by delta, subject to the same clamp as Set.
func (p *Panel) Nudge(key string, delta float32) (bool, error) {
	c := p.control(key)
	if c == nil {
		return false, fmt.Errorf("no control %q", key)
	}
	return p.Set(key, *c.Value+delta)
}

// Draw renders the panel and applies any slider movement made this frame.
func (p *Panel) Draw() {
	if !p.Visible {
		return
	}
	gui.GroupBox(p.Bounds, gotext.Get(p.Title))

	x := p.Bounds.X + panelPadding + labelWidth
	y := p.Bounds.Y + panelPadding + rowHeight/2
	w := p.Bounds.Width - 2*panelPadding - labelWidth - valueWidth
	for _, c := range p.controls {
		bounds := rl.Rectangle{X: x, Y: y, Width: w, Height: rowHeight - 6}
		v := gui.Slider(bounds, gotext.Get(c.Key), fmt.Sprintf("%.2f", *c.Value), *c.Value, c.Min, c.Max)
		if v != *c.Value {
			_, _ = p.Set(c.Key, v)
		}
		y += rowHeight
	}
}

// Contains reports whether pos lies over the panel, so camera input can be
// ignored while the user drags a slider.
func (p *Panel) Contains(pos rl.Vector2) bool {
	return p.Visible && rl.CheckCollisionPointRec(pos, p.Bounds)
}
