package geometry

import (
	"doorview/internal/engine"

	"github.com/zyedidia/generic/mapset"
)

// Tracker owns the set of live geometries. Releasing a geometry through the
// tracker marks it disposed and fires Released, which the render backend
// listens to in order to free the matching GPU buffers.
type Tracker struct {
	live     mapset.Set[*Geometry]
	Released engine.EventWithArg[*Geometry]
}

func NewTracker() *Tracker {
	return &Tracker{live: mapset.New[*Geometry]()}
}

// Track registers g as live and returns it.
func (t *Tracker) Track(g *Geometry) *Geometry {
	t.live.Put(g)
	return g
}

func (t *Tracker) Box(width, height, depth float32) *Geometry {
	return t.Track(NewBox(width, height, depth))
}

func (t *Tracker) Torus(radius, tube float32) *Geometry {
	return t.Track(NewTorus(radius, tube, DefaultRadialSegments, DefaultTubularSegments))
}

func (t *Tracker) Plane(width, length float32) *Geometry {
	return t.Track(NewPlane(width, length))
}

// Release disposes g. Releasing an untracked or already released geometry
// does nothing.
func (t *Tracker) Release(g *Geometry) {
	if g == nil || !t.live.Has(g) {
		return
	}
	t.live.Remove(g)
	g.disposed = true
	t.Released.Invoke(g)
}

// Live is the number of tracked geometries that have not been released.
func (t *Tracker) Live() int {
	return t.live.Size()
}

// ReleaseAll disposes every live geometry.
func (t *Tracker) ReleaseAll() {
	var all []*Geometry
	t.live.Each(func(g *Geometry) {
		all = append(all, g)
	})
	for _, g := range all {
		t.Release(g)
	}
}
