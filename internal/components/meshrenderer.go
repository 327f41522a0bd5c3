package components

import (
	"doorview/internal/assets"
	"doorview/internal/engine"
	"doorview/internal/geometry"
)

// MeshRenderer draws a Geometry with a Material at its GameObject's world
// transform. The renderer owns its geometry: replacing or destroying it
// releases the old geometry through the tracker it was created with.
type MeshRenderer struct {
	engine.BaseComponent
	Geometry       *geometry.Geometry
	Material       *assets.Material
	CastShadows    bool
	ReceiveShadows bool
	tracker        *geometry.Tracker
}

func NewMeshRenderer(tracker *geometry.Tracker, g *geometry.Geometry, m *assets.Material) *MeshRenderer {
	return &MeshRenderer{
		Geometry: g,
		Material: m,
		tracker:  tracker,
	}
}

// SetGeometry releases the current geometry and installs next in its place.
func (m *MeshRenderer) SetGeometry(next *geometry.Geometry) {
	if m.Geometry != nil && m.Geometry != next && m.tracker != nil {
		m.tracker.Release(m.Geometry)
	}
	m.Geometry = next
}

func (m *MeshRenderer) OnDestroy() {
	if m.tracker != nil {
		m.tracker.Release(m.Geometry)
	}
}
