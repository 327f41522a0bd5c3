package components

import (
	"math"

	"doorview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type DirectionalLight struct {
	engine.BaseComponent
	Direction      rl.Vector3
	Color          rl.Color
	Intensity      float32
	AmbientColor   rl.Color
	ShadowDistance float32
}

func NewDirectionalLight() *DirectionalLight {
	return &DirectionalLight{
		Direction:      rl.Vector3Normalize(rl.Vector3{X: 0.35, Y: -1.0, Z: -0.35}),
		Color:          rl.White,
		Intensity:      1.0,
		AmbientColor:   rl.NewColor(60, 60, 60, 255),
		ShadowDistance: 50.0,
	}
}

func (l *DirectionalLight) MoveLightDir(dx, dy, dz float32) {
	l.Direction.X += dx
	l.Direction.Y += dy
	l.Direction.Z += dz
	l.Direction = rl.Vector3Normalize(l.Direction)
}

// Irradiance is the light reaching a surface facing normal, as a color to
// multiply the surface color with. Rougher surfaces scatter more of the
// ambient term and metallic ones less.
func (l *DirectionalLight) Irradiance(normal rl.Vector3, roughness, metallic float32) rl.Color {
	toLight := rl.Vector3Negate(l.Direction)
	diffuse := rl.Vector3DotProduct(rl.Vector3Normalize(normal), toLight)
	if diffuse < 0 {
		diffuse = 0
	}
	ambient := float32(l.AmbientColor.R) / 255.0 * (0.5 + 0.5*roughness) * (1 - 0.5*metallic)
	k := float64(ambient + diffuse*l.Intensity)
	channel := func(lc uint8) uint8 {
		return uint8(math.Min(255, k*float64(lc)))
	}
	return rl.NewColor(channel(l.Color.R), channel(l.Color.G), channel(l.Color.B), 255)
}

// ShadowMatrix projects geometry along the light direction onto the plane
// y = planeY.
func (l *DirectionalLight) ShadowMatrix(planeY float32) rl.Matrix {
	d := l.Direction
	if d.Y > -0.05 {
		d.Y = -0.05
	}
	// p' = p - d * (p.y - planeY) / d.y
	return rl.Matrix{
		M0: 1, M4: -d.X / d.Y, M8: 0, M12: d.X / d.Y * planeY,
		M1: 0, M5: 0, M9: 0, M13: planeY,
		M2: 0, M6: -d.Z / d.Y, M10: 1, M14: d.Z / d.Y * planeY,
		M3: 0, M7: 0, M11: 0, M15: 1,
	}
}
