package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point. Dragging with the left mouse button
// orbits, the wheel zooms.
type OrbitCamera struct {
	Target    rl.Vector3
	Distance  float32
	Yaw       float32 // degrees around Y, 0 looks down -Z
	Pitch     float32 // degrees above the horizon
	LookSpeed float32
	ZoomSpeed float32

	MinDistance float32
	MaxDistance float32
}

func New(target rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    4.0,
		Yaw:         25.0,
		Pitch:       15.0,
		LookSpeed:   0.3,
		ZoomSpeed:   0.5,
		MinDistance: 1.0,
		MaxDistance: 20.0,
	}
}

// Update applies mouse input unless captured is true, e.g. while the cursor
// is over the debug panel.
func (c *OrbitCamera) Update(captured bool) {
	if captured {
		return
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		c.Orbit(-delta.X*c.LookSpeed, delta.Y*c.LookSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(-wheel * c.ZoomSpeed)
	}
}

// Orbit rotates the camera by the given angles in degrees.
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance += delta
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

func (c *OrbitCamera) Position() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	d := float64(c.Distance)

	return rl.Vector3{
		X: c.Target.X + float32(d*math.Sin(yawRad)*math.Cos(pitchRad)),
		Y: c.Target.Y + float32(d*math.Sin(pitchRad)),
		Z: c.Target.Z + float32(d*math.Cos(yawRad)*math.Cos(pitchRad)),
	}
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
