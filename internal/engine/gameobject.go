package engine

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
	destroyed  bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
	for _, child := range g.Children {
		child.Start()
	}
}

// Update ticks this object's components, then its children.
func (g *GameObject) Update(deltaTime float32) {
	if !g.Active || g.destroyed {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
	for _, child := range g.Children {
		child.Update(deltaTime)
	}
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	child.Scene = g.Scene
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// FindChildByTag returns the first direct child carrying tag.
func (g *GameObject) FindChildByTag(tag string) *GameObject {
	for _, c := range g.Children {
		if c.HasTag(tag) {
			return c
		}
	}
	return nil
}

// Walk visits g and all of its descendants depth-first.
func (g *GameObject) Walk(fn func(*GameObject)) {
	fn(g)
	for _, c := range g.Children {
		c.Walk(fn)
	}
}

// Destroy marks the object and its descendants as destroyed and gives every
// component implementing Destroyer a chance to release its resources.
// Calling Destroy more than once is a no-op.
func (g *GameObject) Destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	g.Active = false
	for _, c := range g.components {
		if d, ok := c.(Destroyer); ok {
			d.OnDestroy()
		}
	}
	for _, child := range g.Children {
		child.Destroy()
	}
}

// Destroyed reports whether the object or any ancestor was destroyed.
func (g *GameObject) Destroyed() bool {
	for o := g; o != nil; o = o.Parent {
		if o.destroyed {
			return true
		}
	}
	return false
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	// X then Y then Z, same as WorldMatrix
	rx := float64(parentRot.X) * math.Pi / 180
	ry := float64(parentRot.Y) * math.Pi / 180
	rz := float64(parentRot.Z) * math.Pi / 180
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	rotated := rl.Vector3Transform(scaled, rotMatrix)
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// WorldRotationMatrix rotates X then Y then Z by the object's world rotation.
func (g *GameObject) WorldRotationMatrix() rl.Matrix {
	rot := g.WorldRotation()
	rotX := rl.MatrixRotateX(rot.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rot.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rot.Z * rl.Deg2rad)
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

// WorldMatrix combines scale -> rotate -> translate for this object in world space.
func (g *GameObject) WorldMatrix() rl.Matrix {
	scale := g.WorldScale()
	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)

	pos := g.WorldPosition()
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	return rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, g.WorldRotationMatrix()), transMatrix)
}
