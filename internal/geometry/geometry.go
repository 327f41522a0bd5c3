// Package geometry builds CPU-side triangle meshes for the primitive shapes
// the door is made of. Meshes carry a second UV channel so they can be
// uploaded unchanged to materials that sample a lightmap or occlusion map.
package geometry

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape describes the parameters a Geometry was generated from.
type Shape interface {
	Kind() string
}

type Box struct {
	Width, Height, Depth float32
}

func (Box) Kind() string { return "box" }

type Torus struct {
	Radius          float32 // centre of the tube to centre of the torus
	Tube            float32 // radius of the tube
	RadialSegments  int
	TubularSegments int
}

func (Torus) Kind() string { return "torus" }

type Plane struct {
	Width, Length float32
}

func (Plane) Kind() string { return "plane" }

// Geometry is an indexed triangle mesh. Positions and Normals hold xyz
// triples, UV and UV2 hold st pairs.
type Geometry struct {
	Shape     Shape
	Positions []float32
	Normals   []float32
	UV        []float32
	UV2       []float32
	Indices   []uint16
	disposed  bool
}

func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// CopyUV2 fills the secondary UV channel with a copy of the primary one.
func (g *Geometry) CopyUV2() {
	g.UV2 = make([]float32, len(g.UV))
	copy(g.UV2, g.UV)
}

// Bounds returns the axis-aligned bounding box of the vertex positions.
func (g *Geometry) Bounds() (min, max rl.Vector3) {
	if len(g.Positions) < 3 {
		return rl.Vector3{}, rl.Vector3{}
	}
	min = rl.Vector3{X: g.Positions[0], Y: g.Positions[1], Z: g.Positions[2]}
	max = min
	for i := 3; i+2 < len(g.Positions); i += 3 {
		p := rl.Vector3{X: g.Positions[i], Y: g.Positions[i+1], Z: g.Positions[i+2]}
		min = rl.Vector3Min(min, p)
		max = rl.Vector3Max(max, p)
	}
	return min, max
}

// Size is the extent of Bounds along each axis.
func (g *Geometry) Size() rl.Vector3 {
	min, max := g.Bounds()
	return rl.Vector3Subtract(max, min)
}

// Disposed reports whether the geometry was released through a Tracker.
func (g *Geometry) Disposed() bool {
	return g.disposed
}

func (g *Geometry) addVertex(p, n rl.Vector3, s, t float32) uint16 {
	idx := uint16(g.VertexCount())
	g.Positions = append(g.Positions, p.X, p.Y, p.Z)
	g.Normals = append(g.Normals, n.X, n.Y, n.Z)
	g.UV = append(g.UV, s, t)
	return idx
}
