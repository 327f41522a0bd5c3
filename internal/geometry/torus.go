package geometry

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultRadialSegments  = 12
	DefaultTubularSegments = 48
)

// NewTorus returns a torus lying in the XY plane around the Z axis.
// radius is the distance from the centre to the middle of the tube and
// tube is the tube's own radius.
func NewTorus(radius, tube float32, radialSegments, tubularSegments int) *Geometry {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if tubularSegments < 3 {
		tubularSegments = 3
	}
	g := &Geometry{Shape: Torus{
		Radius:          radius,
		Tube:            tube,
		RadialSegments:  radialSegments,
		TubularSegments: tubularSegments,
	}}

	for j := 0; j <= radialSegments; j++ {
		v := float32(j) / float32(radialSegments) * 2 * math32.Pi
		for i := 0; i <= tubularSegments; i++ {
			u := float32(i) / float32(tubularSegments) * 2 * math32.Pi

			ring := radius + tube*math32.Cos(v)
			p := rl.Vector3{
				X: ring * math32.Cos(u),
				Y: ring * math32.Sin(u),
				Z: tube * math32.Sin(v),
			}
			center := rl.Vector3{X: radius * math32.Cos(u), Y: radius * math32.Sin(u)}
			n := rl.Vector3Normalize(rl.Vector3Subtract(p, center))

			g.addVertex(p, n, float32(i)/float32(tubularSegments), float32(j)/float32(radialSegments))
		}
	}

	stride := tubularSegments + 1
	for j := 1; j <= radialSegments; j++ {
		for i := 1; i <= tubularSegments; i++ {
			a := uint16(stride*j + i - 1)
			b := uint16(stride*(j-1) + i - 1)
			c := uint16(stride*(j-1) + i)
			d := uint16(stride*j + i)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}
