package geometry

import rl "github.com/gen2brain/raylib-go/raylib"

// boxFaces lists, per face, the outward normal and the face's u and v axes
// chosen so that u x v == normal (counter-clockwise front faces).
var boxFaces = [6]struct{ n, u, v rl.Vector3 }{
	{n: rl.Vector3{X: 1}, u: rl.Vector3{Z: -1}, v: rl.Vector3{Y: 1}},
	{n: rl.Vector3{X: -1}, u: rl.Vector3{Z: 1}, v: rl.Vector3{Y: 1}},
	{n: rl.Vector3{Y: 1}, u: rl.Vector3{X: 1}, v: rl.Vector3{Z: -1}},
	{n: rl.Vector3{Y: -1}, u: rl.Vector3{X: 1}, v: rl.Vector3{Z: 1}},
	{n: rl.Vector3{Z: 1}, u: rl.Vector3{X: 1}, v: rl.Vector3{Y: 1}},
	{n: rl.Vector3{Z: -1}, u: rl.Vector3{X: -1}, v: rl.Vector3{Y: 1}},
}

// NewBox returns a box centred on the origin with one quad per face. Each
// face maps the full texture, so an image spans the face without tiling.
func NewBox(width, height, depth float32) *Geometry {
	g := &Geometry{Shape: Box{Width: width, Height: height, Depth: depth}}
	half := rl.Vector3{X: width / 2, Y: height / 2, Z: depth / 2}

	for _, f := range boxFaces {
		center := rl.Vector3Multiply(f.n, half)
		u := rl.Vector3Multiply(f.u, half)
		v := rl.Vector3Multiply(f.v, half)

		// t runs top to bottom, matching image row order
		bl := g.addVertex(rl.Vector3Subtract(rl.Vector3Subtract(center, u), v), f.n, 0, 1)
		br := g.addVertex(rl.Vector3Subtract(rl.Vector3Add(center, u), v), f.n, 1, 1)
		tr := g.addVertex(rl.Vector3Add(rl.Vector3Add(center, u), v), f.n, 1, 0)
		tl := g.addVertex(rl.Vector3Add(rl.Vector3Subtract(center, u), v), f.n, 0, 0)

		g.Indices = append(g.Indices, bl, br, tr, bl, tr, tl)
	}
	return g
}

// NewPlane returns a horizontal quad centred on the origin facing +Y.
func NewPlane(width, length float32) *Geometry {
	g := &Geometry{Shape: Plane{Width: width, Length: length}}
	hw, hl := width/2, length/2
	up := rl.Vector3{Y: 1}

	bl := g.addVertex(rl.Vector3{X: -hw, Z: hl}, up, 0, 1)
	br := g.addVertex(rl.Vector3{X: hw, Z: hl}, up, 1, 1)
	tr := g.addVertex(rl.Vector3{X: hw, Z: -hl}, up, 1, 0)
	tl := g.addVertex(rl.Vector3{X: -hw, Z: -hl}, up, 0, 0)
	g.Indices = append(g.Indices, bl, br, tr, bl, tr, tl)
	return g
}
