package assets

import rl "github.com/gen2brain/raylib-go/raylib"

// Material defines surface properties for rendering
type Material struct {
	Name        string
	Color       rl.Color
	Metallic    float32
	Roughness   float32
	DoubleSided bool
	Transparent bool
	Map         *Texture // base color map, nil for solid colors
}

func NewMaterial(name string, color rl.Color, roughness, metallic float32) *Material {
	return &Material{
		Name:      name,
		Color:     color,
		Metallic:  metallic,
		Roughness: roughness,
	}
}

// Tint is the color the renderer multiplies the base map with. A loaded map
// is modulated by the base color, so a textured panel keeps its wood tone.
func (m *Material) Tint() rl.Color {
	return m.Color
}
