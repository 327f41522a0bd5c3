package assets

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapClamp
	WrapMirrorRepeat
)

// Texture holds the sampling state of a texture and, once decoded, its image.
// The renderer uploads Image to the GPU whenever NeedsUpdate is set.
type Texture struct {
	Path        string
	Wrap        WrapMode
	Offset      rl.Vector2
	Repeat      rl.Vector2
	Image       image.Image
	NeedsUpdate bool
	Version     int
}

func NewTexture(path string) *Texture {
	return &Texture{
		Path:   path,
		Wrap:   WrapRepeat,
		Repeat: rl.Vector2{X: 1, Y: 1},
	}
}

// SetImage assigns a decoded image and schedules an upload.
func (t *Texture) SetImage(img image.Image) {
	t.Image = img
	t.MarkNeedsUpdate()
}

// MarkNeedsUpdate schedules a re-upload of image and sampling state.
func (t *Texture) MarkNeedsUpdate() {
	t.NeedsUpdate = true
	t.Version++
}
