package door

import rl "github.com/gen2brain/raylib-go/raylib"

// Parameters are the user-tunable dimensions of the door. Both are expected
// to be positive; non-positive values produce degenerate geometry.
type Parameters struct {
	Width  float32
	Height float32
}

func DefaultParameters() Parameters {
	return Parameters{Width: 1, Height: 2}
}

// Style holds every constant shared by Build and Update.
type Style struct {
	Depth             float32 // panel thickness
	FrameThickness    float32
	HandleRadius      float32
	HandleTube        float32
	HandleInset       float32 // handle distance from the panel's right edge
	HandleDepthOffset float32 // handle distance in front of the panel's centre plane

	PanelColor     rl.Color
	PanelRoughness float32
	PanelMetalness float32

	FrameColor     rl.Color
	FrameRoughness float32
	FrameMetalness float32

	HandleColor     rl.Color
	HandleRoughness float32
	HandleMetalness float32

	TexturePath string
}

func DefaultStyle() Style {
	return Style{
		Depth:             0.1,
		FrameThickness:    0.1,
		HandleRadius:      0.05,
		HandleTube:        0.015,
		HandleInset:       0.15,
		HandleDepthOffset: 0.07,

		PanelColor:     rl.NewColor(0x8b, 0x5a, 0x2b, 0xff),
		PanelRoughness: 0.7,
		PanelMetalness: 0.1,

		FrameColor:     rl.NewColor(0x3d, 0x2f, 0x1c, 0xff),
		FrameRoughness: 1.0,
		FrameMetalness: 0.0,

		HandleColor:     rl.NewColor(0xd4, 0xaf, 0x37, 0xff),
		HandleRoughness: 0.2,
		HandleMetalness: 1.0,

		TexturePath: "assets/textures/door.png",
	}
}
