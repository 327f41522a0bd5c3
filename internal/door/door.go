// Package door builds the door model as a group of primitive meshes and
// keeps it in sync with its Parameters.
package door

import (
	"context"
	"errors"
	"fmt"

	"doorview/internal/assets"
	"doorview/internal/components"
	"doorview/internal/engine"
	"doorview/internal/geometry"
	"doorview/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tags identify the parts of a door group. Lookups never depend on order.
const (
	TagDoor       = "door"
	TagPanel      = "door.panel"
	TagFrameLeft  = "door.frame.left"
	TagFrameRight = "door.frame.right"
	TagFrameTop   = "door.frame.top"
	TagHandle     = "door.handle"
)

// ErrMissingPart is returned by Update for a group that was not produced by Build.
var ErrMissingPart = errors.New("door part missing")

var partTags = [...]string{TagPanel, TagFrameLeft, TagFrameRight, TagFrameTop, TagHandle}

type Builder struct {
	Style      Style
	Geometries *geometry.Tracker
	Textures   *assets.Loader
	Log        *logger.Logger

	// ctx bounds the texture loads issued by Build.
	ctx context.Context
}

func NewBuilder(ctx context.Context, style Style, geometries *geometry.Tracker, textures *assets.Loader, log *logger.Logger) *Builder {
	return &Builder{
		Style:      style,
		Geometries: geometries,
		Textures:   textures,
		Log:        log,
		ctx:        ctx,
	}
}

// Build returns a new door group: a textured panel, three frame members
// sharing one material, and a handle. The panel texture loads in the
// background and appears once decoded.
func (b *Builder) Build(p Parameters) *engine.GameObject {
	s := b.Style
	door := engine.NewGameObject("Door")
	door.Tags = []string{TagDoor}

	tex := assets.NewTexture(s.TexturePath)
	panelMat := assets.NewMaterial("panel", s.PanelColor, s.PanelRoughness, s.PanelMetalness)
	panelMat.DoubleSided = true
	panelMat.Map = tex
	applySampling(tex)

	panel := b.part(door, "panel", TagPanel, b.panelGeometry(p), panelMat)
	engine.GetComponent[*components.MeshRenderer](panel).CastShadows = true
	if b.Textures != nil {
		req := b.Textures.LoadAsync(b.ctx, s.TexturePath)
		panel.AddComponent(components.NewTextureBinder(tex, req, b.Log))
	}

	frameMat := assets.NewMaterial("frame", s.FrameColor, s.FrameRoughness, s.FrameMetalness)
	left, right, top := b.frameGeometry(p)
	b.part(door, "frame.left", TagFrameLeft, left, frameMat)
	b.part(door, "frame.right", TagFrameRight, right, frameMat)
	b.part(door, "frame.top", TagFrameTop, top, frameMat)

	handleMat := assets.NewMaterial("handle", s.HandleColor, s.HandleRoughness, s.HandleMetalness)
	handle := b.part(door, "handle", TagHandle, b.Geometries.Torus(s.HandleRadius, s.HandleTube), handleMat)
	handle.Transform.Rotation = rl.Vector3{X: 90}

	b.layout(door, p)
	b.Log.Debugf("door built %.2fx%.2f", p.Width, p.Height)
	return door
}

// Update resizes door in place to match p. Panel and frame geometry is
// replaced and the old geometry released; every part is repositioned; the
// panel and frame materials are reset to the style values. The handle keeps
// its geometry. Part count, names and material identities do not change.
//
// Update returns ErrMissingPart without touching door when any part is absent.
func (b *Builder) Update(door *engine.GameObject, p Parameters) error {
	parts, err := lookup(door)
	if err != nil {
		return err
	}
	s := b.Style

	panel := engine.GetComponent[*components.MeshRenderer](parts[TagPanel])
	panel.SetGeometry(b.panelGeometry(p))

	left, right, top := b.frameGeometry(p)
	frame := engine.GetComponent[*components.MeshRenderer](parts[TagFrameLeft])
	frame.SetGeometry(left)
	engine.GetComponent[*components.MeshRenderer](parts[TagFrameRight]).SetGeometry(right)
	engine.GetComponent[*components.MeshRenderer](parts[TagFrameTop]).SetGeometry(top)

	b.layout(door, p)

	if tex := panel.Material.Map; tex != nil {
		applySampling(tex)
		tex.MarkNeedsUpdate()
	}

	panel.Material.Color = s.PanelColor
	panel.Material.Roughness = s.PanelRoughness
	panel.Material.Metallic = s.PanelMetalness
	frame.Material.Color = s.FrameColor
	frame.Material.Roughness = s.FrameRoughness
	frame.Material.Metallic = s.FrameMetalness
	return nil
}

// layout positions every part from p.
func (b *Builder) layout(door *engine.GameObject, p Parameters) {
	s := b.Style
	t := s.FrameThickness
	side := p.Width/2 + t/2

	door.FindChildByTag(TagPanel).Transform.Position = rl.Vector3{X: 0, Y: p.Height / 2, Z: 0}
	door.FindChildByTag(TagFrameLeft).Transform.Position = rl.Vector3{X: -side, Y: p.Height / 2, Z: 0}
	door.FindChildByTag(TagFrameRight).Transform.Position = rl.Vector3{X: side, Y: p.Height / 2, Z: 0}
	door.FindChildByTag(TagFrameTop).Transform.Position = rl.Vector3{X: 0, Y: p.Height + t/2, Z: 0}
	door.FindChildByTag(TagHandle).Transform.Position = rl.Vector3{
		X: p.Width/2 - s.HandleInset,
		Y: p.Height / 2,
		Z: s.HandleDepthOffset,
	}
}

func (b *Builder) panelGeometry(p Parameters) *geometry.Geometry {
	g := b.Geometries.Box(p.Width, p.Height, b.Style.Depth)
	g.CopyUV2()
	return g
}

func (b *Builder) frameGeometry(p Parameters) (left, right, top *geometry.Geometry) {
	t := b.Style.FrameThickness
	left = b.Geometries.Box(t, p.Height, t)
	right = b.Geometries.Box(t, p.Height, t)
	top = b.Geometries.Box(p.Width+2*t, t, t)
	return left, right, top
}

func (b *Builder) part(door *engine.GameObject, name, tag string, g *geometry.Geometry, m *assets.Material) *engine.GameObject {
	part := engine.NewGameObject(name)
	part.Tags = []string{tag}
	part.AddComponent(components.NewMeshRenderer(b.Geometries, g, m))
	door.AddChild(part)
	return part
}

// applySampling clamps the texture at its edges so the image spans the
// panel exactly once.
func applySampling(tex *assets.Texture) {
	tex.Wrap = assets.WrapClamp
	tex.Offset = rl.Vector2{}
	tex.Repeat = rl.Vector2{X: 1, Y: 1}
}

func lookup(door *engine.GameObject) (map[string]*engine.GameObject, error) {
	if door == nil {
		return nil, fmt.Errorf("%w: nil door", ErrMissingPart)
	}
	parts := make(map[string]*engine.GameObject, len(partTags))
	for _, tag := range partTags {
		part := door.FindChildByTag(tag)
		if part == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingPart, tag)
		}
		if r := engine.GetComponent[*components.MeshRenderer](part); r == nil || r.Material == nil {
			return nil, fmt.Errorf("%w: %s has no mesh", ErrMissingPart, tag)
		}
		parts[tag] = part
	}
	return parts, nil
}
