// Package render draws a scene of MeshRenderers with raylib. Geometry and
// textures are uploaded to the GPU on first use and re-uploaded when they
// change; GPU buffers of released geometry are freed immediately.
package render

import (
	"doorview/internal/assets"
	"doorview/internal/components"
	"doorview/internal/engine"
	"doorview/internal/geometry"
	"doorview/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const shadowLift float32 = 0.002

type gpuMesh struct {
	mesh       rl.Mesh
	colors     []uint8
	uv         []float32
	texVersion int
	lightDir   rl.Vector3
}

type gpuTexture struct {
	texture rl.Texture2D
	version int
}

type Renderer struct {
	Light        *components.DirectionalLight
	ShadowPlaneY float32
	ShadowColor  rl.Color

	material     rl.Material
	whiteTexture rl.Texture2D
	meshes       map[*geometry.Geometry]*gpuMesh
	textures     map[*assets.Texture]*gpuTexture
	log          *logger.Logger
}

func NewRenderer(log *logger.Logger) *Renderer {
	return &Renderer{
		ShadowColor: rl.NewColor(0, 0, 0, 90),
		meshes:      make(map[*geometry.Geometry]*gpuMesh),
		textures:    make(map[*assets.Texture]*gpuTexture),
		log:         log,
	}
}

// Initialize must run after the window (and its GL context) exists.
// Geometry released by tracker has its GPU buffers freed.
func (r *Renderer) Initialize(tracker *geometry.Tracker) {
	r.material = rl.LoadMaterialDefault()
	r.whiteTexture = r.material.Maps.Texture
	tracker.Released.AddListener(r.releaseMesh)
}

func (r *Renderer) SetLight(light *components.DirectionalLight) {
	r.Light = light
}

// Draw renders every active MeshRenderer in the scene.
func (r *Renderer) Draw(scene *engine.Scene) {
	for _, root := range scene.GameObjects {
		root.Walk(func(g *engine.GameObject) {
			mr := engine.GetComponent[*components.MeshRenderer](g)
			if mr == nil || !drawable(g, mr) {
				return
			}
			r.drawMesh(g, mr)
		})
	}
}

// DrawShadows flattens every shadow caster onto the shadow plane along the
// light direction.
func (r *Renderer) DrawShadows(scene *engine.Scene) {
	if r.Light == nil {
		return
	}
	shadow := r.Light.ShadowMatrix(r.ShadowPlaneY + shadowLift)
	r.material.Maps.Texture = r.whiteTexture
	r.material.Maps.Color = r.ShadowColor

	rl.DisableBackfaceCulling()
	for _, root := range scene.GameObjects {
		root.Walk(func(g *engine.GameObject) {
			mr := engine.GetComponent[*components.MeshRenderer](g)
			if mr == nil || !mr.CastShadows || !drawable(g, mr) {
				return
			}
			gm := r.ensureMesh(g, mr)
			if gm == nil {
				return
			}
			rl.DrawMesh(gm.mesh, r.material, rl.MatrixMultiply(g.WorldMatrix(), shadow))
		})
	}
	rl.EnableBackfaceCulling()
}

func drawable(g *engine.GameObject, mr *components.MeshRenderer) bool {
	return g.Active && !g.Destroyed() && mr.Geometry != nil && !mr.Geometry.Disposed() && mr.Material != nil
}

func (r *Renderer) drawMesh(g *engine.GameObject, mr *components.MeshRenderer) {
	gm := r.ensureMesh(g, mr)
	if gm == nil {
		return
	}

	r.material.Maps.Texture = r.whiteTexture
	if tex := r.ensureTexture(mr.Material.Map); tex != nil {
		r.material.Maps.Texture = *tex
	}
	r.material.Maps.Color = mr.Material.Tint()

	if mr.Material.DoubleSided {
		rl.DisableBackfaceCulling()
		defer rl.EnableBackfaceCulling()
	}
	rl.DrawMesh(gm.mesh, r.material, g.WorldMatrix())
}

// Stats reports how many meshes and textures are resident on the GPU.
func (r *Renderer) Stats() (meshes, textures int) {
	return len(r.meshes), len(r.textures)
}

func (r *Renderer) Unload() {
	for g := range r.meshes {
		r.releaseMesh(g)
	}
	for tex, gt := range r.textures {
		rl.UnloadTexture(gt.texture)
		delete(r.textures, tex)
	}
}
