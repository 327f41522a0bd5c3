package render

import (
	"doorview/internal/assets"
	"doorview/internal/components"
	"doorview/internal/engine"
	"doorview/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ensureMesh returns the GPU mesh for mr's geometry, uploading it if needed.
// A mesh is re-uploaded when its material's texture sampling or the light
// direction changed, since both are baked into the uploaded vertex data.
func (r *Renderer) ensureMesh(g *engine.GameObject, mr *components.MeshRenderer) *gpuMesh {
	geo := mr.Geometry
	if geo.VertexCount() == 0 || len(geo.Indices) == 0 {
		return nil
	}
	version := 0
	if mr.Material.Map != nil {
		version = mr.Material.Map.Version
	}
	var lightDir rl.Vector3
	if r.Light != nil {
		lightDir = r.Light.Direction
	}
	if gm, ok := r.meshes[geo]; ok {
		if gm.texVersion == version && gm.lightDir == lightDir {
			return gm
		}
		r.releaseMesh(geo)
	}

	gm := &gpuMesh{texVersion: version, lightDir: lightDir}
	gm.colors = r.bakeLighting(geo, g.WorldRotationMatrix(), mr.Material)
	gm.uv = transformUV(geo.UV, mr.Material.Map)

	gm.mesh = rl.Mesh{
		VertexCount:   int32(geo.VertexCount()),
		TriangleCount: int32(geo.TriangleCount()),
	}
	gm.mesh.Vertices = &geo.Positions[0]
	gm.mesh.Normals = &geo.Normals[0]
	gm.mesh.Texcoords = &gm.uv[0]
	if len(geo.UV2) > 0 {
		gm.mesh.Texcoords2 = &geo.UV2[0]
	}
	gm.mesh.Colors = &gm.colors[0]
	gm.mesh.Indices = &geo.Indices[0]
	rl.UploadMesh(&gm.mesh, false)

	r.meshes[geo] = gm
	return gm
}

func (r *Renderer) releaseMesh(geo *geometry.Geometry) {
	gm, ok := r.meshes[geo]
	if !ok {
		return
	}
	rl.UnloadMesh(&gm.mesh)
	delete(r.meshes, geo)
}

// bakeLighting computes per-vertex light colors from the world-space normals.
func (r *Renderer) bakeLighting(geo *geometry.Geometry, rotation rl.Matrix, m *assets.Material) []uint8 {
	colors := make([]uint8, 0, geo.VertexCount()*4)
	for i := 0; i+2 < len(geo.Normals); i += 3 {
		c := rl.White
		if r.Light != nil {
			n := rl.Vector3Transform(rl.Vector3{X: geo.Normals[i], Y: geo.Normals[i+1], Z: geo.Normals[i+2]}, rotation)
			c = r.Light.Irradiance(n, m.Roughness, m.Metallic)
		}
		colors = append(colors, c.R, c.G, c.B, c.A)
	}
	return colors
}

// transformUV applies the texture's repeat and offset to uv.
func transformUV(uv []float32, tex *assets.Texture) []float32 {
	out := make([]float32, len(uv))
	if tex == nil {
		copy(out, uv)
		return out
	}
	for i := 0; i+1 < len(uv); i += 2 {
		out[i] = uv[i]*tex.Repeat.X + tex.Offset.X
		out[i+1] = uv[i+1]*tex.Repeat.Y + tex.Offset.Y
	}
	return out
}

// ensureTexture uploads tex's image the first time it is drawn and whenever
// it was flagged with NeedsUpdate. It returns nil while no image is loaded.
func (r *Renderer) ensureTexture(tex *assets.Texture) *rl.Texture2D {
	if tex == nil || tex.Image == nil {
		return nil
	}
	gt, ok := r.textures[tex]
	if ok && !tex.NeedsUpdate {
		return &gt.texture
	}
	if ok {
		rl.UnloadTexture(gt.texture)
	}

	img := rl.NewImageFromImage(tex.Image)
	gt = &gpuTexture{texture: rl.LoadTextureFromImage(img), version: tex.Version}
	rl.UnloadImage(img)
	rl.SetTextureFilter(gt.texture, rl.FilterBilinear)
	rl.SetTextureWrap(gt.texture, wrapMode(tex.Wrap))

	r.textures[tex] = gt
	tex.NeedsUpdate = false
	r.log.Debugf("texture %s uploaded (v%d)", tex.Path, tex.Version)
	return &gt.texture
}

func wrapMode(w assets.WrapMode) rl.TextureWrapMode {
	switch w {
	case assets.WrapClamp:
		return rl.WrapClamp
	case assets.WrapMirrorRepeat:
		return rl.WrapMirrorRepeat
	default:
		return rl.WrapRepeat
	}
}
