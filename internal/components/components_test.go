package components

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"doorview/internal/assets"
	"doorview/internal/engine"
	"doorview/internal/geometry"
	"doorview/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestMeshRendererSetGeometryReleasesOld(t *testing.T) {
	tr := geometry.NewTracker()
	first := tr.Box(1, 2, 0.1)
	m := NewMeshRenderer(tr, first, assets.NewMaterial("panel", rl.Brown, 0.7, 0.1))

	second := tr.Box(2, 3, 0.1)
	m.SetGeometry(second)

	if !first.Disposed() {
		t.Error("Replaced geometry should be disposed")
	}
	if m.Geometry != second || second.Disposed() {
		t.Error("New geometry should be installed and live")
	}

	m.SetGeometry(second)
	if second.Disposed() {
		t.Error("Re-installing the same geometry must not dispose it")
	}
}

func TestMeshRendererOnDestroy(t *testing.T) {
	tr := geometry.NewTracker()
	g := engine.NewGameObject("panel")
	g.AddComponent(NewMeshRenderer(tr, tr.Box(1, 1, 1), nil))

	g.Destroy()

	if tr.Live() != 0 {
		t.Errorf("Expected 0 live geometries after destroy, got %d", tr.Live())
	}
}

func blockingLoader(release <-chan struct{}) *assets.Loader {
	return assets.NewLoaderWithDecoder(func(path string) (image.Image, error) {
		<-release
		return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
	})
}

func waitDone(t *testing.T, req *assets.TextureRequest) {
	t.Helper()
	select {
	case <-req.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("texture request did not resolve")
	}
}

func TestTextureBinderAppliesImage(t *testing.T) {
	release := make(chan struct{})
	req := blockingLoader(release).LoadAsync(context.Background(), "door.jpg")
	tex := assets.NewTexture("door.jpg")
	binder := NewTextureBinder(tex, req, logger.Nop())
	g := engine.NewGameObject("panel")
	g.AddComponent(binder)

	g.Update(0.016)
	if tex.Image != nil || !binder.Pending() {
		t.Fatal("Texture should stay empty while the load is pending")
	}

	close(release)
	waitDone(t, req)
	g.Update(0.016)

	if tex.Image == nil || !tex.NeedsUpdate {
		t.Error("Resolved image should be assigned and flagged for upload")
	}
	if binder.Pending() {
		t.Error("Binder should not be pending after applying")
	}
}

func TestTextureBinderDropsResultAfterDestroy(t *testing.T) {
	release := make(chan struct{})
	req := blockingLoader(release).LoadAsync(context.Background(), "door.jpg")
	tex := assets.NewTexture("door.jpg")
	binder := NewTextureBinder(tex, req, logger.Nop())
	g := engine.NewGameObject("panel")
	g.AddComponent(binder)

	g.Destroy()
	close(release)
	waitDone(t, req)
	binder.Update(0.016)

	if tex.Image != nil {
		t.Error("Image must not be applied to a destroyed object")
	}
	if _, err := req.Result(); !errors.Is(err, assets.ErrCanceled) {
		t.Errorf("Destroy should cancel the request, got %v", err)
	}
}

func TestTextureBinderLogsFailure(t *testing.T) {
	l := assets.NewLoaderWithDecoder(func(path string) (image.Image, error) {
		return nil, errors.New("no such file")
	})
	req := l.LoadAsync(context.Background(), "missing.jpg")
	tex := assets.NewTexture("missing.jpg")
	log := logger.Nop()
	g := engine.NewGameObject("panel")
	g.AddComponent(NewTextureBinder(tex, req, log))

	waitDone(t, req)
	g.Update(0.016)

	if tex.Image != nil {
		t.Error("Failed load should leave the texture empty")
	}
	if len(log.Lines()) != 1 {
		t.Errorf("Expected one warning, got %v", log.Lines())
	}
}

func TestTextureBinderIgnoresMissingImage(t *testing.T) {
	l := assets.NewLoaderWithDecoder(func(path string) (image.Image, error) {
		return nil, nil
	})
	req := l.LoadAsync(context.Background(), "empty.png")
	tex := assets.NewTexture("empty.png")
	log := logger.Nop()
	g := engine.NewGameObject("panel")
	g.AddComponent(NewTextureBinder(tex, req, log))

	waitDone(t, req)
	g.Update(0.016)

	if tex.Image != nil || tex.NeedsUpdate {
		t.Error("A missing image should leave the texture untouched")
	}
	if len(log.Lines()) != 1 {
		t.Errorf("Expected one warning, got %v", log.Lines())
	}
}

func TestDirectionalLightIrradiance(t *testing.T) {
	l := NewDirectionalLight()
	l.Direction = rl.Vector3{Y: -1}

	lit := l.Irradiance(rl.Vector3{Y: 1}, 0.7, 0.1)
	unlit := l.Irradiance(rl.Vector3{Y: -1}, 0.7, 0.1)

	if lit.R != 255 {
		t.Errorf("Surface facing the light should be fully lit, got %v", lit)
	}
	if unlit.R == 0 || unlit.R >= lit.R {
		t.Errorf("Surface facing away should only get ambient light, got %v", unlit)
	}
}

func TestDirectionalLightShadowMatrix(t *testing.T) {
	l := NewDirectionalLight()
	l.Direction = rl.Vector3Normalize(rl.Vector3{X: 1, Y: -1})

	p := rl.Vector3Transform(rl.Vector3{X: 0, Y: 2, Z: 0}, l.ShadowMatrix(0))

	if rl.Vector3Distance(p, rl.Vector3{X: 2, Y: 0, Z: 0}) > 1e-4 {
		t.Errorf("Expected shadow at (2, 0, 0), got %v", p)
	}
}
