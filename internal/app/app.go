// Package app hosts the door viewer: it owns the window, the scene and the
// parameters, and wires the debug panel to the door updater.
package app

import (
	"context"
	"fmt"
	"time"

	"doorview/internal/assets"
	"doorview/internal/camera"
	"doorview/internal/components"
	"doorview/internal/config"
	"doorview/internal/door"
	"doorview/internal/engine"
	"doorview/internal/geometry"
	"doorview/internal/logger"
	"doorview/internal/render"
	"doorview/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	floorSize  float32 = 12
	nudgeStep  float32 = 0.1
	lightSpeed float32 = 1.0
)

type App struct {
	Config     config.Config
	Params     door.Parameters
	Scene      *engine.Scene
	Door       *engine.GameObject
	Light      *components.DirectionalLight
	Panel      *ui.Panel
	Camera     *camera.OrbitCamera
	Geometries *geometry.Tracker
	Textures   *assets.Loader
	Renderer   *render.Renderer
	Log        *logger.Logger

	builder *door.Builder
	ctx     context.Context
	cancel  context.CancelFunc

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the scene and wires the panel to the door. It needs no window,
// so everything except Run can be exercised headless.
func New(cfg config.Config, log *logger.Logger) (*App, error) {
	style, err := cfg.DoorStyle()
	if err != nil {
		return nil, fmt.Errorf("door style: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		Config:     cfg,
		Params:     cfg.Parameters(),
		Scene:      engine.NewScene("Door"),
		Geometries: geometry.NewTracker(),
		Textures:   assets.NewLoader(),
		Renderer:   render.NewRenderer(log),
		Log:        log,
		ctx:        ctx,
		cancel:     cancel,
	}
	a.builder = door.NewBuilder(ctx, style, a.Geometries, a.Textures, log)

	a.createLight()
	a.createFloor()

	a.Door = a.builder.Build(a.Params)
	a.Scene.AddGameObject(a.Door)

	a.Panel = ui.Attach(&a.Params, a.onParametersChanged)
	a.Camera = camera.New(rl.Vector3{Y: a.Params.Height / 2})

	a.Scene.Start()
	log.Infof("door built %.2fx%.2f, %d live geometries", a.Params.Width, a.Params.Height, a.Geometries.Live())
	return a, nil
}

func (a *App) createLight() {
	obj := engine.NewGameObject("Light")
	a.Light = components.NewDirectionalLight()
	obj.AddComponent(a.Light)
	a.Scene.AddGameObject(obj)
	a.Renderer.SetLight(a.Light)
}

func (a *App) createFloor() {
	obj := engine.NewGameObject("Floor")
	mat := assets.NewMaterial("floor", rl.LightGray, 0.9, 0)
	mr := components.NewMeshRenderer(a.Geometries, a.Geometries.Plane(floorSize, floorSize), mat)
	mr.CastShadows = false
	mr.ReceiveShadows = true
	obj.AddComponent(mr)
	a.Scene.AddGameObject(obj)
}

func (a *App) onParametersChanged() {
	if err := a.builder.Update(a.Door, a.Params); err != nil {
		a.Log.Errorf("update door: %v", err)
		return
	}
	a.Camera.Target.Y = a.Params.Height / 2
	a.Log.Debugf("door resized to %.2fx%.2f", a.Params.Width, a.Params.Height)
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(a.Config.Window.Width, a.Config.Window.Height, a.Config.Window.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("window %dx%d could not be created", a.Config.Window.Width, a.Config.Window.Height)
	}
	rl.SetTargetFPS(a.Config.Window.TargetFPS)

	// Initialize renderer after OpenGL context is created
	a.Renderer.Initialize(a.Geometries)
	defer a.Close()

	for !rl.WindowShouldClose() {
		a.Update(rl.GetFrameTime())
		a.Draw()
	}
	return nil
}

// Update advances one frame: input, then scene components.
func (a *App) Update(deltaTime float32) {
	updateStart := time.Now()

	captured := a.Panel.Visible && a.Panel.Contains(rl.GetMousePosition())
	a.Camera.Update(captured)
	a.handleKeys(deltaTime)
	a.Scene.Update(deltaTime)

	a.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (a *App) handleKeys(deltaTime float32) {
	if rl.IsKeyPressed(rl.KeyF1) {
		a.Panel.Visible = !a.Panel.Visible
	}

	nudges := []struct {
		key   int32
		name  string
		delta float32
	}{
		{rl.KeyRight, "width", nudgeStep},
		{rl.KeyLeft, "width", -nudgeStep},
		{rl.KeyUp, "height", nudgeStep},
		{rl.KeyDown, "height", -nudgeStep},
	}
	for _, n := range nudges {
		if rl.IsKeyPressed(n.key) {
			if _, err := a.Panel.Nudge(n.name, n.delta); err != nil {
				a.Log.Warnf("nudge %s: %v", n.name, err)
			}
		}
	}

	step := lightSpeed * deltaTime
	if rl.IsKeyDown(rl.KeyJ) {
		a.Light.MoveLightDir(-step, 0, 0)
	}
	if rl.IsKeyDown(rl.KeyL) {
		a.Light.MoveLightDir(step, 0, 0)
	}
	if rl.IsKeyDown(rl.KeyI) {
		a.Light.MoveLightDir(0, 0, -step)
	}
	if rl.IsKeyDown(rl.KeyK) {
		a.Light.MoveLightDir(0, 0, step)
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(a.Camera.GetRaylibCamera())
	a.Renderer.Draw(a.Scene)
	a.Renderer.DrawShadows(a.Scene)
	rl.EndMode3D()
	a.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	a.Panel.Draw()
	a.drawStatus()
	rl.EndDrawing()
}

func (a *App) drawStatus() {
	meshes, textures := a.Renderer.Stats()
	ui.DrawStatus(
		"Drag to orbit, wheel to zoom, arrows resize, IJKL move light, F1 panel",
		fmt.Sprintf("FPS %d  update %.2f ms  draw %.2f ms", rl.GetFPS(), a.updateMs, a.drawMs),
		fmt.Sprintf("geometries %d  meshes %d  textures %d", a.Geometries.Live(), meshes, textures),
	)
}

// Close destroys the door, cancelling its texture load, and frees GPU
// resources. It is safe to call more than once.
func (a *App) Close() {
	a.cancel()
	for _, obj := range append([]*engine.GameObject(nil), a.Scene.GameObjects...) {
		obj.Destroy()
		a.Scene.RemoveGameObject(obj)
	}
	a.Geometries.ReleaseAll()
	a.Renderer.Unload()
	a.Textures.Unload()
}
