package app

import (
	"strings"
	"testing"

	"doorview/internal/components"
	"doorview/internal/config"
	"doorview/internal/door"
	"doorview/internal/engine"
	"doorview/internal/logger"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Texture = "../../assets/textures/door.png"
	a, err := New(cfg, logger.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func TestNewBuildsScene(t *testing.T) {
	a := newTestApp(t)

	if a.Scene.FindByName("Door") != a.Door {
		t.Error("Door should be registered in the scene")
	}
	if a.Scene.FindByName("Floor") == nil {
		t.Error("Floor should be registered in the scene")
	}
	if a.Scene.FindByName("Light") == nil {
		t.Error("Light should be registered in the scene")
	}
	if a.Geometries.Live() != 6 {
		t.Errorf("Expected 6 live geometries (door + floor), got %d", a.Geometries.Live())
	}
	if a.Params != door.DefaultParameters() {
		t.Errorf("Expected default parameters, got %+v", a.Params)
	}
}

func TestPanelResizesDoor(t *testing.T) {
	a := newTestApp(t)

	if _, err := a.Panel.Set("width", 1.5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := a.Panel.Set("height", 3); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	panel := a.Door.FindChildByTag(door.TagPanel)
	size := engine.GetComponent[*components.MeshRenderer](panel).Geometry.Size()
	if size.X != 1.5 || size.Y != 3 {
		t.Errorf("Expected panel 1.5x3, got %vx%v", size.X, size.Y)
	}
	if panel.Transform.Position.Y != 1.5 {
		t.Errorf("Expected panel at y=1.5, got %v", panel.Transform.Position.Y)
	}
	if a.Camera.Target.Y != 1.5 {
		t.Errorf("Expected camera to target door center 1.5, got %v", a.Camera.Target.Y)
	}
	if a.Geometries.Live() != 6 {
		t.Errorf("Expected 6 live geometries after resize, got %d", a.Geometries.Live())
	}
}

func TestCloseReleasesEverything(t *testing.T) {
	a := newTestApp(t)
	d := a.Door

	a.Close()

	if !d.Destroyed() {
		t.Error("Door should be destroyed")
	}
	if a.Geometries.Live() != 0 {
		t.Errorf("Expected no live geometries, got %d", a.Geometries.Live())
	}
	if len(a.Scene.GameObjects) != 0 {
		t.Errorf("Expected empty scene, got %d objects", len(a.Scene.GameObjects))
	}
}

func TestUpdateErrorIsLogged(t *testing.T) {
	a := newTestApp(t)
	log := logger.Nop()
	a.Log = log
	a.Door = engine.NewGameObject("NotADoor")

	a.onParametersChanged()

	lines := log.Lines()
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], door.ErrMissingPart.Error()) {
		t.Errorf("Expected missing part error to be logged, got %q", lines[0])
	}
}

func TestBadStyleIsRejected(t *testing.T) {
	cfg := config.Default()
	cfg.Style.PanelColor = "#zzzzzz"
	if _, err := New(cfg, logger.Nop()); err == nil {
		t.Error("Expected error for invalid panel color")
	}
}
