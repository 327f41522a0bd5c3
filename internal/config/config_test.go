package config

import (
	"os"
	"path/filepath"
	"testing"

	"doorview/internal/door"
	"doorview/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doorview.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Parameters() != door.DefaultParameters() {
		t.Errorf("Expected default parameters, got %+v", c.Parameters())
	}
	if c.Window.Width != 1280 || c.Window.TargetFPS != 60 {
		t.Errorf("Unexpected default window %+v", c.Window)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"door": {"width": 1.5, "height": 3},
		"style": {"panelColor": "#a0522d", "handleColor": "Gold"},
		"log": {"level": "debug"}
	}`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Parameters() != (door.Parameters{Width: 1.5, Height: 3}) {
		t.Errorf("Expected 1.5x3, got %+v", c.Parameters())
	}
	if c.Window.Height != 720 {
		t.Errorf("Omitted window settings should keep defaults, got %+v", c.Window)
	}
	if c.LogLevel() != logger.LevelDebug {
		t.Errorf("Expected debug level, got %v", c.LogLevel())
	}

	s, err := c.DoorStyle()
	if err != nil {
		t.Fatal(err)
	}
	if s.PanelColor != rl.NewColor(0xa0, 0x52, 0x2d, 0xff) {
		t.Errorf("Expected sienna panel, got %v", s.PanelColor)
	}
	if s.FrameColor != door.DefaultStyle().FrameColor {
		t.Errorf("Frame color should keep default, got %v", s.FrameColor)
	}
	if s.TexturePath != door.DefaultStyle().TexturePath {
		t.Errorf("Texture should keep default, got %s", s.TexturePath)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"syntax":      `{"door": `,
		"zero width":  `{"door": {"width": 0, "height": 2}}`,
		"bad color":   `{"style": {"frameColor": "mahogany"}}`,
		"bad level":   `{"log": {"level": "loud"}}`,
		"tiny window": `{"window": {"width": -1, "height": 10}}`,
	}
	for name, body := range cases {
		c, err := Load(writeConfig(t, body))
		if err == nil {
			t.Errorf("%s: expected error", name)
		}
		if c.Parameters() != door.DefaultParameters() {
			t.Errorf("%s: expected defaults on error, got %+v", name, c.Parameters())
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "doorview.json")
	c := Default()
	c.Door.Width = 2

	if err := Save(path, c); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Door.Width != 2 {
		t.Errorf("Expected saved width 2, got %v", loaded.Door.Width)
	}
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "config", "doorview.json"))
	if err != nil {
		t.Fatalf("Expected shipped config to load, got %v", err)
	}
	s, err := c.DoorStyle()
	if err != nil {
		t.Fatal(err)
	}
	if s != door.DefaultStyle() {
		t.Errorf("Shipped config should reproduce the default style, got %+v", s)
	}
	if c.Parameters() != door.DefaultParameters() {
		t.Errorf("Shipped config should use default parameters, got %+v", c.Parameters())
	}
}
