// Package config loads doorview's settings from a JSON file. A missing file
// is not an error; defaults apply to every field the file leaves out.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"doorview/internal/assets"
	"doorview/internal/door"
	"doorview/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultPath is the config file location relative to the working directory.
const DefaultPath = "config/doorview.json"

type Config struct {
	Window  WindowConfig `json:"window"`
	Door    DoorConfig   `json:"door"`
	Texture string       `json:"texture,omitempty"`
	Style   StyleConfig  `json:"style"`
	Locale  LocaleConfig `json:"locale"`
	Log     LogConfig    `json:"log"`
}

type WindowConfig struct {
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	Title     string `json:"title"`
	TargetFPS int32  `json:"targetFPS"`
}

type DoorConfig struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// StyleConfig overrides door colors. Empty fields keep the default.
type StyleConfig struct {
	PanelColor  string `json:"panelColor,omitempty"`
	FrameColor  string `json:"frameColor,omitempty"`
	HandleColor string `json:"handleColor,omitempty"`
}

type LocaleConfig struct {
	Dir      string `json:"dir"`
	Language string `json:"language"`
}

type LogConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

func Default() Config {
	p := door.DefaultParameters()
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Door",
			TargetFPS: 60,
		},
		Door:    DoorConfig{Width: p.Width, Height: p.Height},
		Texture: door.DefaultStyle().TexturePath,
		Locale:  LocaleConfig{Dir: "locales", Language: "en_US"},
		Log:     LogConfig{File: "logs/doorview.log", Level: "info"},
	}
}

// Load reads path on top of Default. If the file is missing it returns
// Default and no error. A malformed file returns Default and the error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Door.Width <= 0 || c.Door.Height <= 0 {
		return fmt.Errorf("door size %vx%v must be positive", c.Door.Width, c.Door.Height)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	_, err := c.DoorStyle()
	return err
}

func (c Config) Parameters() door.Parameters {
	return door.Parameters{Width: c.Door.Width, Height: c.Door.Height}
}

// DoorStyle returns door.DefaultStyle with the configured overrides applied.
func (c Config) DoorStyle() (door.Style, error) {
	s := door.DefaultStyle()
	if c.Texture != "" {
		s.TexturePath = c.Texture
	}
	overrides := []struct {
		value string
		dst   *rl.Color
	}{
		{c.Style.PanelColor, &s.PanelColor},
		{c.Style.FrameColor, &s.FrameColor},
		{c.Style.HandleColor, &s.HandleColor},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		col, err := assets.ParseColor(o.value)
		if err != nil {
			return door.DefaultStyle(), err
		}
		*o.dst = col
	}
	return s, nil
}

func (c Config) LogLevel() logger.Level {
	lv, _ := logger.ParseLevel(c.Log.Level)
	return lv
}
