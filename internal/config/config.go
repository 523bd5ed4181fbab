package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultPath is where the viewer looks for its config, relative to the working directory.
const DefaultPath = "config/keyboard.json"

type Config struct {
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	Title        string `json:"title"`
	TargetFPS    int32  `json:"target_fps"`

	// AssetRoot is prepended to request paths such as /landing/keyboard.glb.
	AssetRoot string `json:"asset_root"`
	ShaderDir string `json:"shader_dir"`

	Background     string  `json:"background"`
	CameraDistance float32 `json:"camera_distance"`
	Fovy           float32 `json:"fovy"`

	Damping          bool    `json:"damping"`
	DampingFrequency float64 `json:"damping_frequency"`

	DebugOverlay bool `json:"debug_overlay"`
}

func Default() Config {
	return Config{
		WindowWidth:      1280,
		WindowHeight:     720,
		Title:            "Keyboard",
		TargetFPS:        60,
		AssetRoot:        "public",
		ShaderDir:        "assets/shaders",
		Background:       "#00000000",
		CameraDistance:   5,
		Fovy:             75,
		Damping:          true,
		DampingFrequency: 6,
		DebugOverlay:     false,
	}
}

// Load reads path over Default(). A missing file is not an error; a file that
// does not parse returns Default() and the parse error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes cfg to path, creating its directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.CameraDistance <= 0 {
		return fmt.Errorf("invalid camera distance %v", c.CameraDistance)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	return nil
}

// DampingFPS is the spring step rate, or 0 when damping is off.
func (c Config) DampingFPS() int {
	if !c.Damping || c.TargetFPS <= 0 {
		return 0
	}
	return int(c.TargetFPS)
}

// ParseColor accepts #rrggbb or #rrggbbaa.
func ParseColor(s string) (rl.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return rl.Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
