package city

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

// SeedEnv overrides the random seed when set to an unsigned integer.
const SeedEnv = "CITY_SEED"

// Settings holds the user-tunable parameters of a run.
type Settings struct {
	Buildings int    `yaml:"buildings"`
	Seed      uint64 `yaml:"seed"` // 0 means seed from the clock
	Window    struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	Camera struct {
		Speed     float32 `yaml:"speed"`
		DeltaTime bool    `yaml:"delta_time"`
	} `yaml:"camera"`
	Audio struct {
		Enabled bool    `yaml:"enabled"`
		Volume  float64 `yaml:"volume"`
	} `yaml:"audio"`
}

// DefaultSettings matches the classic demo: 100 buildings in an 800x600 window,
// one unit of camera movement per frame.
func DefaultSettings() Settings {
	var s Settings
	s.Buildings = DefaultBuildings
	s.Window.Width = WindowWidth
	s.Window.Height = WindowHeight
	s.Window.Title = WindowTitle
	s.Camera.Speed = DefaultCamSpeed
	s.Audio.Enabled = true
	s.Audio.Volume = DefaultAudioLevel
	return s
}

// LoadSettings reads YAML settings from path on top of the defaults.
// A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Validate reports the first out-of-range value.
func (s Settings) Validate() error {
	switch {
	case s.Buildings < 0:
		return fmt.Errorf("buildings must not be negative: %d", s.Buildings)
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	case s.Camera.Speed <= 0:
		return fmt.Errorf("camera speed must be positive: %v", s.Camera.Speed)
	case s.Audio.Volume < 0 || s.Audio.Volume > 1:
		return fmt.Errorf("audio volume out of range [0,1]: %v", s.Audio.Volume)
	}
	return nil
}

// ResolveSeed picks the run seed: an explicit seed wins, then SeedEnv,
// then the clock.
func (s Settings) ResolveSeed() uint64 {
	if s.Seed != 0 {
		return s.Seed
	}
	if v := os.Getenv(SeedEnv); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil && seed != 0 {
			return seed
		}
	}
	return uint64(time.Now().UnixNano())
}
