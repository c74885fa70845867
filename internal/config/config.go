package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	WindowWidth  = 1200
	WindowHeight = 640
	WindowTitle  = "Recaman Sequence - drag the slider, S: save PNG, M: sound, Esc/Q: quit"

	// Pixels per sequence unit
	Scale = 10

	// Axis decoration
	TickSize    = 5
	LabelOffset = 15
	LabelEvery  = 5

	// Slider dimensions
	SliderX      = 20
	SliderHeight = 24
	SliderMargin = 40

	// Tone parameters
	SampleRate = 44100
	BaseFreq   = 110.0
	NoteMillis = 180
	Volume     = 0.25

	// Samples kept for the waveform strip
	TapRingSize = 4096

	EnvPrefix = "RECAMAN"
)

// Config holds application configuration.
type Config struct {
	Window   WindowConfig
	Sequence SequenceConfig
	Axis     AxisConfig
	Audio    AudioConfig
}

// WindowConfig holds the drawing surface settings.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// SequenceConfig holds the display scale and the initial limit.
type SequenceConfig struct {
	Scale int
	Limit int
}

// AxisConfig holds number line decoration.
type AxisConfig struct {
	TickSize    float64 `mapstructure:"tick_size"`
	LabelOffset float64 `mapstructure:"label_offset"`
	LabelEvery  int     `mapstructure:"label_every"`
}

// AudioConfig holds the step tone settings.
type AudioConfig struct {
	Enabled    bool
	SampleRate int     `mapstructure:"sample_rate"`
	BaseFreq   float64 `mapstructure:"base_freq"`
	NoteMillis int     `mapstructure:"note_ms"`
	Volume     float64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", WindowWidth)
	v.SetDefault("window.height", WindowHeight)
	v.SetDefault("window.title", WindowTitle)
	v.SetDefault("sequence.scale", Scale)
	v.SetDefault("sequence.limit", 0)
	v.SetDefault("axis.tick_size", TickSize)
	v.SetDefault("axis.label_offset", LabelOffset)
	v.SetDefault("axis.label_every", LabelEvery)
	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.sample_rate", SampleRate)
	v.SetDefault("audio.base_freq", BaseFreq)
	v.SetDefault("audio.note_ms", NoteMillis)
	v.SetDefault("audio.volume", Volume)
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// DefaultPath is ~/.config/recaman/config.toml.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "recaman", "config.toml")
}

// Load reads configuration from path (or RECAMAN_CONFIG, or DefaultPath when
// both are empty) and env. Env var overrides use prefix RECAMAN_. A missing
// default file is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	explicit := true
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
		explicit = false
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if _, err := os.Stat(path); err == nil || explicit {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the renderers cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Sequence.Scale <= 0:
		return fmt.Errorf("sequence.scale must be positive, got %d", c.Sequence.Scale)
	case c.Axis.LabelEvery <= 0:
		return fmt.Errorf("axis.label_every must be positive, got %d", c.Axis.LabelEvery)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}
