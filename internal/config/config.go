package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"boomgrid/internal/bomb"

	"gopkg.in/yaml.v3"
)

// Config holds all playground configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	World   WorldConfig   `yaml:"world"`
	Bomb    BombConfig    `yaml:"bomb"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Arena   ArenaConfig   `yaml:"arena"`
	Sound   SoundConfig   `yaml:"sound"`
	Logging LoggingConfig `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"` // Fixed simulation ticks per second
}

type WorldConfig struct {
	TileSize int `yaml:"tile_size"` // Pixels per tile in the windowed frontend
}

// BombConfig carries bomb timings in seconds and distances in tiles
type BombConfig struct {
	FuseDelay          float64 `yaml:"fuse_delay"`
	BoomDuration       float64 `yaml:"boom_duration"`
	NeighborDelay      float64 `yaml:"neighbor_delay"`
	BlastRadius        float64 `yaml:"blast_radius"`
	ProbeDistance      float64 `yaml:"probe_distance"`
	DefaultPropagation uint    `yaml:"default_propagation"`
	Size               float64 `yaml:"size"` // Collision box edge
}

type PlayerConfig struct {
	Reach        float64 `yaml:"reach"`        // Activation radius
	Propagations uint    `yaml:"propagations"` // Budget handed to planted bombs
	Size         float64 `yaml:"size"`
}

type EnemyConfig struct {
	Speed float64 `yaml:"speed"` // Tiles per second
	Size  float64 `yaml:"size"`
}

type ArenaConfig struct {
	Layout []string `yaml:"layout"`
}

type SoundConfig struct {
	Muted      bool    `yaml:"muted"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// DefaultLayout is the arena used when the config file has none
var DefaultLayout = []string{
	"###########",
	"#P.BBB....#",
	"#.#B#.#.#.#",
	"#..B..BB.E#",
	"#.#X#.#B#.#",
	"#...BBX...#",
	"#E#.#B#.#E#",
	"###########",
}

// Default returns a configuration with every field populated
func Default() *Config {
	stock := bomb.DefaultSettings()
	cfg := &Config{}
	// zero is a meaningful value for these, so they are only set here
	cfg.Bomb.NeighborDelay = stock.NeighborDelay
	cfg.Bomb.DefaultPropagation = stock.DefaultPropagation
	cfg.Player.Propagations = 3
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero-valued fields that have no meaningful zero with
// stock values
func (c *Config) ApplyDefaults() {
	stock := bomb.DefaultSettings()

	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = 704
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = 576
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "boomgrid"
	}
	if c.Display.TPS == 0 {
		c.Display.TPS = 60
	}
	if c.World.TileSize == 0 {
		c.World.TileSize = 64
	}

	if c.Bomb.FuseDelay == 0 {
		c.Bomb.FuseDelay = stock.FuseDelay
	}
	if c.Bomb.BoomDuration == 0 {
		c.Bomb.BoomDuration = stock.BoomDuration
	}
	if c.Bomb.BlastRadius == 0 {
		c.Bomb.BlastRadius = stock.BlastRadius
	}
	if c.Bomb.ProbeDistance == 0 {
		c.Bomb.ProbeDistance = stock.ProbeDistance
	}
	if c.Bomb.Size == 0 {
		c.Bomb.Size = 0.6
	}

	if c.Player.Reach == 0 {
		c.Player.Reach = 0.8
	}
	if c.Player.Size == 0 {
		c.Player.Size = 0.6
	}
	if c.Enemy.Speed == 0 {
		c.Enemy.Speed = 1.5
	}
	if c.Enemy.Size == 0 {
		c.Enemy.Size = 0.6
	}

	if len(c.Arena.Layout) == 0 {
		c.Arena.Layout = append([]string(nil), DefaultLayout...)
	}

	if c.Sound.SampleRate == 0 {
		c.Sound.SampleRate = 44100
	}
	if c.Sound.Volume == 0 {
		c.Sound.Volume = 0.5
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate checks values that cannot be defaulted away
func (c *Config) Validate() error {
	if err := c.BombSettings().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Display.TPS < 0 {
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalidConfig, c.Display.TPS)
	}
	if c.World.TileSize < 0 {
		return fmt.Errorf("%w: tile size %d must be positive", ErrInvalidConfig, c.World.TileSize)
	}
	if c.Player.Reach < 0 || c.Enemy.Speed < 0 {
		return fmt.Errorf("%w: reach and enemy speed must not be negative", ErrInvalidConfig)
	}
	for _, size := range []float64{c.Bomb.Size, c.Player.Size, c.Enemy.Size} {
		if size <= 0 || size > 1 {
			return fmt.Errorf("%w: entity size %v must be in (0, 1]", ErrInvalidConfig, size)
		}
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("%w: volume %v must be in [0, 1]", ErrInvalidConfig, c.Sound.Volume)
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig loads the configuration from a yaml file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes yaml bytes over the defaults and validates the result.
// Omitted keys keep their default, explicit values are kept as written.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTileSize() float64 {
	return float64(c.World.TileSize)
}

// GetTickDelta returns the simulated seconds per fixed update
func (c *Config) GetTickDelta() float64 {
	if c.Display.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.Display.TPS)
}

// BombSettings converts the bomb section into engine settings
func (c *Config) BombSettings() bomb.Settings {
	return bomb.Settings{
		FuseDelay:          c.Bomb.FuseDelay,
		BoomDuration:       c.Bomb.BoomDuration,
		NeighborDelay:      c.Bomb.NeighborDelay,
		BlastRadius:        c.Bomb.BlastRadius,
		ProbeDistance:      c.Bomb.ProbeDistance,
		DefaultPropagation: c.Bomb.DefaultPropagation,
	}
}

// LogLevel returns the configured slog level, info if unparsable
func (c *Config) LogLevel() slog.Level {
	level, err := parseLevel(c.Logging.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
