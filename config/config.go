// Package config loads blockfall settings from an optional YAML file and
// BLOCKFALL_* environment variables on top of built-in defaults.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/plus3/blockfall/tetris"
	"github.com/spf13/viper"
)

type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Display DisplayConfig `mapstructure:"display"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Log     LogConfig     `mapstructure:"log"`
}

type GameConfig struct {
	Width        int `mapstructure:"width"`
	Height       int `mapstructure:"height"`
	FallInterval int `mapstructure:"fall_interval"`
	// Seed of the piece randomizer. Zero picks a time based seed.
	Seed uint64 `mapstructure:"seed"`
}

type DisplayConfig struct {
	CellSize int  `mapstructure:"cell_size"`
	TickRate int  `mapstructure:"tick_rate"`
	Debug    bool `mapstructure:"debug"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const envPrefix = "BLOCKFALL"

func setDefaults(v *viper.Viper) {
	def := tetris.DefaultConfig()
	v.SetDefault("game.width", def.Width)
	v.SetDefault("game.height", def.Height)
	v.SetDefault("game.fall_interval", def.FallInterval)
	v.SetDefault("game.seed", 0)

	v.SetDefault("display.cell_size", 30)
	v.SetDefault("display.tick_rate", 60)
	v.SetDefault("display.debug", false)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.3)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration from path. An empty path skips the file and
// returns defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the game section against the engine's rules and the
// display section for usable values.
func (c *Config) Validate() error {
	if err := c.Game.EngineConfig().Validate(); err != nil {
		return err
	}
	if c.Display.CellSize < 1 {
		return fmt.Errorf("config: display.cell_size %d must be positive", c.Display.CellSize)
	}
	if c.Display.TickRate < 1 {
		return fmt.Errorf("config: display.tick_rate %d must be positive", c.Display.TickRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume %.2f must be within [0, 1]", c.Audio.Volume)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// EngineConfig converts the game section to engine construction parameters.
func (g GameConfig) EngineConfig() tetris.Config {
	return tetris.Config{
		Width:        g.Width,
		Height:       g.Height,
		FallInterval: g.FallInterval,
	}
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("config: log.level %q: %w", l.Level, err)
	}
	return level, nil
}
