// Package config loads server and game configuration from a yaml file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Server  ServerConfig  `mapstructure:"server"`
	Assets  AssetsConfig  `mapstructure:"assets"`
	Game    GameConfig    `mapstructure:"game"`
}

// LoggingConfig controls log verbosity and encoding.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig holds the observer feed listen address.
type ServerConfig struct {
	WebSocketAddress string `mapstructure:"websocket_address"`
}

// AssetsConfig names the tile and card metadata files.
type AssetsConfig struct {
	IndoorTiles  string `mapstructure:"indoor_tiles"`
	OutdoorTiles string `mapstructure:"outdoor_tiles"`
	DevCards     string `mapstructure:"dev_cards"`
}

// GameConfig holds the rule numbers and the clock.
type GameConfig struct {
	StartHealth     int      `mapstructure:"start_health"`
	StartAttack     int      `mapstructure:"start_attack"`
	ItemCapacity    int      `mapstructure:"item_capacity"`
	BashZombies     int      `mapstructure:"bash_zombies"`
	MaxCombatDamage int      `mapstructure:"max_combat_damage"`
	CowerHeal       int      `mapstructure:"cower_heal"`
	RunHealthCost   int      `mapstructure:"run_health_cost"`
	ClockLabels     []string `mapstructure:"clock_labels"`
	BoardSize       int      `mapstructure:"board_size"`
}

// Load reads the configuration file at path, applying defaults for every
// key and ZIMP_-prefixed environment overrides. A missing file is not an
// error; defaults describe a playable game.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("server.websocket_address", ":8080")
	v.SetDefault("assets.indoor_tiles", "assets/indoor_tiles.json")
	v.SetDefault("assets.outdoor_tiles", "assets/outdoor_tiles.json")
	v.SetDefault("assets.dev_cards", "assets/dev_cards.json")
	v.SetDefault("game.start_health", 6)
	v.SetDefault("game.start_attack", 1)
	v.SetDefault("game.item_capacity", 2)
	v.SetDefault("game.bash_zombies", 3)
	v.SetDefault("game.max_combat_damage", 4)
	v.SetDefault("game.cower_heal", 3)
	v.SetDefault("game.run_health_cost", 1)
	v.SetDefault("game.clock_labels", []string{"9 PM", "10 PM", "11 PM"})
	v.SetDefault("game.board_size", 7)

	v.SetEnvPrefix("ZIMP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
