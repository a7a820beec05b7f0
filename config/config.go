package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the CLI defaults. Values come from an optional YAML file
// and/or environment variables; flags override both.
type Config struct {
	LogLevel   string `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"info"`
	Difficulty int    `yaml:"difficulty" env:"OTHELLO_DIFFICULTY" env-default:"3"`
	Games      int    `yaml:"games" env:"OTHELLO_GAMES" env-default:"1"`
}

// MustLoad reads the config file at path, panicking if it is unreadable.
func MustLoad(path string) *Config {
	config := &Config{}
	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}
	return config
}

// Default returns the configuration from environment variables and
// defaults alone.
func Default() *Config {
	config := &Config{}
	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to read environment: %w", err))
	}
	return config
}
