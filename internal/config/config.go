package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all user-facing configuration for rock-photo.
type Config struct {
	Data  DataConfig  `toml:"data"`
	Model ModelConfig `toml:"model"`
}

type DataConfig struct {
	Dir string `toml:"dir"`
}

type ModelConfig struct {
	Name            string  `toml:"name"`
	MaxOutputTokens int     `toml:"max_output_tokens"`
	ThinkingBudget  int     `toml:"thinking_budget"`
	RateLimit       float64 `toml:"rate_limit"`
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Data: DataConfig{Dir: "data"},
		Model: ModelConfig{
			Name:            "gemini-2.5-pro",
			MaxOutputTokens: 65536,
			ThinkingBudget:  32000,
			RateLimit:       0.5,
		},
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error. A .env file in the working directory
// is loaded into the environment first, so the API key can live beside the
// config; a missing .env is not an error.
func Load(path string) (*Config, error) {
	godotenv.Load()

	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
