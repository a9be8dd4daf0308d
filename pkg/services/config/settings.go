package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings is the optional radar configuration profile. Everything has a
// working default, so running without a config file is fine.
type Settings struct {
	WindowDays int               `mapstructure:"window_days"`
	FanOut     int               `mapstructure:"fan_out"`
	Tags       map[string]string `mapstructure:"tags"`
	Server     ServerSettings    `mapstructure:"server"`
}

type ServerSettings struct {
	Addr string `mapstructure:"addr"`
}

func DefaultSettings() Settings {
	return Settings{
		WindowDays: 90,
		FanOut:     4,
		Server:     ServerSettings{Addr: "localhost:8080"},
	}
}

// LoadSettings reads the settings file at path. An empty path yields the
// defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return &settings, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("window_days", settings.WindowDays)
	v.SetDefault("fan_out", settings.FanOut)
	v.SetDefault("server.addr", settings.Server.Addr)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse radar config: %w", err)
	}

	// viper lowercases map keys; re-read the tags mapping directly so the
	// configured key casing survives into the report.
	tags, err := loadTags(path)
	if err != nil {
		return nil, err
	}
	settings.Tags = tags

	return &settings, nil
}

func loadTags(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var doc struct {
		Tags map[string]string `yaml:"tags"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse radar config: %w", err)
	}

	return doc.Tags, nil
}
