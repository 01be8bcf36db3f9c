package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./configs/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	ApplyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Map); err != nil {
		return err
	}
	Config = cfg
	return nil
}

// ApplyDefaults fills zero-valued fields with the fixed demo defaults.
func ApplyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Data.RoutesFile == "" {
		cfg.Data.RoutesFile = "data/train_routes.json"
	}
	if cfg.Data.WebDataFile == "" {
		cfg.Data.WebDataFile = "data/web_data.json"
	}
	if cfg.Data.CacheFile == "" {
		cfg.Data.CacheFile = "data/railway_cache.json"
	}
	if cfg.Data.TimeoutMS == 0 {
		cfg.Data.TimeoutMS = 10000
	}
	if cfg.Map.CenterLatitude == 0 && cfg.Map.CenterLongitude == 0 {
		cfg.Map.CenterLatitude = 50.0
		cfg.Map.CenterLongitude = 9.0
	}
	if cfg.Map.DefaultZoom == 0 {
		cfg.Map.DefaultZoom = 5
	}
	if cfg.Map.FocusZoom == 0 {
		cfg.Map.FocusZoom = 7
	}
	if cfg.Map.FitPaddingPx == 0 {
		cfg.Map.FitPaddingPx = 50
	}
	if cfg.Colors.Default == "" {
		cfg.Colors.Default = "#3388ff"
	}
}

// Default returns a configuration populated entirely from defaults.
// Used when no config.yml is present; the demo is expected to work offline.
func Default() AppConfig {
	var cfg AppConfig
	ApplyDefaults(&cfg)
	return cfg
}
