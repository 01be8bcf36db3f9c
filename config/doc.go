// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every field has a default so the demo runs with no config file at all.
package config
