// Package config loads the storefront's runtime settings. Values come
// from a YAML file with environment overrides on top, so a deployment
// can tweak the recipient or address without editing the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Nisand-KB/FRESH-MART/internal/domain"
)

type Config struct {
	// Addr is the HTTP listen address
	Addr string `yaml:"addr"`
	// CatalogPath points at the YAML product catalog
	CatalogPath string `yaml:"catalog_path"`
	// WhatsAppRecipient is the fixed order recipient number; never
	// derived from user input
	WhatsAppRecipient string `yaml:"whatsapp_recipient"`
	// DefaultLanguage is the startup locale
	DefaultLanguage domain.Language `yaml:"default_language"`
	// Sensor optionally pins the device location for deployments
	// without a real sensor; nil means location capture is unavailable
	Sensor *domain.Location `yaml:"sensor"`
}

func defaults() Config {
	return Config{
		Addr:              ":9091",
		CatalogPath:       "catalog.yaml",
		WhatsAppRecipient: "919876543210",
		DefaultLanguage:   domain.DefaultLanguage,
	}
}

// Load reads path (optional: pass "" for defaults only), then applies
// FRESHMART_* environment overrides.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if v := os.Getenv("FRESHMART_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("FRESHMART_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("FRESHMART_WHATSAPP_RECIPIENT"); v != "" {
		cfg.WhatsAppRecipient = v
	}
	if v := os.Getenv("FRESHMART_LANGUAGE"); v != "" {
		cfg.DefaultLanguage = domain.Language(v)
	}
	if !cfg.DefaultLanguage.Valid() {
		return cfg, fmt.Errorf("config: unknown language %q", cfg.DefaultLanguage)
	}
	return cfg, nil
}
