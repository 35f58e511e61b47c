// Package config provides configuration management for the forge CLI using
// Viper for flexible configuration loading from files, environment variables,
// and command-line flags.
//
// The configuration system supports YAML files (.forge.yml) and environment
// variable overrides with the FORGE_ prefix. It manages the naming
// conventions for generated packages and an optional host manifest override.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// OfficialScope is the npm scope official packages are published
	// under, e.g. "@weblint".
	OfficialScope string `yaml:"official_scope" mapstructure:"official_scope"`

	// CommunityPrefix prefixes the name and directory of community
	// packages, e.g. "weblint".
	CommunityPrefix string `yaml:"community_prefix" mapstructure:"community_prefix"`

	// HostManifest optionally points at a host manifest file, overriding
	// the embedded copy.
	HostManifest string `yaml:"host_manifest" mapstructure:"host_manifest"`

	// OutputRoot is the directory packages are generated under. Empty
	// means the current working directory.
	OutputRoot string `yaml:"output_root" mapstructure:"output_root"`
}

// Load unmarshals the active viper configuration, applying defaults for
// anything unset.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.OfficialScope == "" {
		config.OfficialScope = "@weblint"
	}
	if config.CommunityPrefix == "" {
		config.CommunityPrefix = "weblint"
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validate(config *Config) error {
	if !strings.HasPrefix(config.OfficialScope, "@") {
		return fmt.Errorf("official_scope must start with '@', got %q", config.OfficialScope)
	}

	if strings.ContainsAny(config.CommunityPrefix, " /@") {
		return fmt.Errorf("community_prefix must be a bare package name prefix, got %q", config.CommunityPrefix)
	}

	return nil
}
