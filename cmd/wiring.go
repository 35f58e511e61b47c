package cmd

import (
	"os"

	"github.com/weblint/forge/internal/config"
	"github.com/weblint/forge/internal/generator"
	"github.com/weblint/forge/internal/hostmeta"
	"github.com/weblint/forge/internal/prompt"
	"github.com/weblint/forge/internal/usecase"
)

// newDriver constructs a generation driver over the real terminal and the
// configured host manifest.
func newDriver() (*generator.Driver, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	meta, err := loadHostManifest(cfg)
	if err != nil {
		return nil, err
	}

	asker := prompt.NewTerminalAsker(os.Stdin, os.Stdout)

	return generator.New(asker, usecase.New(), meta, cfg, os.Stdout), nil
}

func loadHostManifest(cfg *config.Config) (*hostmeta.Manifest, error) {
	if cfg.HostManifest != "" {
		return hostmeta.LoadFile(cfg.HostManifest)
	}

	return hostmeta.Load()
}
