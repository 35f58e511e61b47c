// Package hostmeta loads the weblint host application's declared manifest:
// its own version, the dependency versions new packages should pin, and the
// shared configurations community packages may extend.
//
// The manifest ships embedded in the binary and is parsed exactly once at
// startup into an immutable value; generated packages copy version strings
// out of it at generation time and never re-resolve them.
package hostmeta

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	forgeerrors "github.com/weblint/forge/internal/errors"
)

//go:embed manifest.yaml
var embedded []byte

// Manifest is the host application's declared metadata.
type Manifest struct {
	// Version is the host application's semantic version. Generated
	// packages pin their host dependency to this value.
	Version string `yaml:"version"`

	// Dependencies maps package names to the versions the host currently
	// declares for them.
	Dependencies map[string]string `yaml:"dependencies"`

	// Configurations lists the shared configuration packages a community
	// package may extend.
	Configurations []string `yaml:"configurations"`
}

// Load parses the embedded host manifest.
func Load() (*Manifest, error) {
	return parse(embedded, "embedded manifest")
}

// LoadFile parses a host manifest from an explicit path, overriding the
// embedded copy.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, forgeerrors.NewIOError("HOSTMETA_READ", "failed to read host manifest", err).WithPath(path)
	}

	return parse(data, path)
}

func parse(data []byte, source string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, forgeerrors.NewConfigError("HOSTMETA_PARSE", fmt.Sprintf("invalid host manifest %s: %v", source, err))
	}

	if m.Version == "" {
		return nil, forgeerrors.NewConfigError("HOSTMETA_VERSION", fmt.Sprintf("host manifest %s declares no version", source))
	}

	return &m, nil
}

// DependencyVersion returns the version the host declares for name, falling
// back to the host's own version when the dependency is not listed.
func (m *Manifest) DependencyVersion(name string) string {
	if v, ok := m.Dependencies[name]; ok {
		return v
	}

	return m.Version
}
