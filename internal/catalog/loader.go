package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Species []Species `yaml:"species"`
	Stages  []Stage   `yaml:"stages"`
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: cannot parse: %w", err)
	}
	c := New(f.Species, f.Stages)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: invalid: %w", err)
	}
	return c, nil
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Load loads the catalog.
// Search order: customPath -> ~/.fishing/catalog.yaml -> ./configs/catalog.yaml -> embedded default
func Load(customPath string) (*Catalog, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("catalog: failed to read %s: %w", customPath, err)
		}
		return Parse(data)
	}

	for _, path := range []string{userCatalogPath(), filepath.Join("configs", "catalog.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if c, err := Parse(data); err == nil {
				return c, nil
			}
		}
	}

	return Default(), nil
}

func userCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fishing", "catalog.yaml")
}
