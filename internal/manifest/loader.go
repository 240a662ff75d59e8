package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a manifest, choosing YAML or TOML by extension.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return Parse(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported manifest extension %q (want .yaml, .yml or .toml)", ext)
	}
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	ApplyDefaults(&f)

	return &f, nil
}

// ParseTOML parses TOML data into a File.
func ParseTOML(data []byte) (*File, error) {
	var f File

	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse manifest TOML: %w", err)
	}

	ApplyDefaults(&f)

	return &f, nil
}

// ApplyDefaults fills in default values for optional fields.
func ApplyDefaults(f *File) {
	if f.Version == "" {
		f.Version = DefaultVersion
	}

	for i := range f.Inversions {
		inv := &f.Inversions[i]
		inv.Name = strings.TrimSpace(inv.Name)

		if inv.SolveFor == "" {
			inv.SolveFor = DefaultSolveFor
		}

		if inv.Target == "" {
			inv.Target = DefaultTarget
		}

		if inv.Type == "" {
			inv.Type = DefaultType
		}

		if inv.Method == "" {
			inv.Method = DefaultMethod
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path as YAML.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}
