package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDir returns the user profile directory, or empty if the home
// directory is unavailable.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickstorm", "configs")
}

// Load reads a named profile from dir.
// The name "default" (or empty) falls back to the embedded default when no
// file overrides it; any other missing name is an error.
func Load(dir, name string) (Config, error) {
	if name == "" {
		name = "default"
	}

	path := filepath.Join(dir, name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && name == "default" {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read profile %s: %w", name, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse profile %s: %w", name, err)
	}
	cfg.Name = name
	cfg.Clamp()
	return cfg, nil
}

// LoadPath reads a profile from an explicit file path.
func LoadPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	cfg.Clamp()
	return cfg, nil
}

// Save writes a named profile into dir, creating it if needed. The builtin
// "default" profile cannot be overwritten.
func Save(dir string, cfg Config) error {
	if cfg.Name == "" {
		return fmt.Errorf("config: profile has no name")
	}
	if cfg.Name == "default" {
		return fmt.Errorf("config: profile %q is protected", cfg.Name)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory %s: %w", dir, err)
	}

	cfg.Clamp()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode profile %s: %w", cfg.Name, err)
	}

	path := filepath.Join(dir, cfg.Name+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write profile %s: %w", cfg.Name, err)
	}
	return nil
}

// List returns the available profile names, sorted, with the builtin
// "default" always present.
func List(dir string) ([]string, error) {
	names := []string{"default"}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return names, nil
		}
		return nil, fmt.Errorf("config: cannot read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		if name != "default" {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// Delete removes a named profile from dir. The builtin "default" profile
// cannot be deleted.
func Delete(dir, name string) error {
	if name == "default" {
		return fmt.Errorf("config: profile %q is protected", name)
	}

	path := filepath.Join(dir, name+".yaml")
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("config: cannot delete profile %s: %w", name, err)
	}
	return nil
}
