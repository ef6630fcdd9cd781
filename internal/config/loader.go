package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source names where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadBoulder loads the configuration.
// Search order: customPath -> ~/.boulder/configs/boulder.yaml ->
// ./configs/boulder.yaml -> embedded default -> hard-coded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or broken.
func LoadBoulder(customPath string) (BoulderConfig, Source, error) {
	base, src := defaults()

	if customPath != "" {
		cfg, err := layerFile(base, customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return finish(cfg, SourceCustom)
	}

	if userCfgPath := userConfigPath("boulder.yaml"); userCfgPath != "" {
		if cfg, err := layerFile(base, userCfgPath); err == nil {
			return finish(cfg, SourceUser)
		}
	}

	if cfg, err := layerFile(base, filepath.Join("configs", "boulder.yaml")); err == nil {
		return finish(cfg, SourceLocal)
	}

	return finish(base, src)
}

// defaults returns the embedded default, falling back to the hard-coded one.
func defaults() (BoulderConfig, Source) {
	cfg := DefaultBoulderConfig()
	var embedded BoulderConfig
	if err := yaml.Unmarshal(defaultBoulderYAML, &embedded); err != nil {
		return cfg, SourceBuiltin
	}
	return embedded, SourceEmbedded
}

func layerFile(base BoulderConfig, path string) (BoulderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Layer(base, data)
	if err != nil {
		return base, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Layer applies YAML data over base. Keys absent from data keep base values;
// a list present in data replaces the base list.
func Layer(base BoulderConfig, data []byte) (BoulderConfig, error) {
	cfg := base
	cfg.Keys = base.Keys.clone()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

func finish(cfg BoulderConfig, src Source) (BoulderConfig, Source, error) {
	cfg.Levels.Dir = ExpandHome(cfg.Levels.Dir)
	cfg.Journal.Path = ExpandHome(cfg.Journal.Path)
	if err := cfg.Validate(); err != nil {
		return cfg, src, err
	}
	return cfg, src, nil
}

func (k KeyBindings) clone() KeyBindings {
	cp := func(s []string) []string { return append([]string(nil), s...) }
	return KeyBindings{
		Up:      cp(k.Up),
		Down:    cp(k.Down),
		Left:    cp(k.Left),
		Right:   cp(k.Right),
		Pause:   cp(k.Pause),
		Restart: cp(k.Restart),
		Quit:    cp(k.Quit),
		Back:    cp(k.Back),
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// HomeDir returns ~/.boulder, or "" if home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".boulder")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
