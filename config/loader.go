package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// EmbeddedSource is reported as the source of the built-in configuration.
const EmbeddedSource = "embedded"

// ErrUnknownFormat is returned for config files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown config format")

// Format is a supported config file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFor picks the encoding from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Default returns the embedded configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default config: %v", err))
	}
	return cfg
}

// DefaultTuning returns the embedded gameplay constants.
func DefaultTuning() Tuning {
	return Default().Tuning
}

// Decode parses data on top of the embedded defaults, so a file only needs
// to name the settings it changes.
func Decode(data []byte, format Format) (Config, error) {
	cfg := Default()
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = ErrUnknownFormat
	}
	return cfg, err
}

// LoadFile reads and decodes a single config file.
func LoadFile(path string) (Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Decode(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Load resolves the configuration and reports where it came from.
// Search order: customPath -> ~/.agility-camp/config.yaml ->
// ./configs/agility-camp.yaml -> embedded default. An explicit customPath
// must load; the other locations are skipped when missing or broken.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return Config{}, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	return Default(), EmbeddedSource, nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".agility-camp", "config.yaml"))
	}
	return append(paths, filepath.Join("configs", "agility-camp.yaml"))
}
