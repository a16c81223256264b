// Package config loads and saves the .semv.yaml project configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/semv/internal/core"
	"github.com/indaco/semv/internal/manifest"
	"github.com/indaco/semv/internal/versionfile"
)

// DefaultConfigFile is the conventional config file name.
const DefaultConfigFile = ".semv.yaml"

// Config is the main configuration structure for semv.
type Config struct {
	// Path is the version file anchoring the project's current version.
	Path string `yaml:"path"`

	// Sources are additional manifest locations kept in sync with the
	// version file by the set and bump commands.
	Sources []manifest.Source `yaml:"sources,omitempty"`

	// Theme selects the interactive form theme.
	Theme string `yaml:"theme,omitempty"`

	// NoColor disables styled output when true.
	NoColor bool `yaml:"no-color,omitempty"`
}

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileWriter abstracts file writing operations for testability.
type FileWriter interface {
	WriteFile(file *os.File, data []byte) (int, error)
}

// Saver handles configuration saving with injected dependencies.
type Saver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
	fileWriter FileWriter
}

// osFileOpener is the production implementation of FileOpener.
type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// osFileWriter is the production implementation of FileWriter.
type osFileWriter struct{}

func (w *osFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	return file.Write(data)
}

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// NewSaver creates a Saver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewSaver(marshaler core.Marshaler, opener FileOpener, writer FileWriter) *Saver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if opener == nil {
		opener = &osFileOpener{}
	}
	if writer == nil {
		writer = &osFileWriter{}
	}
	return &Saver{
		marshaler:  marshaler,
		fileOpener: opener,
		fileWriter: writer,
	}
}

// Save saves the configuration to the default config file.
func (s *Saver) Save(cfg *Config) error {
	return s.SaveTo(cfg, DefaultConfigFile)
}

// SaveTo saves the configuration to the specified file path.
func (s *Saver) SaveTo(cfg *Config, configFile string) error {
	file, err := s.fileOpener.OpenFile(configFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, core.PermOwnerRW)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	if _, err := s.fileWriter.WriteFile(file, data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

var defaultSaver = NewSaver(nil, nil, nil)

// LoadFn and SaveFn are function variables so tests can substitute
// config handling without touching the filesystem.
var (
	LoadFn = load
	SaveFn = func(cfg *Config) error {
		return defaultSaver.Save(cfg)
	}
)

// load resolves the configuration: the SEMV_PATH environment variable
// wins, then .semv.yaml, then built-in defaults.
func load() (*Config, error) {
	if envPath := os.Getenv("SEMV_PATH"); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid SEMV_PATH: path traversal not allowed, use absolute path instead")
		}
		return &Config{Path: cleanPath}, nil
	}

	data, err := os.ReadFile(DefaultConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Path == "" {
		cfg.Path = versionfile.DefaultPath
	}
	if cfg.Theme == "" {
		cfg.Theme = "semv"
	}
}

// NormalizeVersionPath ensures the path is a file, not just a directory.
func NormalizeVersionPath(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filepath.Join(path, versionfile.DefaultPath)
	}

	// If it doesn't exist or is already a file, return as-is
	return path
}
