package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultNames are the file names LoadAll looks for, in order
var DefaultNames = []string{"game.yaml", "game.yml", "game.json"}

// Loader loads game configuration from JSON or YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// Load reads, decodes and validates one config file. The format follows
// the file extension.
func (l *Loader) Load(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var cfg GameConfig
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("unsupported config format: %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadAll loads the first of DefaultNames that exists
func (l *Loader) LoadAll() (*GameConfig, error) {
	for _, name := range DefaultNames {
		if _, err := fs.Stat(l.fsys, name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
		return l.Load(name)
	}
	return nil, fmt.Errorf("no config found in %s (tried %s): %w",
		l.basePath, strings.Join(DefaultNames, ", "), fs.ErrNotExist)
}

// IsConfigFile reports whether a path has a config extension
func IsConfigFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
