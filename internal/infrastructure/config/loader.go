package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/ports"
)

// FileLoader reads an optional YAML config file. With no path configured it
// yields the zero Config and never touches the filesystem.
type FileLoader struct {
	path string
	home string
}

// NewFileLoader builds a loader. path may start with ~/, which expands to home.
func NewFileLoader(path string, home string) *FileLoader {
	return &FileLoader{path: path, home: home}
}

// Path returns the expanded config file path, or "" when none is configured.
func (l *FileLoader) Path() string {
	return expandPath(l.path, l.home)
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if path == "" {
		return domain.Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, domain.ConfigError(fmt.Sprintf("config file %s not found", path), nil)
		}
		return domain.Config{}, domain.ConfigError("reading config file "+path, err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, domain.ConfigError("parsing config file "+path, err)
	}
	cfg.URL = strings.TrimSpace(cfg.URL)
	return cfg, nil
}

func expandPath(path string, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") && home != "" {
		return filepath.Join(home, path[2:])
	}
	return path
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
