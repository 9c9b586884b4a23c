package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Files tried, in order, when no path is given.
var defaultPaths = []string{"config.yaml", "config.yml"}

// Load resolves the file from CONFIG_PATH; see LoadFrom.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom reads path (YAML), then the environment, then env-default tags,
// with the environment winning. An explicit path must exist. With an empty
// path the first existing default file is used, and if none exists the
// configuration comes from the environment alone.
func LoadFrom(path string) (*Config, error) {
	file, err := resolve(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if file == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(file, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", orEnv(file), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func resolve(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("file %s: %w", path, err)
		}
		return path, nil
	}
	for _, p := range defaultPaths {
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("file %s: %w", p, err)
		}
	}
	return "", nil
}

func orEnv(file string) string {
	if file == "" {
		return "env"
	}
	return file
}
