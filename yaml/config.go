// Package yaml loads and writes the lauds configuration file.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/lauds"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the location of the configuration file,
// ~/.lauds/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".lauds", "config.yaml"), nil
}

// LoadConfig reads the configuration file at path over the defaults. A
// missing file is not an error and yields the defaults. A file that cannot
// be parsed, or that holds invalid values, is an error.
func LoadConfig(path string) (lauds.Config, error) {
	cfg := lauds.DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, lauds.Errorf(lauds.EINVALID, "failed to parse config file %s: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg lauds.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&cfg); err != nil {
		return err
	}
	return enc.Close()
}
