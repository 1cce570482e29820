package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

const (
	// ConfigFileMode is the file mode for configuration files (user read/write only).
	ConfigFileMode = 0o600
)

// ErrConfigExists is returned when writing would clobber an existing file.
var ErrConfigExists = errors.New("configuration file already exists")

// WriteDefault writes the built-in defaults as a starter TOML config file.
// It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if path == "" {
		path = projectConfigFiles[0]
	}

	if _, err := os.Stat(path); err == nil {
		return errors.Wrapf(ErrConfigExists, "%s", path)
	}

	var buf bytes.Buffer

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(Default()); err != nil {
		return errors.Wrap(err, "failed to encode default config")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.Wrap(err, "failed to create config directory")
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), ConfigFileMode); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}
