package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	yamlparser "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrConfigNotFound is returned when an explicitly requested configuration
// file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// envPrefix namespaces the tool's environment variables.
const envPrefix = "ECMALINT_"

// projectConfigFiles are probed in order in the working directory when no
// --config path is given.
var projectConfigFiles = []string{
	"ecmalint.toml",
	".ecmalint.toml",
	"ecmalint.yaml",
	".ecmalint.yaml",
}

// Loader loads configuration from defaults, a config file, environment
// variables, and CLI flags, in that precedence order (lowest to highest).
type Loader struct {
	k       *koanf.Koanf
	workDir string
}

// NewLoader creates a Loader rooted at the current working directory.
func NewLoader() (*Loader, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewLoaderWithDir(workDir), nil
}

// NewLoaderWithDir creates a Loader rooted at a custom directory (for testing).
func NewLoaderWithDir(workDir string) *Loader {
	return &Loader{k: koanf.New("."), workDir: workDir}
}

// Load assembles the configuration. configPath is the --config flag value;
// empty means probe the project files and silently skip when none exists.
// flags carries explicit CLI flag overrides as dotted config paths.
func (l *Loader) Load(configPath string, flags map[string]any) (*Config, error) {
	l.k = koanf.New(".")

	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	path, required := configPath, configPath != ""
	if path == "" {
		path = l.findProjectConfig()
	}

	if path != "" {
		if err := l.loadFile(path); err != nil {
			if os.IsNotExist(errors.Cause(err)) && !required {
				err = nil
			} else {
				return nil, errors.Wrapf(err, "failed to load config file %s", path)
			}
		}
	} else if required {
		return nil, ErrConfigNotFound
	}

	envOpt := env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	if len(flags) > 0 {
		if err := l.k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg Config
	if err := l.k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// findProjectConfig returns the first project config file that exists, or
// empty.
func (l *Loader) findProjectConfig() string {
	for _, name := range projectConfigFiles {
		path := filepath.Join(l.workDir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadFile loads a config file, choosing the parser by extension.
func (l *Loader) loadFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return l.k.Load(file.Provider(path), yamlparser.Parser())
	default:
		return l.k.Load(file.Provider(path), tomlparser.Parser())
	}
}

// envTransform maps environment variable names to config paths.
// ECMALINT_OUTPUT_FORMAT becomes output.format. List-valued keys accept
// comma-separated values.
func envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, envPrefix)
	key = strings.ToLower(key)

	// max_workers and no_color keep their underscore.
	switch key {
	case "runner_max_workers":
		key = "runner.max_workers"
	case "output_no_color":
		key = "output.no_color"
	default:
		key = strings.ReplaceAll(key, "_", ".")
	}

	if strings.Contains(value, ",") {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		return key, parts
	}

	return key, value
}
