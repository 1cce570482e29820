// Package config provides configuration loading and processing.
package config

// Config is the full tool configuration.
type Config struct {
	Rules      RulesConfig      `koanf:"rules"      toml:"rules"`
	Output     OutputConfig     `koanf:"output"     toml:"output"`
	Runner     RunnerConfig     `koanf:"runner"     toml:"runner"`
	Directives DirectivesConfig `koanf:"directives" toml:"directives"`
}

// RulesConfig selects the active rules. Tags pick rule sets, Exclude drops
// individual codes from the tag selection, Include forces codes back in.
type RulesConfig struct {
	Tags    []string `koanf:"tags"    toml:"tags"`
	Include []string `koanf:"include" toml:"include"`
	Exclude []string `koanf:"exclude" toml:"exclude"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	// Format is one of "pretty", "compact", "json".
	Format  string `koanf:"format"   toml:"format"`
	NoColor bool   `koanf:"no_color" toml:"no_color"`
}

// RunnerConfig controls parallel execution.
type RunnerConfig struct {
	// MaxWorkers caps concurrently linted files. Zero means one worker
	// per CPU.
	MaxWorkers int `koanf:"max_workers" toml:"max_workers"`
}

// DirectivesConfig overrides the ignore directive markers.
type DirectivesConfig struct {
	File string `koanf:"file" toml:"file"`
	Line string `koanf:"line" toml:"line"`
}

// Default configuration constants for koanf map defaults.
const (
	defaultFormat        = "pretty"
	defaultFileDirective = "ecmalint-ignore-file"
	defaultLineDirective = "ecmalint-ignore"
)

// defaultTags is the rule selection when no config says otherwise.
var defaultTags = []string{"recommended"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Rules: RulesConfig{
			Tags: append([]string(nil), defaultTags...),
		},
		Output: OutputConfig{
			Format: defaultFormat,
		},
		Directives: DirectivesConfig{
			File: defaultFileDirective,
			Line: defaultLineDirective,
		},
	}
}

// defaultsToMap flattens the defaults for koanf's confmap provider.
func defaultsToMap() map[string]any {
	return map[string]any{
		"rules.tags":         defaultTags,
		"rules.include":      []string{},
		"rules.exclude":      []string{},
		"output.format":      defaultFormat,
		"output.no_color":    false,
		"runner.max_workers": 0,
		"directives.file":    defaultFileDirective,
		"directives.line":    defaultLineDirective,
	}
}
