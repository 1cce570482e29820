// Package main provides the CLI entry point for ecmalint.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ecmalint/ecmalint/internal/color"
	"github.com/ecmalint/ecmalint/internal/config"
	"github.com/ecmalint/ecmalint/internal/linter"
	"github.com/ecmalint/ecmalint/internal/report"
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/internal/rules"
	"github.com/ecmalint/ecmalint/internal/runner"
	"github.com/ecmalint/ecmalint/pkg/logger"
)

const (
	// ExitCodeClean indicates no problems were found.
	ExitCodeClean = 0

	// ExitCodeProblems indicates at least one diagnostic or file error.
	ExitCodeProblems = 1

	// ExitCodeUsage indicates a CLI or configuration error.
	ExitCodeUsage = 2
)

// sourceGlob matches every lintable extension under a directory argument.
const sourceGlob = "**/*.{js,jsx,mjs,cjs,ts,tsx,mts,cts}"

var (
	configPath    string
	debugMode     bool
	noColorFlag   bool
	formatFlag    string
	tagsFlag      []string
	includeFlag   []string
	excludeFlag   []string
	maxWorkers    int
	fileDirective string
	lineDirective string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitCodeUsage)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ecmalint [files or globs...]",
	Short: "JavaScript and TypeScript linter",
	Long: `ecmalint lints JavaScript and TypeScript sources in a single AST pass
per file, with inline ignore directives and parallel execution across files.`,
	Args:              cobra.ArbitraryArgs,
	RunE:              run,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.Flags().StringSliceVar(
		&tagsFlag,
		"rules-tags",
		nil,
		"Rule tags to enable (e.g. recommended,style)",
	)
	rootCmd.Flags().StringSliceVar(
		&includeFlag,
		"rules-include",
		nil,
		"Rule codes to enable on top of the tag selection",
	)
	rootCmd.Flags().StringSliceVar(
		&excludeFlag,
		"rules-exclude",
		nil,
		"Rule codes to disable",
	)
	rootCmd.Flags().StringVarP(
		&formatFlag,
		"format",
		"f",
		"",
		"Output format (pretty, compact, json)",
	)
	rootCmd.Flags().IntVar(
		&maxWorkers,
		"max-workers",
		0,
		"Maximum number of files linted concurrently (default: number of CPUs)",
	)
	rootCmd.Flags().StringVar(
		&fileDirective,
		"file-ignore-directive",
		"",
		"Marker for file-level ignore comments (default: ecmalint-ignore-file)",
	)
	rootCmd.Flags().StringVar(
		&lineDirective,
		"line-ignore-directive",
		"",
		"Marker for line-level ignore comments (default: ecmalint-ignore)",
	)

	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Path to configuration file (default: ecmalint.toml)",
	)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("no files given")
	}

	level := logger.LevelError
	if debugMode {
		level = logger.LevelDebug
	}

	log := logger.NewWriterLogger(os.Stderr, level)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		return errors.New("no lintable files matched")
	}

	registry, err := rule.NewRegistry(rules.All()...)
	if err != nil {
		return errors.Wrap(err, "building rule registry")
	}

	lint := linter.New(linter.Options{
		Registry:            registry,
		Tags:                toTags(cfg.Rules.Tags),
		Include:             cfg.Rules.Include,
		Exclude:             cfg.Rules.Exclude,
		FileIgnoreDirective: cfg.Directives.File,
		LineIgnoreDirective: cfg.Directives.Line,
		Logger:              log,
	})

	results, err := runner.New(lint, log, &runner.Config{MaxWorkers: cfg.Runner.MaxWorkers}).
		Run(cmd.Context(), paths)
	if err != nil {
		return errors.Wrap(err, "linting")
	}

	theme := color.NewTheme(color.Profile(noColorFlag || cfg.Output.NoColor) &&
		color.IsTerminal(os.Stdout))

	reporter, err := report.New(report.Format(cfg.Output.Format), os.Stdout, report.Options{
		Theme: theme,
	})
	if err != nil {
		return err
	}

	if err := reporter.Report(results); err != nil {
		return errors.Wrap(err, "writing report")
	}

	if report.Total(results) > 0 || hasErrors(results) {
		os.Exit(ExitCodeProblems)
	}

	return nil
}

// loadConfig assembles the effective configuration, layering explicitly
// set CLI flags on top of the file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	loader, err := config.NewLoader()
	if err != nil {
		return nil, err
	}

	flags := map[string]any{}

	if cmd.Flags().Changed("rules-tags") {
		flags["rules.tags"] = tagsFlag
	}

	if cmd.Flags().Changed("rules-include") {
		flags["rules.include"] = includeFlag
	}

	if cmd.Flags().Changed("rules-exclude") {
		flags["rules.exclude"] = excludeFlag
	}

	if cmd.Flags().Changed("format") {
		flags["output.format"] = formatFlag
	}

	if cmd.Flags().Changed("max-workers") {
		flags["runner.max_workers"] = maxWorkers
	}

	if cmd.Flags().Changed("file-ignore-directive") {
		flags["directives.file"] = fileDirective
	}

	if cmd.Flags().Changed("line-ignore-directive") {
		flags["directives.line"] = lineDirective
	}

	return loader.Load(configPath, flags)
}

// expandPaths resolves arguments to concrete files: glob patterns expand
// with doublestar, directories pick up every lintable source beneath them,
// plain paths pass through. The result is deduplicated and sorted.
func expandPaths(args []string) ([]string, error) {
	seen := map[string]bool{}

	var paths []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true

			paths = append(paths, path)
		}
	}

	for _, arg := range args {
		switch {
		case isGlobPattern(arg):
			matches, err := doublestar.FilepathGlob(arg)
			if err != nil {
				return nil, errors.Wrapf(err, "bad glob pattern %q", arg)
			}

			for _, m := range matches {
				add(m)
			}

		case isDirectory(arg):
			matches, err := doublestar.FilepathGlob(filepath.Join(arg, sourceGlob))
			if err != nil {
				return nil, errors.Wrapf(err, "expanding directory %q", arg)
			}

			for _, m := range matches {
				add(m)
			}

		default:
			add(arg)
		}
	}

	sort.Strings(paths)

	return paths, nil
}

func isGlobPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

func isDirectory(arg string) bool {
	info, err := os.Stat(arg)

	return err == nil && info.IsDir()
}

func hasErrors(results []report.File) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}

	return false
}

func toTags(tags []string) []rule.Tag {
	if len(tags) == 0 {
		return nil
	}

	out := make([]rule.Tag, 0, len(tags))

	for _, t := range tags {
		out = append(out, rule.Tag(t))
	}

	return out
}
