// Package linter runs the full per-file pipeline: directive parsing,
// control-flow analysis, the single traversal pass, and directive
// resolution. A Linter is immutable after construction and safe to share
// across goroutines; all per-file state lives in the rule.Context created
// for each Lint call.
package linter

import (
	"github.com/ecmalint/ecmalint/internal/controlflow"
	"github.com/ecmalint/ecmalint/internal/diag"
	"github.com/ecmalint/ecmalint/internal/ignore"
	"github.com/ecmalint/ecmalint/internal/rule"
	"github.com/ecmalint/ecmalint/internal/traverse"
	"github.com/ecmalint/ecmalint/pkg/ast"
	"github.com/ecmalint/ecmalint/pkg/logger"
)

// Options configure a Linter.
type Options struct {
	// Registry holds every known rule. Required.
	Registry *rule.Registry

	// Tags, Include, and Exclude select the active subset of the registry.
	// With no tags and no include list, every rule runs.
	Tags    []rule.Tag
	Include []string
	Exclude []string

	// FileIgnoreDirective and LineIgnoreDirective override the directive
	// markers. Empty means the defaults.
	FileIgnoreDirective string
	LineIgnoreDirective string

	Logger logger.Logger
}

// Linter lints one file at a time.
type Linter struct {
	dispatcher  *traverse.Dispatcher
	activeCodes map[string]struct{}
	knownCodes  map[string]struct{}
	fileMarker  string
	lineMarker  string
	log         logger.Logger
}

// New builds a Linter with the rule selection resolved and the dispatch
// table prebuilt.
func New(opts Options) *Linter {
	active := opts.Registry.Select(opts.Tags, opts.Exclude, opts.Include)

	activeCodes := make(map[string]struct{}, len(active))
	for _, r := range active {
		activeCodes[r.Code()] = struct{}{}
	}

	fileMarker := opts.FileIgnoreDirective
	if fileMarker == "" {
		fileMarker = ignore.DefaultFileMarker
	}

	lineMarker := opts.LineIgnoreDirective
	if lineMarker == "" {
		lineMarker = ignore.DefaultLineMarker
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Linter{
		dispatcher:  traverse.NewDispatcher(active),
		activeCodes: activeCodes,
		knownCodes:  opts.Registry.Codes(),
		fileMarker:  fileMarker,
		lineMarker:  lineMarker,
		log:         log,
	}
}

// Lint runs every active rule over the program and returns the surviving
// diagnostics sorted by position and code. Lint never mutates the program.
// A panicking rule handler propagates; the caller decides how to contain
// it.
func (l *Linter) Lint(program *ast.Program) []diag.Diagnostic {
	dirs := ignore.Parse(program, l.fileMarker, l.lineMarker)

	// A file-level directive without codes suppresses the whole file, so
	// traversal would only produce discarded work.
	if dirs.File != nil && dirs.File.IgnoreAll() {
		l.log.Debug("file ignored by blanket directive", "filename", program.Filename)

		return nil
	}

	flow := controlflow.Analyze(program)
	ctx := rule.NewContext(program, flow)

	l.dispatcher.Run(ctx, program.Root)

	found := ignore.Resolve(dirs, ctx.Diagnostics(), l.activeCodes, l.knownCodes)

	l.log.Debug("file linted",
		"filename", program.Filename,
		"diagnostics", len(found),
	)

	return found
}
