// Package ignore parses ignore directives out of comments and filters rule
// diagnostics through them. Suppression is a post-filter: rules always run
// and produce everything, then directives remove matches while recording
// which listed codes actually suppressed something. That bookkeeping feeds
// the ban-unused-ignore meta check.
package ignore

import (
	"regexp"
	"strings"

	"github.com/ecmalint/ecmalint/pkg/ast"
)

// Default directive markers. The marker is the first whitespace-delimited
// token of a line comment's trimmed text.
const (
	DefaultFileMarker = "ecmalint-ignore-file"
	DefaultLineMarker = "ecmalint-ignore"
)

// Meta-check codes implemented by the resolver rather than by traversal
// handlers.
const (
	CodeBanUnusedIgnore    = "ban-unused-ignore"
	CodeBanUnknownRuleCode = "ban-unknown-rule-code"
	CodeBanUntaggedIgnore  = "ban-untagged-ignore"
)

// codeSeparator splits a directive's code list: comma with optional
// whitespace, or bare whitespace, so "a, b", "a,b" and "a b" all parse the
// same way.
var codeSeparator = regexp.MustCompile(`,\s*|\s+`)

// CodeStatus tracks whether a listed code suppressed at least one
// diagnostic within the directive's scope.
type CodeStatus struct {
	Used bool
}

// Directive is one parsed ignore comment. Codes is empty for a blanket
// file-level directive; line-level directives always carry codes (a
// code-less line directive is a configuration error surfaced separately).
type Directive struct {
	// Span is the directive comment's span; unused-ignore diagnostics
	// anchor here.
	Span ast.Span

	// Codes maps each listed code to its usage status. Iteration order is
	// irrelevant; reported diagnostics are sorted later.
	Codes map[string]*CodeStatus
}

// IgnoreAll reports whether the directive suppresses every code.
func (d *Directive) IgnoreAll() bool {
	return len(d.Codes) == 0
}

// Has reports whether the directive lists the given code.
func (d *Directive) Has(code string) bool {
	_, ok := d.Codes[code]

	return ok
}

// CheckUsed reports whether the directive suppresses the given code and, if
// so, marks that code as used.
func (d *Directive) CheckUsed(code string) bool {
	status, ok := d.Codes[code]
	if !ok {
		return false
	}

	status.Used = true

	return true
}

// Directives is the parsed suppression index of one file.
type Directives struct {
	// File is the effective file-level directive: the first one in source
	// order within the eligible region. Nil when the file has none.
	File *Directive

	// IneffectiveFile holds any further file-level directives. They never
	// suppress anything; their codes surface through ban-unused-ignore.
	IneffectiveFile []*Directive

	// Line maps a comment's own line number to its directive. A directive
	// on line N suppresses diagnostics starting on line N+1.
	Line map[uint32]*Directive

	// Untagged holds line-level directives that listed no codes, which is
	// a configuration error.
	Untagged []*Directive
}

// Parse scans the file's comments for directives using the given markers.
// File-level directives are recognized only before the first top-level
// statement; marker comments appearing later parse as nothing (file marker)
// or as a line directive (line marker).
func Parse(program *ast.Program, fileMarker, lineMarker string) *Directives {
	out := &Directives{Line: make(map[uint32]*Directive)}

	firstStmt, hasStmt := program.FirstStatementStart()

	for _, comment := range program.Comments {
		// Only line comments carry directives; a marker-like line inside a
		// block comment never matches.
		if comment.Kind != ast.CommentLine {
			continue
		}

		marker, codes := splitDirective(comment.Text)

		switch marker {
		case fileMarker:
			if hasStmt && comment.Span.Start.ByteOffset >= firstStmt {
				continue
			}

			d := &Directive{Span: comment.Span, Codes: codes}
			if out.File == nil {
				out.File = d
			} else {
				out.IneffectiveFile = append(out.IneffectiveFile, d)
			}

		case lineMarker:
			d := &Directive{Span: comment.Span, Codes: codes}
			if len(codes) == 0 {
				out.Untagged = append(out.Untagged, d)

				continue
			}

			out.Line[comment.Span.Start.Line] = d
		}
	}

	return out
}

// splitDirective returns the first token of the trimmed comment text and
// the parsed code set of the remainder.
func splitDirective(text string) (string, map[string]*CodeStatus) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", nil
	}

	marker := trimmed
	rest := ""

	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		marker = trimmed[:i]
		rest = trimmed[i+1:]
	}

	codes := make(map[string]*CodeStatus)

	for _, code := range codeSeparator.Split(rest, -1) {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}

		codes[code] = &CodeStatus{}
	}

	return marker, codes
}
