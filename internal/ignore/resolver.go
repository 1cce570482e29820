package ignore

import (
	"fmt"

	"github.com/ecmalint/ecmalint/internal/diag"
	"github.com/ecmalint/ecmalint/pkg/ast"
)

// Resolve filters rule diagnostics through the file's directives and
// appends the resolver-level meta diagnostics. activeCodes is the set of
// codes the current run enforces, knownCodes the set of all registered
// codes. The result is sorted.
func Resolve(
	dirs *Directives,
	diagnostics []diag.Diagnostic,
	activeCodes map[string]struct{},
	knownCodes map[string]struct{},
) []diag.Diagnostic {
	kept := make([]diag.Diagnostic, 0, len(diagnostics))

	for _, d := range diagnostics {
		if !suppressed(dirs, d.Code, d.Range) {
			kept = append(kept, d)
		}
	}

	if _, ok := activeCodes[CodeBanUnknownRuleCode]; ok {
		kept = append(kept, unknownCodeDiagnostics(dirs, knownCodes)...)
	}

	if _, ok := activeCodes[CodeBanUntaggedIgnore]; ok {
		for _, d := range dirs.Untagged {
			found := diag.Diagnostic{
				Code:    CodeBanUntaggedIgnore,
				Message: "Ignore directive requires lint rule name(s)",
				Hint:    "Add one or more lint rule names e.g. ecmalint-ignore no-var",
				Range:   d.Span,
			}
			if !suppressed(dirs, found.Code, found.Range) {
				kept = append(kept, found)
			}
		}
	}

	if _, ok := activeCodes[CodeBanUnusedIgnore]; ok {
		// Only a file-level listing disables this check. A line directive
		// naming it has no effect and itself counts as unused.
		if dirs.File == nil || !dirs.File.Has(CodeBanUnusedIgnore) {
			kept = append(kept, unusedDiagnostics(dirs, knownCodes)...)
		}
	}

	diag.Sort(kept)

	return kept
}

// suppressed reports whether a diagnostic with the given code and range is
// removed by the file's directives, marking the matching listed code as
// used. A line directive on line N covers diagnostics starting on line N+1.
func suppressed(dirs *Directives, code string, span ast.Span) bool {
	if dirs.File != nil {
		if dirs.File.IgnoreAll() {
			return true
		}

		if dirs.File.CheckUsed(code) {
			return true
		}
	}

	if span.Start.Line == 0 {
		return false
	}

	if line, ok := dirs.Line[span.Start.Line-1]; ok {
		return line.CheckUsed(code)
	}

	return false
}

// unknownCodeDiagnostics reports every directive code that matches no
// registered rule. A file-level directive listing ban-unknown-rule-code
// silences the check for the whole file, and that listing counts as used
// only when it actually silenced something.
func unknownCodeDiagnostics(dirs *Directives, knownCodes map[string]struct{}) []diag.Diagnostic {
	var out []diag.Diagnostic

	for _, d := range allDirectives(dirs) {
		for code := range d.Codes {
			if _, known := knownCodes[code]; known {
				continue
			}

			out = append(out, diag.Diagnostic{
				Code:    CodeBanUnknownRuleCode,
				Message: fmt.Sprintf("Unknown rule for code %q", code),
				Hint:    "Remove the code or fix its spelling",
				Range:   d.Span,
			})
		}
	}

	if len(out) == 0 {
		return nil
	}

	if dirs.File != nil && dirs.File.Has(CodeBanUnknownRuleCode) {
		dirs.File.CheckUsed(CodeBanUnknownRuleCode)

		return nil
	}

	return out
}

// unusedDiagnostics reports listed codes that never suppressed anything.
// Unknown codes are excluded here; ban-unknown-rule-code owns those.
func unusedDiagnostics(dirs *Directives, knownCodes map[string]struct{}) []diag.Diagnostic {
	var out []diag.Diagnostic

	for _, d := range allDirectives(dirs) {
		for code, status := range d.Codes {
			if status.Used {
				continue
			}

			if _, known := knownCodes[code]; !known {
				continue
			}

			out = append(out, diag.Diagnostic{
				Code:    CodeBanUnusedIgnore,
				Message: fmt.Sprintf("Ignore for code %q was not used", code),
				Hint:    "Remove the unused code from the ignore directive",
				Range:   d.Span,
			})
		}
	}

	return out
}

// allDirectives lists every parsed directive that carries codes, in an
// order that does not matter because the caller sorts.
func allDirectives(dirs *Directives) []*Directive {
	var out []*Directive

	if dirs.File != nil {
		out = append(out, dirs.File)
	}

	out = append(out, dirs.IneffectiveFile...)

	for _, d := range dirs.Line {
		out = append(out, d)
	}

	return out
}
