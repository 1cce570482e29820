// Package rule defines the lint-rule contract: the Rule interface, rule
// tags, the per-file Context handed to rule callbacks, and the Registry of
// all known rules.
package rule

import "github.com/ecmalint/ecmalint/pkg/ast"

// Tag classifies rules for selection, e.g. "recommended".
type Tag string

const (
	// TagRecommended marks rules enabled by the default configuration.
	TagRecommended Tag = "recommended"

	// TagStyle marks stylistic rules that are opt-in.
	TagStyle Tag = "style"
)

// AllTags lists every known tag.
var AllTags = []Tag{TagRecommended, TagStyle}

// Handler is a traversal callback invoked for every node of the kind it was
// registered for. Handlers may append diagnostics to the Context and must
// not mutate the AST.
type Handler func(ctx *Context, node *ast.Node)

// Handlers maps node kinds to the callback a rule wants for that kind.
type Handlers map[ast.NodeKind]Handler

// Rule is a single, independently authored lint check. Implementations are
// stateless: a Rule is constructed once per process and shared across
// concurrent file runs, so any per-file state must live on the Context.
type Rule interface {
	// Code returns the globally unique kebab-case rule code.
	Code() string

	// Tags returns the tags this rule belongs to.
	Tags() []Tag

	// Handlers returns the traversal callbacks this rule registers.
	// Meta rules that run outside the traversal return nil.
	Handlers() Handlers
}

// Metadata is the {code, tags} projection of a rule, exposed for the rules
// listing and documentation tooling.
type Metadata struct {
	Code string `json:"code"`
	Tags []Tag  `json:"tags"`
}

// HasTag reports whether tags contains t.
func HasTag(tags []Tag, t Tag) bool {
	for _, tag := range tags {
		if tag == t {
			return true
		}
	}

	return false
}
