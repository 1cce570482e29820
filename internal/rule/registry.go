package rule

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// ErrDuplicateCode is returned when two rules share a code.
var ErrDuplicateCode = errors.New("duplicate rule code")

// Registry is the closed set of all known rules, sorted by code. It is
// built once at startup and shared read-only across concurrent file runs.
type Registry struct {
	rules  []Rule
	byCode map[string]Rule
}

// NewRegistry builds a registry from the given rules, sorting them by code.
func NewRegistry(rules ...Rule) (*Registry, error) {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Code() < sorted[j].Code()
	})

	byCode := make(map[string]Rule, len(sorted))

	for _, r := range sorted {
		if _, ok := byCode[r.Code()]; ok {
			return nil, errors.Wrapf(ErrDuplicateCode, "%q", r.Code())
		}

		byCode[r.Code()] = r
	}

	return &Registry{rules: sorted, byCode: byCode}, nil
}

// All returns every rule in registry (code) order.
func (r *Registry) All() []Rule {
	return r.rules
}

// Lookup returns the rule with the given code.
func (r *Registry) Lookup(code string) (Rule, bool) {
	rule, ok := r.byCode[code]

	return rule, ok
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	return len(r.rules)
}

// Codes returns the set of every known rule code.
func (r *Registry) Codes() map[string]struct{} {
	codes := make(map[string]struct{}, len(r.rules))

	for _, rule := range r.rules {
		codes[rule.Code()] = struct{}{}
	}

	return codes
}

// Metadata returns the {code, tags} projection of every rule, in registry
// order.
func (r *Registry) Metadata() []Metadata {
	out := make([]Metadata, 0, len(r.rules))

	for _, rule := range r.rules {
		out = append(out, Metadata{Code: rule.Code(), Tags: rule.Tags()})
	}

	return out
}

// Select filters the registry down to an active rule set, preserving
// registry order. Filters apply in sequence:
//
//   - tags: if non-nil, only rules carrying at least one of the tags
//     survive (an empty non-nil list selects nothing);
//   - exclude: rules with matching codes are removed;
//   - include: rules with matching codes are added back.
//
// A nil tags list means "all rules".
func (r *Registry) Select(tags []Tag, exclude, include []string) []Rule {
	excluded := toSet(exclude)
	included := toSet(include)

	var active []Rule

	for _, rule := range r.rules {
		_, forced := included[rule.Code()]

		if !forced {
			if tags != nil && !hasAnyTag(rule, tags) {
				continue
			}

			if _, skip := excluded[rule.Code()]; skip {
				continue
			}
		}

		active = append(active, rule)
	}

	return active
}

// Recommended returns the rules tagged "recommended", in registry order.
func (r *Registry) Recommended() []Rule {
	return r.Select([]Tag{TagRecommended}, nil, nil)
}

func hasAnyTag(r Rule, tags []Tag) bool {
	for _, t := range tags {
		if HasTag(r.Tags(), t) {
			return true
		}
	}

	return false
}

func toSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))

	for _, c := range codes {
		set[c] = struct{}{}
	}

	return set
}
