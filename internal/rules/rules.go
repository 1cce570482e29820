// Package rules bundles the lint rules shipped with the binary. Each rule
// lives in its own file and plugs into the engine through the rule.Rule
// interface; meta checks that run in the directive resolver instead of the
// traversal are registered here too so they share the tag and listing
// machinery.
package rules

import "github.com/ecmalint/ecmalint/internal/rule"

// All returns one instance of every bundled rule.
func All() []rule.Rule {
	return []rule.Rule{
		BanUnknownRuleCode{},
		BanUntaggedIgnore{},
		BanUntaggedTodo{},
		BanUnusedIgnore{},
		Eqeqeq{},
		NoCompareNegZero{},
		NoDebugger{},
		NoDeleteVar{},
		NoEmpty{},
		NoEval{},
		NoSparseArrays{},
		NoThrowLiteral{},
		NoUnreachable{},
		NoVar{},
		NoWith{},
		ValidTypeof{},
	}
}

func recommended() []rule.Tag {
	return []rule.Tag{rule.TagRecommended}
}

func style() []rule.Tag {
	return []rule.Tag{rule.TagStyle}
}
