package rules

import (
	"github.com/ecmalint/ecmalint/internal/ignore"
	"github.com/ecmalint/ecmalint/internal/rule"
)

// The three meta checks below have no traversal handlers. They run inside
// the directive resolver, which inspects the parsed ignore directives after
// every other rule has reported. Registering them here keeps them subject
// to the same tag filtering, --rules-include/--rules-exclude selection, and
// `ecmalint rules` listing as ordinary rules.

// BanUnusedIgnore reports directive codes that never suppressed a
// diagnostic.
type BanUnusedIgnore struct{}

func (BanUnusedIgnore) Code() string            { return ignore.CodeBanUnusedIgnore }
func (BanUnusedIgnore) Tags() []rule.Tag        { return recommended() }
func (BanUnusedIgnore) Handlers() rule.Handlers { return nil }

// BanUnknownRuleCode reports directive codes that match no registered rule.
type BanUnknownRuleCode struct{}

func (BanUnknownRuleCode) Code() string            { return ignore.CodeBanUnknownRuleCode }
func (BanUnknownRuleCode) Tags() []rule.Tag        { return recommended() }
func (BanUnknownRuleCode) Handlers() rule.Handlers { return nil }

// BanUntaggedIgnore reports line-level ignore directives that list no
// codes.
type BanUntaggedIgnore struct{}

func (BanUntaggedIgnore) Code() string            { return ignore.CodeBanUntaggedIgnore }
func (BanUntaggedIgnore) Tags() []rule.Tag        { return recommended() }
func (BanUntaggedIgnore) Handlers() rule.Handlers { return nil }
