// Package rules holds the catalog of text-pattern checks run against every
// in-scope mobile source file. Rules are independent and pure: each one maps
// file content to findings and positive signals without touching shared state.
package rules

import (
	"fmt"

	"github.com/scan-io-git/mobile-audit/internal/detector"
	"github.com/scan-io-git/mobile-audit/internal/findings"
)

// Input is the per-file data every rule inspects.
type Input struct {
	// File is the base name reported in findings.
	File string
	// Content is the leniently decoded file text.
	Content string
	// Flags are the framework flags detected for Content.
	Flags detector.Flags
}

// Outcome is what a single rule produced for a single file.
type Outcome struct {
	Findings []findings.Finding
	// Passed holds one tag per confirmed good pattern.
	Passed []string
}

// CheckFunc inspects in and records results on report.
type CheckFunc func(in *Input, report *Reporter)

// Rule describes one catalog entry.
type Rule struct {
	// ID is a kebab-case identifier such as "touch-target-size".
	ID string
	// Category is the label findings are tagged with, e.g. "Touch Target".
	Category string
	// Description explains what the rule looks for.
	Description string
	// Requires lists the framework flags that must be present. Zero means
	// the rule runs for every in-scope file.
	Requires detector.Flags
	// Check is the evaluation function.
	Check CheckFunc
}

// Applies reports whether the rule should run for a file with the given flags.
func (r Rule) Applies(flags detector.Flags) bool {
	return flags.InScope() && flags.Has(r.Requires)
}

// Evaluate runs the rule against in. A failing check yields an empty outcome
// instead of aborting the audit.
func (r Rule) Evaluate(in *Input) (outcome Outcome) {
	report := &Reporter{rule: r, in: in}
	defer func() {
		if recover() != nil {
			outcome = Outcome{}
		}
	}()
	r.Check(in, report)
	return report.outcome
}

// Reporter collects findings and positive signals for one rule evaluation.
type Reporter struct {
	rule    Rule
	in      *Input
	outcome Outcome
}

// Issue records a blocking finding.
func (r *Reporter) Issue(format string, args ...interface{}) {
	r.outcome.Findings = append(r.outcome.Findings,
		findings.NewIssue(r.rule.ID, r.rule.Category, r.in.File, fmt.Sprintf(format, args...)))
}

// Warn records an advisory finding.
func (r *Reporter) Warn(format string, args ...interface{}) {
	r.outcome.Findings = append(r.outcome.Findings,
		findings.NewWarning(r.rule.ID, r.rule.Category, r.in.File, fmt.Sprintf(format, args...)))
}

// Pass records that a desirable pattern was confirmed.
func (r *Reporter) Pass() {
	r.outcome.Passed = append(r.outcome.Passed, r.rule.ID)
}
