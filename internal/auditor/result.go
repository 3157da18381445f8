package auditor

import (
	"github.com/scan-io-git/mobile-audit/internal/findings"
	"github.com/scan-io-git/mobile-audit/internal/rules"
)

// Result accumulates findings across every audited file of a run.
// It is append-only and not safe for concurrent use; parallel audits build
// one partial Result per file and merge them in discovery order.
type Result struct {
	FilesChecked int
	Issues       []findings.Finding
	Warnings     []findings.Finding
	PassedCount  int
}

// Snapshot is the serializable view of a Result.
type Snapshot struct {
	FilesChecked int      `json:"files_checked"`
	Issues       []string `json:"issues"`
	Warnings     []string `json:"warnings"`
	PassedChecks int      `json:"passed_checks"`
	Compliant    bool     `json:"compliant"`
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{}
}

// Add folds a single rule outcome into the result, keeping finding order.
func (r *Result) Add(outcome rules.Outcome) {
	for _, f := range outcome.Findings {
		if f.IsIssue() {
			r.Issues = append(r.Issues, f)
		} else {
			r.Warnings = append(r.Warnings, f)
		}
	}
	r.PassedCount += len(outcome.Passed)
}

// Merge appends other after everything already in r.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.FilesChecked += other.FilesChecked
	r.Issues = append(r.Issues, other.Issues...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.PassedCount += other.PassedCount
}

// Compliant reports whether the run produced no issues. Warnings never
// affect compliance.
func (r *Result) Compliant() bool {
	return len(r.Issues) == 0
}

// Findings returns every finding, issues first, each group in report order.
func (r *Result) Findings() []findings.Finding {
	out := make([]findings.Finding, 0, len(r.Issues)+len(r.Warnings))
	out = append(out, r.Issues...)
	return append(out, r.Warnings...)
}

// Report returns the snapshot renderers serialize.
func (r *Result) Report() Snapshot {
	return Snapshot{
		FilesChecked: r.FilesChecked,
		Issues:       toStrings(r.Issues),
		Warnings:     toStrings(r.Warnings),
		PassedChecks: r.PassedCount,
		Compliant:    r.Compliant(),
	}
}

func toStrings(list []findings.Finding) []string {
	out := make([]string, 0, len(list))
	for _, f := range list {
		out = append(out, f.String())
	}
	return out
}
