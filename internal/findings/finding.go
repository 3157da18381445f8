package findings

import "fmt"

// Severity classifies a finding as blocking or advisory.
type Severity int

const (
	// SeverityIssue marks a correctness or critical-risk defect. Any issue fails the audit.
	SeverityIssue Severity = iota
	// SeverityWarning marks an advisory best-practice deviation.
	SeverityWarning
)

// String returns the lower-case name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityIssue:
		return "issue"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Finding is a single rule violation reported for one source file.
type Finding struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Category string   `json:"category"`
	File     string   `json:"file"`
	Path     string   `json:"path,omitempty"`
	Message  string   `json:"message"`
}

// String renders the finding the way reports list it: "[Category] file: message".
func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s: %s", f.Category, f.File, f.Message)
}

// IsIssue reports whether the finding blocks compliance.
func (f Finding) IsIssue() bool {
	return f.Severity == SeverityIssue
}

// NewIssue creates an issue-severity finding.
func NewIssue(ruleID, category, file, message string) Finding {
	return Finding{
		RuleID:   ruleID,
		Severity: SeverityIssue,
		Category: category,
		File:     file,
		Message:  message,
	}
}

// NewWarning creates a warning-severity finding.
func NewWarning(ruleID, category, file, message string) Finding {
	return Finding{
		RuleID:   ruleID,
		Severity: SeverityWarning,
		Category: category,
		File:     file,
		Message:  message,
	}
}
