package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scan-io-git/mobile-audit/internal/auditor"
	"github.com/scan-io-git/mobile-audit/internal/findings"
	"github.com/scan-io-git/mobile-audit/internal/git"
	"github.com/scan-io-git/mobile-audit/internal/rules"
)

const (
	toolName           = "mobileaudit"
	toolInformationURI = "https://github.com/scan-io-git/scan-io"
)

// WriteSARIF renders every finding as a SARIF 2.1.0 result in a single run.
// Rules that never fired are not listed in the tool driver.
func WriteSARIF(w io.Writer, result *auditor.Result, opts Options) error {
	report, err := BuildSARIF(result, opts)
	if err != nil {
		return err
	}
	if err := report.PrettyWrite(w); err != nil {
		return fmt.Errorf("failed to write SARIF report: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write SARIF report: %w", err)
	}
	return nil
}

// BuildSARIF converts result into a SARIF report.
func BuildSARIF(result *auditor.Result, opts Options) (*sarif.Report, error) {
	if result == nil {
		return nil, fmt.Errorf("result is nil")
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}

	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolInformationURI)
	if opts.ToolVersion != "" {
		run.Tool.Driver.WithVersion(opts.ToolVersion)
	}

	guid := opts.RunGUID
	if guid == "" {
		guid = uuid.New().String()
	}
	run.WithAutomationDetails(sarif.NewRunAutomationDetails().WithGUID(guid))

	if provenance := versionControlProvenance(opts); provenance != nil {
		run.AddVersionControlProvenance(provenance)
	}

	for _, f := range result.Findings() {
		level := toSarifLevel(f.Severity)
		rule := run.AddRule(f.RuleID).
			WithDescription(ruleDescription(f)).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: level,
			}).
			WithProperties(sarif.Properties{"category": f.Category})

		uri := f.Path
		if uri == "" {
			uri = f.File
		}
		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(filepath.ToSlash(uri))),
		)

		run.AddResult(sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(f.Message)).
			WithLevel(level).
			WithLocations([]*sarif.Location{location}))
	}

	run.Properties = sarif.Properties{
		"files_checked": result.FilesChecked,
		"passed_checks": result.PassedCount,
		"compliant":     result.Compliant(),
	}
	report.AddRun(run)

	return report, nil
}

// versionControlProvenance describes the repository holding the target, or
// nil when the target is not inside a git checkout with an origin remote.
func versionControlProvenance(opts Options) *sarif.VersionControlDetails {
	if opts.Target == "" {
		return nil
	}
	md, err := git.CollectRepositoryMetadata(opts.Target)
	if err != nil {
		opts.Logger.Debug("no repository provenance for target", "target", opts.Target, "reason", err)
		return nil
	}
	uri := md.RepositoryURL
	if uri == "" {
		uri = md.RemoteURL
	}
	if uri == "" {
		return nil
	}

	details := sarif.NewVersionControlDetails().WithRepositoryURI(uri)
	if md.CommitHash != "" {
		details.WithRevisionID(md.CommitHash)
	}
	if md.BranchName != "" {
		details.WithBranch(md.BranchName)
	}
	return details
}

func ruleDescription(f findings.Finding) string {
	if rule, ok := rules.Lookup(f.RuleID); ok {
		return rule.Description
	}
	return f.Category
}

func toSarifLevel(severity findings.Severity) string {
	switch severity {
	case findings.SeverityIssue:
		return "error"
	case findings.SeverityWarning:
		return "warning"
	default:
		return "none"
	}
}
