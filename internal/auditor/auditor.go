// Package auditor runs the rule catalog over source files and folds the
// outcomes into a single Result.
package auditor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/text/encoding/unicode"

	"github.com/scan-io-git/mobile-audit/internal/detector"
	"github.com/scan-io-git/mobile-audit/internal/rules"
)

// Auditor evaluates a fixed rule catalog against files.
type Auditor struct {
	rules          []rules.Rule // Catalog in evaluation order
	concurrentJobs int          // Maximum number of files audited at once
	logger         hclog.Logger // Logger for skip and progress messages
}

// New creates an Auditor over the full catalog.
func New(concurrentJobs int, logger hclog.Logger) *Auditor {
	return NewWithRules(rules.All(), concurrentJobs, logger)
}

// NewWithRules creates an Auditor over a custom catalog.
func NewWithRules(catalog []rules.Rule, concurrentJobs int, logger hclog.Logger) *Auditor {
	if concurrentJobs < 1 {
		concurrentJobs = 1
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Auditor{
		rules:          catalog,
		concurrentJobs: concurrentJobs,
		logger:         logger,
	}
}

// AuditFile reads path and folds its findings into result. Unreadable files
// are skipped without affecting result.
func (a *Auditor) AuditFile(path string, result *Result) {
	raw, err := os.ReadFile(path)
	if err != nil {
		a.logger.Debug("skipping unreadable file", "path", path, "error", err)
		return
	}
	a.AuditContent(path, decode(raw), result)
}

// AuditContent audits already-loaded content as if it were read from path.
// Files with no recognized mobile framework are not counted.
func (a *Auditor) AuditContent(path, content string, result *Result) {
	flags := detector.Detect(content)
	if !flags.InScope() {
		a.logger.Trace("skipping non-mobile file", "path", path)
		return
	}
	result.FilesChecked++

	in := &rules.Input{
		File:    filepath.Base(path),
		Content: content,
		Flags:   flags,
	}
	for _, rule := range a.rules {
		if !rule.Applies(flags) {
			continue
		}
		outcome := rule.Evaluate(in)
		for i := range outcome.Findings {
			outcome.Findings[i].Path = path
		}
		result.Add(outcome)
	}
	a.logger.Trace("file audited", "path", path, "frameworks", flags.String())
}

// decode converts raw bytes to text, replacing invalid UTF-8 sequences with
// U+FFFD.
func decode(raw []byte) string {
	text, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "\uFFFD")
	}
	return string(text)
}
