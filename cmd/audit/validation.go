package audit

import (
	"fmt"

	"github.com/scan-io-git/mobile-audit/internal/config"
	"github.com/scan-io-git/mobile-audit/internal/report"
	"github.com/scan-io-git/mobile-audit/pkg/shared/files"
)

// validateAuditArgs validates the arguments provided to the audit command
// and returns the expanded target path.
func validateAuditArgs(options *RunOptionsAudit, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("a target path must be specified")
	}
	if len(args) > 1 {
		return "", fmt.Errorf("only one target path can be audited at a time, got %d", len(args))
	}

	if options.JSON && options.Format != "" && options.Format != report.FormatJSON {
		return "", fmt.Errorf("the 'json' flag conflicts with 'format' %q", options.Format)
	}
	if options.Format != "" {
		if err := config.ValidateFormat(options.Format); err != nil {
			return "", err
		}
	}
	if options.Threads != 0 {
		if err := config.ValidateThreads(options.Threads); err != nil {
			return "", fmt.Errorf("the 'threads' flag is invalid: %w", err)
		}
	}

	return files.ValidateTarget(args[0])
}
