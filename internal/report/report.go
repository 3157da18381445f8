// Package report renders an audit Result as text, JSON or SARIF.
package report

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/mobile-audit/internal/auditor"
)

// Supported report formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

// Options carries run context that only some renderers use.
type Options struct {
	Target      string       // Audited path, used for repository provenance
	ToolVersion string       // Version reported in the SARIF tool driver
	RunGUID     string       // SARIF automation GUID; generated when empty
	Logger      hclog.Logger // Logger for non-fatal rendering problems
}

// Write renders result to w in the given format.
func Write(w io.Writer, format string, result *auditor.Result, opts Options) error {
	if result == nil {
		return fmt.Errorf("result is nil")
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}

	switch format {
	case FormatText, "":
		return WriteText(w, result.Report())
	case FormatJSON:
		return WriteJSON(w, result.Report())
	case FormatSARIF:
		return WriteSARIF(w, result, opts)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

// Extension returns the file extension conventionally used for format.
func Extension(format string) string {
	switch format {
	case FormatJSON:
		return "json"
	case FormatSARIF:
		return "sarif"
	default:
		return "txt"
	}
}
