package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/scan-io-git/mobile-audit/internal/auditor"
)

// WriteJSON renders the snapshot as indented JSON followed by a newline.
func WriteJSON(w io.Writer, snapshot auditor.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
