package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/scan-io-git/mobile-audit/internal/auditor"
)

// Limits on how many findings the text report lists.
const (
	maxTextIssues   = 10
	maxTextWarnings = 15
)

// WriteText renders the human-readable summary.
func WriteText(w io.Writer, snapshot auditor.Snapshot) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\n[MOBILE AUDIT] %d mobile files checked\n", snapshot.FilesChecked)
	fmt.Fprintln(bw, strings.Repeat("-", 50))
	writeSection(bw, "[!] ISSUES", snapshot.Issues, maxTextIssues)
	writeSection(bw, "[*] WARNINGS", snapshot.Warnings, maxTextWarnings)
	fmt.Fprintf(bw, "[+] PASSED CHECKS: %d\n", snapshot.PassedChecks)

	status := "FAIL"
	if snapshot.Compliant {
		status = "PASS"
	}
	fmt.Fprintf(bw, "STATUS: %s\n", status)

	return bw.Flush()
}

func writeSection(w io.Writer, title string, messages []string, limit int) {
	if len(messages) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", title, len(messages))
	if len(messages) > limit {
		messages = messages[:limit]
	}
	for _, m := range messages {
		fmt.Fprintf(w, "  - %s\n", m)
	}
}
