package auditor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/scan-io-git/mobile-audit/pkg/shared"
)

// skipDirs are directory names never descended into.
var skipDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	"dist":         {},
	"build":        {},
	".next":        {},
	"ios":          {},
	"android":      {},
	".idea":        {},
}

// sourceExtensions are the file extensions audited during a directory walk.
var sourceExtensions = map[string]struct{}{
	".tsx":  {},
	".ts":   {},
	".jsx":  {},
	".js":   {},
	".dart": {},
}

// CollectFiles returns the files to audit under root in lexical walk order.
// A root that is a regular file is returned as is, regardless of extension.
// Unreadable subtrees are logged and skipped.
func (a *Auditor) CollectFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat target path %q: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			a.logger.Debug("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := sourceExtensions[filepath.Ext(path)]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", root, err)
	}
	return files, nil
}

// AuditPath audits root (a file or a directory tree) and returns the merged
// result. Findings appear in file discovery order whatever the job count.
func (a *Auditor) AuditPath(root string) (*Result, error) {
	files, err := a.CollectFiles(root)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("files collected", "target", root, "count", len(files), "jobs", a.concurrentJobs)

	partials := make([]*Result, len(files))
	shared.ForEveryStringWithBoundedGoroutines(a.concurrentJobs, files, func(i int, path string) {
		partial := NewResult()
		a.AuditFile(path, partial)
		partials[i] = partial
	})

	result := NewResult()
	for _, partial := range partials {
		result.Merge(partial)
	}
	a.logger.Debug("audit finished",
		"files_checked", result.FilesChecked,
		"issues", len(result.Issues),
		"warnings", len(result.Warnings))
	return result, nil
}
