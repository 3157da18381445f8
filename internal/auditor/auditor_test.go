package auditor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/mobile-audit/internal/detector"
	"github.com/scan-io-git/mobile-audit/internal/findings"
	"github.com/scan-io-git/mobile-audit/internal/rules"
)

const (
	rnScreen = `import React from 'react';
import { View, FlatList } from 'react-native';

export const Screen = () => (
  <View style={{ width: 20, height: 30 }}>
    <FlatList data={items} renderItem={renderRow} />
  </View>
);
`
	plainModule = `export function add(a, b) { return a + b; }
`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAuditContentSkipsNonMobileFiles(t *testing.T) {
	a := New(1, nil)
	result := NewResult()
	a.AuditContent("util.js", plainModule, result)

	assert.Equal(t, 0, result.FilesChecked)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 0, result.PassedCount)
}

func TestAuditContentOrdersFindingsByCatalog(t *testing.T) {
	a := New(1, nil)
	result := NewResult()
	a.AuditContent("src/Screen.tsx", rnScreen, result)

	require.Equal(t, 1, result.FilesChecked)
	require.GreaterOrEqual(t, len(result.Issues), 3)
	assert.Equal(t, "touch-target-size", result.Issues[0].RuleID)
	assert.Equal(t, "touch-target-size", result.Issues[1].RuleID)
	assert.Equal(t, "list-key-extractor", result.Issues[2].RuleID)
	assert.Equal(t, "Screen.tsx", result.Issues[0].File)
	assert.Equal(t, "src/Screen.tsx", result.Issues[0].Path)
	assert.False(t, result.Compliant())
}

func TestAuditContentWarningsOnlyIsCompliant(t *testing.T) {
	catalog := []rules.Rule{{
		ID:       "always-warn",
		Category: "Test",
		Check: func(in *rules.Input, report *rules.Reporter) {
			report.Warn("advisory")
		},
	}}
	a := NewWithRules(catalog, 1, nil)
	result := NewResult()
	a.AuditContent("App.tsx", "import 'react-native';", result)

	require.Len(t, result.Warnings, 1)
	assert.True(t, result.Compliant())
	assert.Equal(t, findings.SeverityWarning, result.Warnings[0].Severity)
}

func TestAuditContentRespectsFrameworkGate(t *testing.T) {
	var seen []string
	catalog := []rules.Rule{
		{ID: "any", Check: func(in *rules.Input, _ *rules.Reporter) { seen = append(seen, "any") }},
		{ID: "rn", Requires: detector.ReactNative, Check: func(in *rules.Input, _ *rules.Reporter) { seen = append(seen, "rn") }},
	}
	a := NewWithRules(catalog, 1, nil)
	a.AuditContent("main.dart", "import 'package:flutter/material.dart';", NewResult())

	assert.Equal(t, []string{"any"}, seen)
}

func TestAuditFileUnreadable(t *testing.T) {
	a := New(1, nil)
	result := NewResult()
	a.AuditFile(filepath.Join(t.TempDir(), "missing.tsx"), result)

	assert.Equal(t, 0, result.FilesChecked)
}

func TestAuditFileLenientDecoding(t *testing.T) {
	dir := t.TempDir()
	content := append([]byte("import 'react-native';\n// \xff\xfe broken bytes\n"), []byte("width: 20\n")...)
	path := filepath.Join(dir, "Broken.tsx")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	result := NewResult()
	New(1, nil).AuditFile(path, result)

	assert.Equal(t, 1, result.FilesChecked)
	require.NotEmpty(t, result.Issues)
	assert.Equal(t, "touch-target-size", result.Issues[0].RuleID)
}

func TestAuditPathEmptyDirectory(t *testing.T) {
	result, err := New(1, nil).AuditPath(t.TempDir())
	require.NoError(t, err)

	snapshot := result.Report()
	assert.Equal(t, 0, snapshot.FilesChecked)
	assert.Empty(t, snapshot.Issues)
	assert.Empty(t, snapshot.Warnings)
	assert.Equal(t, 0, snapshot.PassedChecks)
	assert.True(t, snapshot.Compliant)
}

func TestAuditPathMissing(t *testing.T) {
	_, err := New(1, nil).AuditPath(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestCollectFilesSkipsDirectoriesAndExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "App.tsx", rnScreen)
	writeFile(t, dir, "lib/main.dart", "import 'package:flutter/material.dart';")
	writeFile(t, dir, "README.md", "react-native")
	writeFile(t, dir, "node_modules/pkg/index.js", rnScreen)
	writeFile(t, dir, "android/app/Main.js", rnScreen)
	writeFile(t, dir, "build/out.js", rnScreen)

	files, err := New(1, nil).CollectFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "App.tsx"),
		filepath.Join(dir, "lib", "main.dart"),
	}, files)
}

func TestCollectFilesSingleFileIgnoresExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.txt", rnScreen)

	files, err := New(1, nil).CollectFiles(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestAuditPathIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := filepath.Join("screens", strings.Repeat("s", i+1)+".tsx")
		writeFile(t, dir, name, rnScreen+strings.Repeat("console.log('x');\n", i))
	}
	writeFile(t, dir, "util.js", plainModule)

	sequential, err := New(1, nil).AuditPath(dir)
	require.NoError(t, err)
	parallel, err := New(8, nil).AuditPath(dir)
	require.NoError(t, err)
	again, err := New(1, nil).AuditPath(dir)
	require.NoError(t, err)

	assert.Equal(t, 12, sequential.FilesChecked)
	assert.Equal(t, sequential.Report(), parallel.Report())
	assert.Equal(t, sequential.Report(), again.Report())
}

func TestResultMerge(t *testing.T) {
	left := NewResult()
	left.FilesChecked = 1
	left.Add(rules.Outcome{
		Findings: []findings.Finding{findings.NewIssue("a", "A", "a.tsx", "first")},
		Passed:   []string{"p"},
	})
	right := NewResult()
	right.FilesChecked = 2
	right.Add(rules.Outcome{
		Findings: []findings.Finding{
			findings.NewWarning("b", "B", "b.tsx", "second"),
			findings.NewIssue("c", "C", "c.tsx", "third"),
		},
	})

	left.Merge(right)
	left.Merge(nil)

	assert.Equal(t, 3, left.FilesChecked)
	assert.Equal(t, 1, left.PassedCount)
	assert.Equal(t, []string{"[A] a.tsx: first", "[C] c.tsx: third"}, left.Report().Issues)
	assert.Equal(t, []string{"[B] b.tsx: second"}, left.Report().Warnings)

	all := left.Findings()
	require.Len(t, all, 3)
	assert.Equal(t, "b", all[2].RuleID)
}
