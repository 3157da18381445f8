package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/mobile-audit/cmd/audit"
	"github.com/scan-io-git/mobile-audit/pkg/shared/errors"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootOptions = audit.RunOptionsAudit{}
	cfgFile = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootDelegatesPathToAudit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.dart"),
		[]byte("import 'package:flutter/material.dart';\nfinal size = 20.0;\n"), 0o644))

	out, err := executeRoot(t, dir, "--json")
	require.NoError(t, err)

	var snapshot map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &snapshot))
	assert.Equal(t, float64(1), snapshot["files_checked"])
	assert.Equal(t, true, snapshot["compliant"])
}

func TestRootNonCompliantExitCode(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "App.tsx"),
		[]byte("import 'react-native';\nconst s = { width: 10 };\n"), 0o644))

	out, err := executeRoot(t, "audit", dir)
	require.Error(t, err)
	assert.True(t, errors.IsReported(err))
	assert.Equal(t, 1, errors.ExitCode(err))
	assert.Contains(t, out, "STATUS: FAIL")
}

func TestRootWithoutPathFails(t *testing.T) {
	_, err := executeRoot(t)
	require.Error(t, err)
	assert.Equal(t, 1, errors.ExitCode(err))
}

func TestRootInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("audit:\n  threads: 500\n"), 0o644))

	_, err := executeRoot(t, "--config", path, t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, "threads must be between")
}
