package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineFileFullPath(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "report.json")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0644))

	tests := []struct {
		name         string
		inputPath    string
		expectFile   string
		expectFolder string
	}{
		{"existing directory", tmpDir, filepath.Join(tmpDir, "mobileaudit-report.sarif"), tmpDir},
		{"existing file", existing, existing, tmpDir},
		{"missing path without extension", filepath.Join(tmpDir, "reports"), filepath.Join(tmpDir, "reports", "mobileaudit-report.sarif"), filepath.Join(tmpDir, "reports")},
		{"missing file with extension", filepath.Join(tmpDir, "out", "audit.txt"), filepath.Join(tmpDir, "out", "audit.txt"), filepath.Join(tmpDir, "out")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, folder, err := DetermineFileFullPath(tt.inputPath, "mobileaudit-report.sarif")
			require.NoError(t, err)
			assert.Equal(t, tt.expectFile, file)
			assert.Equal(t, tt.expectFolder, folder)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/project")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "project"), expanded)

	expanded, err = ExpandPath("./project")
	require.NoError(t, err)
	assert.Equal(t, "./project", expanded)
}

func TestValidateTarget(t *testing.T) {
	dir := t.TempDir()
	got, err := ValidateTarget(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	_, err = ValidateTarget(filepath.Join(dir, "missing"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestWriteReportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))

	err := WriteReportFile(path, func(w io.Writer) error {
		_, err := fmt.Fprint(w, "STATUS: PASS\n")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "STATUS: PASS\n", string(data))

	err = WriteReportFile(path, func(io.Writer) error { return errors.New("render failed") })
	assert.ErrorContains(t, err, "render failed")
}

func TestCreateFolderIfNotExists(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, CreateFolderIfNotExists(folder))
	info, err := os.Stat(folder)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.NoError(t, CreateFolderIfNotExists(folder))
}
