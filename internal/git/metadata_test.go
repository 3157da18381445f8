package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepository(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()

	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	src := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "App.tsx"), []byte("import 'react-native';\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("src/App.tsx")
	require.NoError(t, err)
	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "dev", Email: "dev@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	_, err = repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://github.com/acme/mobile-app.git"},
	})
	require.NoError(t, err)

	return root, hash.String()
}

func TestCollectRepositoryMetadata(t *testing.T) {
	root, commit := initRepository(t)

	md, err := CollectRepositoryMetadata(filepath.Join(root, "src"))
	require.NoError(t, err)

	assert.Equal(t, "src", md.Subfolder)
	assert.Equal(t, commit, md.CommitHash)
	assert.Equal(t, "https://github.com/acme/mobile-app", md.RemoteURL)
	assert.Equal(t, "https://github.com/acme/mobile-app", md.RepositoryURL)
	assert.NotEmpty(t, md.BranchName)
}

func TestCollectRepositoryMetadataForFile(t *testing.T) {
	root, _ := initRepository(t)

	md, err := CollectRepositoryMetadata(filepath.Join(root, "src", "App.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "src/App.tsx", md.Subfolder)
}

func TestCollectRepositoryMetadataOutsideRepository(t *testing.T) {
	_, err := CollectRepositoryMetadata(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotRepository))
}

func TestCollectRepositoryMetadataEmptyTarget(t *testing.T) {
	_, err := CollectRepositoryMetadata("")
	assert.Error(t, err)
}

func TestWebRepositoryURL(t *testing.T) {
	tests := []struct {
		remote string
		want   string
	}{
		{"git@github.com:acme/mobile-app.git", "https://github.com/acme/mobile-app"},
		{"https://github.com/acme/mobile-app.git", "https://github.com/acme/mobile-app"},
		{"  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			assert.Equal(t, tt.want, webRepositoryURL(tt.remote))
		})
	}
}
