package git

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// findGitRepositoryPath walks up from folder to the first directory that
// opens as a git repository.
func findGitRepositoryPath(folder string) (string, error) {
	if folder == "" {
		return "", fmt.Errorf("folder is not set")
	}

	for {
		if _, err := git.PlainOpen(folder); err == nil {
			return folder, nil
		}

		parent := filepath.Dir(folder)
		if parent == folder {
			break
		}
		folder = parent
	}

	return "", fmt.Errorf("%w: no repository above target", ErrNotRepository)
}
