package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// RepositoryMetadata describes the git checkout an audit target lives in.
type RepositoryMetadata struct {
	RepoRootFolder string
	Subfolder      string // Target path relative to RepoRootFolder, slash separated
	BranchName     string
	CommitHash     string
	RemoteURL      string // First URL of the "origin" remote, without ".git"
	RepositoryURL  string // Browsable https form of RemoteURL
}

// CollectRepositoryMetadata collects branch, commit and origin remote for the
// repository containing target. target may be a file or a directory.
func CollectRepositoryMetadata(target string) (*RepositoryMetadata, error) {
	if target == "" {
		return nil, fmt.Errorf("target path is not set")
	}

	if absTarget, err := filepath.Abs(target); err == nil {
		target = absTarget
	}
	folder := target
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		folder = filepath.Dir(target)
	}

	repoRootFolder, err := findGitRepositoryPath(folder)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpen(repoRootFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	md := &RepositoryMetadata{
		RepoRootFolder: filepath.Clean(repoRootFolder),
	}
	if rel, err := filepath.Rel(repoRootFolder, target); err == nil && rel != "." {
		md.Subfolder = filepath.ToSlash(rel)
	}

	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			md.BranchName = head.Name().Short()
		}
		md.CommitHash = head.Hash().String()
	}

	if remote, err := repo.Remote("origin"); err == nil {
		if cfg := remote.Config(); cfg != nil && len(cfg.URLs) > 0 {
			md.RemoteURL = strings.TrimSuffix(cfg.URLs[0], ".git")
			md.RepositoryURL = webRepositoryURL(cfg.URLs[0])
		}
	}

	return md, nil
}
