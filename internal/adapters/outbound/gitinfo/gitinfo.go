package gitinfo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Inspector implements domain.RepoInspector using go-git. Reports are
// stamped with the commit hash of the tree being validated when it sits
// inside a repository; everything here is best-effort.
type Inspector struct{}

func New() *Inspector {
	return &Inspector{}
}

// CommitHash returns the HEAD commit hash of the repository containing
// path. It walks upward so that a file or subdirectory inside a work
// tree still resolves.
func (i *Inspector) CommitHash(path string) (string, error) {
	dir := path
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		dir = filepath.Dir(path)
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
