// Package gitfiles selects files from the enclosing git worktree for
// export runs that only want uncommitted work.
package gitfiles

import (
	"fmt"
	"path/filepath"
	"sort"

	git "github.com/go-git/go-git/v5"
)

// Changed returns paths changed since the last commit: staged, unstaged and
// untracked files, relative to the repository root. Deleted files are left
// out since there is nothing to export. When extensions is non-empty only
// matching files are returned. The result is sorted and duplicate free.
func Changed(root string, extensions []string) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("worktree status: %w", err)
	}

	var files []string
	for file, st := range status {
		if st.Worktree == git.Unmodified && st.Staging == git.Unmodified {
			continue
		}
		if st.Worktree == git.Deleted || st.Staging == git.Deleted {
			continue
		}
		if !matchesExt(file, extensions) {
			continue
		}
		files = append(files, file)
	}
	sort.Strings(files)
	return files, nil
}

func matchesExt(file string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := filepath.Ext(file)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
