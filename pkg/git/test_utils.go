package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TestRepoSpec describes a repository created by SetupTestRepo.
type TestRepoSpec struct {
	// Files maps a slash-separated path to its content.
	Files map[string]string
	// Tags are lightweight tags placed on the single commit.
	Tags []string
	// Dir is where the repository is created. Defaults to a fresh temporary directory.
	Dir string
}

// SetupTestRepo creates a temporary git repository with one commit holding the
// given files, tagged with the given tags. A default directory is removed when
// the test ends.
func SetupTestRepo(t *testing.T, spec TestRepoSpec) string {
	t.Helper()

	dir := spec.Dir
	if dir == "" {
		dir = t.TempDir()
	}

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repository: %v", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to open worktree: %v", err)
	}

	files := spec.Files
	if len(files) == 0 {
		files = map[string]string{"README.md": "# Test Repository\n"}
	}

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
		if _, err := worktree.Add(name); err != nil {
			t.Fatalf("Failed to stage %s: %v", name, err)
		}
	}

	hash, err := worktree.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Failed to create initial commit: %v", err)
	}

	for _, tag := range spec.Tags {
		if _, err := repo.CreateTag(tag, hash, nil); err != nil {
			t.Fatalf("Failed to create tag %s: %v", tag, err)
		}
	}

	return dir
}
