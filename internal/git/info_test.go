package git

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with one committed config file and
// returns its root.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.conf"), []byte("count:3\n"), 0o644))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("app.conf")
	require.NoError(t, err)

	_, err = worktree.Commit("add config", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com"},
	})
	require.NoError(t, err)

	return dir
}

func TestDescribe(t *testing.T) {
	t.Run("clean repository", func(t *testing.T) {
		dir := initRepo(t)

		prov, err := Describe(dir)
		require.NoError(t, err)
		assert.Len(t, prov.CommitHash, 40)
		assert.Equal(t, "master", prov.Branch)
		assert.False(t, prov.Dirty)
	})

	t.Run("dirty worktree is flagged", func(t *testing.T) {
		dir := initRepo(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "app.conf"), []byte("count:4\n"), 0o644))

		prov, err := Describe(dir)
		require.NoError(t, err)
		assert.True(t, prov.Dirty)
	})

	t.Run("nested config path resolves the enclosing repository", func(t *testing.T) {
		dir := initRepo(t)
		nested := filepath.Join(dir, "configs", "prod")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		prov, err := Describe(nested)
		require.NoError(t, err)
		assert.Len(t, prov.CommitHash, 40)
	})

	t.Run("path outside any repository", func(t *testing.T) {
		_, err := Describe(t.TempDir())
		require.Error(t, err)
	})
}

func TestSummary(t *testing.T) {
	prov := &Provenance{
		CommitHash: "0123456789abcdef0123456789abcdef01234567",
		Branch:     "main",
	}
	assert.Equal(t, "0123456 (main)", prov.Summary())

	prov.Dirty = true
	assert.Equal(t, "0123456 (main, dirty)", prov.Summary())
}
