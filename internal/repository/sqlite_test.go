package repository_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dastanaron/bookmarkparser/internal/models"
	"github.com/dastanaron/bookmarkparser/internal/repository"
)

func newRepo(t *testing.T) *repository.SQLiteRepository {
	t.Helper()
	repo, err := repository.NewSQLiteRepository(filepath.Join(t.TempDir(), "bookmarks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func sampleTree() []models.Node {
	return []models.Node{
		models.Folder{Name: "Work", Items: []models.Node{
			models.Bookmark{Name: "Mail", URL: "https://mail.example.com"},
			models.Folder{Name: "Empty", Items: []models.Node{}},
			models.Bookmark{Name: "Wiki", URL: "https://wiki.example.com"},
		}},
		models.Bookmark{Name: "Home", URL: "https://example.com"},
		models.Folder{Name: "Work", Items: []models.Node{
			models.Bookmark{Name: "Duplicate name", URL: ""},
		}},
	}
}

func TestImportRepo_Create(t *testing.T) {
	t.Parallel()

	t.Run("stores tree and reloads it in order", func(t *testing.T) {
		t.Parallel()

		repo := newRepo(t)
		imp, err := repo.Imports().Create("bookmarks.html", "", sampleTree())

		require.NoError(t, err)
		assert.NotEmpty(t, imp.ID)
		assert.Equal(t, 3, imp.Folders)
		assert.Equal(t, 4, imp.Bookmarks)

		tree, err := repo.Imports().LoadTree(imp.ID)
		require.NoError(t, err)
		assert.Equal(t, sampleTree(), tree)
	})

	t.Run("stores empty tree", func(t *testing.T) {
		t.Parallel()

		repo := newRepo(t)
		imp, err := repo.Imports().Create("empty.html", "Work", []models.Node{})
		require.NoError(t, err)

		tree, err := repo.Imports().LoadTree(imp.ID)
		require.NoError(t, err)
		assert.Equal(t, []models.Node{}, tree)

		got, err := repo.Imports().GetByID(imp.ID)
		require.NoError(t, err)
		assert.Equal(t, "Work", got.Directory)
		assert.Equal(t, "empty.html", got.Source)
		assert.Zero(t, got.Folders)
		assert.Zero(t, got.Bookmarks)
	})
}

func TestImportRepo_ListAndLatest(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)

	_, err := repo.Imports().Latest()
	assert.True(t, errors.Is(err, repository.ErrImportNotFound))

	first, err := repo.Imports().Create("a.html", "", sampleTree())
	require.NoError(t, err)
	second, err := repo.Imports().Create("b.html", "", []models.Node{})
	require.NoError(t, err)

	latest, err := repo.Imports().Latest()
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)

	all, err := repo.Imports().List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.Equal(t, 4, all[1].Bookmarks)
}

func TestImportRepo_Delete(t *testing.T) {
	t.Parallel()

	repo := newRepo(t)
	keep, err := repo.Imports().Create("keep.html", "", sampleTree())
	require.NoError(t, err)
	drop, err := repo.Imports().Create("drop.html", "", sampleTree())
	require.NoError(t, err)

	require.NoError(t, repo.Imports().Delete(drop.ID))

	_, err = repo.Imports().GetByID(drop.ID)
	assert.True(t, errors.Is(err, repository.ErrImportNotFound))
	_, err = repo.Imports().LoadTree(drop.ID)
	assert.True(t, errors.Is(err, repository.ErrImportNotFound))

	tree, err := repo.Imports().LoadTree(keep.ID)
	require.NoError(t, err)
	assert.Equal(t, sampleTree(), tree)

	err = repo.Imports().Delete(drop.ID)
	assert.True(t, errors.Is(err, repository.ErrImportNotFound))
}
