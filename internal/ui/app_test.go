package ui_test

import (
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dastanaron/bookmarkparser/internal/models"
	"github.com/dastanaron/bookmarkparser/internal/ui"
)

func nodes() []models.Node {
	return []models.Node{
		models.Folder{Name: "Work", Items: []models.Node{
			models.Bookmark{Name: "Mail", URL: "https://mail.example.com"},
			models.Folder{Name: "Docs", Items: []models.Node{
				models.Bookmark{Name: "Go", URL: "https://go.dev"},
			}},
		}},
		models.Folder{Name: "Empty", Items: []models.Node{}},
		models.Bookmark{Name: "Home", URL: "https://example.com"},
	}
}

func texts(children []*tview.TreeNode) []string {
	out := make([]string, 0, len(children))
	for _, c := range children {
		out = append(out, c.GetText())
	}
	return out
}

func TestBuildTree(t *testing.T) {
	t.Parallel()

	t.Run("mirrors the bookmark tree", func(t *testing.T) {
		t.Parallel()

		root := ui.BuildTree("Root", nodes(), true, "")

		assert.Equal(t, "Root", root.GetText())
		assert.Equal(t, []string{"Work", "Empty", "Home"}, texts(root.GetChildren()))
		work := root.GetChildren()[0]
		assert.Equal(t, []string{"Mail", "Docs"}, texts(work.GetChildren()))
		_, ok := work.GetReference().(models.Folder)
		assert.True(t, ok)
	})

	t.Run("shows urls when names are disabled", func(t *testing.T) {
		t.Parallel()

		root := ui.BuildTree("Root", nodes(), false, "")

		assert.Equal(t, "https://example.com", root.GetChildren()[2].GetText())
	})

	t.Run("filters by bookmark url and keeps parent folders", func(t *testing.T) {
		t.Parallel()

		root := ui.BuildTree("Root", nodes(), true, "GO.DEV")

		require.Equal(t, []string{"Work"}, texts(root.GetChildren()))
		work := root.GetChildren()[0]
		require.Equal(t, []string{"Docs"}, texts(work.GetChildren()))
		assert.Equal(t, []string{"Go"}, texts(work.GetChildren()[0].GetChildren()))
	})

	t.Run("keeps whole folder when its name matches", func(t *testing.T) {
		t.Parallel()

		root := ui.BuildTree("Root", nodes(), true, "work")

		require.Equal(t, []string{"Work"}, texts(root.GetChildren()))
		assert.Equal(t, []string{"Mail", "Docs"}, texts(root.GetChildren()[0].GetChildren()))
	})
}
