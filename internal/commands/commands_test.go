package commands_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dastanaron/bookmarkparser/internal/commands"
	"github.com/dastanaron/bookmarkparser/internal/output"
	"github.com/dastanaron/bookmarkparser/internal/parser"
	"github.com/dastanaron/bookmarkparser/internal/repository"
	"github.com/dastanaron/bookmarkparser/internal/service"
)

const bookmarksHTML = `<DL><p>
<DT><H3>Work</H3>
<DL><p>
  <DT><A HREF="https://mail.example.com">Mail</A>
</DL><p>
<DT><H3>Empty</H3>
</DL><p>`

func writeFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.html")
	require.NoError(t, os.WriteFile(path, []byte(bookmarksHTML), 0o600))
	return path
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestExportCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("prints header and folder tree", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := commands.NewExportCommand(&buf, discard()).Execute(writeFile(t), commands.ExportOptions{
			Format: parser.FormatDirectory,
			Output: output.FormatText,
		})

		require.NoError(t, err)
		assert.Equal(t, "Target Directory: Root\nParsing Results:\nWork\nEmpty\n", buf.String())
	})

	t.Run("omits header for yaml", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := commands.NewExportCommand(&buf, discard()).Execute(writeFile(t), commands.ExportOptions{
			Format:    parser.FormatBookmarks,
			Directory: "Work",
			ShowName:  true,
			Output:    output.FormatYAML,
		})

		require.NoError(t, err)
		assert.Equal(t, "- Mail\n", buf.String())
	})

	t.Run("returns empty folder contents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := commands.NewExportCommand(&buf, discard()).Execute(writeFile(t), commands.ExportOptions{
			Format:    parser.FormatAll,
			Directory: "Empty",
			Output:    output.FormatJSON,
		})

		require.NoError(t, err)
		assert.JSONEq(t, "[]", buf.String())
	})
}

func TestImportCommand_Execute(t *testing.T) {
	t.Parallel()

	repo, err := repository.NewSQLiteRepository(filepath.Join(t.TempDir(), "bookmarks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	var buf bytes.Buffer
	importSvc := service.NewImportService(repo, discard())
	require.NoError(t, commands.NewImportCommand(&buf, importSvc).Execute(writeFile(t), ""))
	assert.Contains(t, buf.String(), "Imported 1 bookmarks in 2 folders.")

	buf.Reset()
	treeSvc := service.NewTreeService(repo)
	err = commands.NewStoredCommand(&buf, treeSvc).Execute("", commands.ExportOptions{
		Format:   parser.FormatAll,
		ShowName: false,
		Output:   output.FormatText,
	})
	require.NoError(t, err)
	assert.Equal(t, "Target Directory: Root\nParsing Results:\nWork\n  |- https://mail.example.com\nEmpty\n", buf.String())

	buf.Reset()
	require.NoError(t, commands.NewImportsCommand(&buf, treeSvc).Execute())
	assert.Contains(t, buf.String(), "Root")
}
