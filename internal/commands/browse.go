package commands

import (
	"log/slog"

	"github.com/dastanaron/bookmarkparser/internal/parser"
	"github.com/dastanaron/bookmarkparser/internal/ui"
)

// BrowseCommand opens the interactive tree browser for a bookmark file
type BrowseCommand struct {
	logger *slog.Logger
}

// NewBrowseCommand creates a new browse command
func NewBrowseCommand(logger *slog.Logger) *BrowseCommand {
	return &BrowseCommand{logger: logger}
}

// Execute parses filePath and runs the browser on the tree under directory
func (c *BrowseCommand) Execute(filePath, directory string, showName bool) error {
	doc, err := parser.ParseFile(filePath, parser.WithLogger(c.logger))
	if err != nil {
		return err
	}

	tree, err := doc.ExportAll(directory)
	if err != nil {
		return err
	}

	title := directory
	if title == "" {
		title = "Root"
	}
	return ui.NewApp(title, tree, showName).Run()
}
