package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dastanaron/bookmarkparser/internal/output"
	"github.com/dastanaron/bookmarkparser/internal/parser"
)

// ExportOptions selects what an export prints and how
type ExportOptions struct {
	Format    parser.Format
	Directory string // empty for the root list
	ShowName  bool
	Output    output.Format
	Query     string
}

// ExportCommand handles printing the tree of a bookmark file
type ExportCommand struct {
	stdout io.Writer
	logger *slog.Logger
}

// NewExportCommand creates a new export command
func NewExportCommand(stdout io.Writer, logger *slog.Logger) *ExportCommand {
	return &ExportCommand{stdout: stdout, logger: logger}
}

// Execute parses filePath and prints the requested view
func (c *ExportCommand) Execute(filePath string, opts ExportOptions) error {
	doc, err := parser.ParseFile(filePath, parser.WithLogger(c.logger))
	if err != nil {
		return err
	}

	res, err := doc.Export(opts.Format, opts.Directory, opts.ShowName)
	if err != nil {
		return err
	}
	c.logger.Debug("exported bookmarks", "file", filePath, "format", opts.Format, "directory", opts.Directory)

	return printResult(c.stdout, res, opts)
}

// printResult prints res, preceded by a short header in text mode
func printResult(w io.Writer, res *parser.Result, opts ExportOptions) error {
	if opts.Output == output.FormatText {
		target := opts.Directory
		if target == "" {
			target = "Root"
		}
		fmt.Fprintf(w, "Target Directory: %s\n", target)
		fmt.Fprintln(w, "Parsing Results:")
	}

	return output.NewPrinter(w, opts.Output).
		WithQuery(opts.Query).
		WithShowName(opts.ShowName).
		Print(res)
}
