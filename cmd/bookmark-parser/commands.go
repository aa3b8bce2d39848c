package main

import (
	"errors"

	"github.com/dastanaron/bookmarkparser/internal/commands"
	"github.com/dastanaron/bookmarkparser/internal/output"
	"github.com/dastanaron/bookmarkparser/internal/parser"
	"github.com/dastanaron/bookmarkparser/internal/service"
)

// options resolves flags against the configuration.
func (f *ViewFlags) options(deps *Dependencies) (commands.ExportOptions, error) {
	format := f.Format
	if format == "" {
		format = deps.Config.Format
	}
	exportFormat, err := parser.ParseFormat(format)
	if err != nil {
		return commands.ExportOptions{}, err
	}

	outputFormat, err := output.ParseFormat(f.Output)
	if err != nil {
		return commands.ExportOptions{}, err
	}

	showName := deps.Config.ShowBookmarkName
	switch {
	case f.ShowName:
		showName = true
	case f.ShowURL:
		showName = false
	}

	return commands.ExportOptions{
		Format:    exportFormat,
		Directory: f.Directory,
		ShowName:  showName,
		Output:    outputFormat,
		Query:     f.Query,
	}, nil
}

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	opts, err := c.options(deps)
	if err != nil {
		return err
	}
	return commands.NewExportCommand(deps.Stdout, deps.Logger).Execute(c.File, opts)
}

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	svc := service.NewImportService(deps.Repo, deps.Logger)
	return commands.NewImportCommand(deps.Stdout, svc).Execute(c.File, c.Directory)
}

// Run executes the imports command.
func (c *ImportsCmd) Run(deps *Dependencies) error {
	return commands.NewImportsCommand(deps.Stdout, service.NewTreeService(deps.Repo)).Execute()
}

// Run executes the stored command.
func (c *StoredCmd) Run(deps *Dependencies) error {
	opts, err := c.options(deps)
	if err != nil {
		return err
	}
	return commands.NewStoredCommand(deps.Stdout, service.NewTreeService(deps.Repo)).Execute(c.ID, opts)
}

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	if !output.IsTerminal(deps.Stdout) {
		return errors.New("browse requires an interactive terminal")
	}
	showName := deps.Config.ShowBookmarkName && !c.ShowURL
	return commands.NewBrowseCommand(deps.Logger).Execute(c.File, c.Directory, showName)
}
