package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/dastanaron/bookmarkparser/internal/config"
	"github.com/dastanaron/bookmarkparser/internal/repository"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config
	Logger *slog.Logger
	Repo   repository.Repository
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string `help:"Config file (default: ~/.bookmarks/config.yaml)" placeholder:"PATH"`
	LogLevel string `name:"log-level" help:"Log level (DEBUG|INFO|WARNING|ERROR)"`
	DB       string `name:"db" help:"Database file (default: ~/.bookmarks/bookmarks.db)" placeholder:"PATH"`

	Export  ExportCmd  `cmd:"" help:"Print the tree, folders or bookmark list of a bookmark file"`
	Import  ImportCmd  `cmd:"" help:"Store the tree of a bookmark file in the database"`
	Imports ImportsCmd `cmd:"" help:"List stored imports"`
	Stored  StoredCmd  `cmd:"" help:"Print a stored tree"`
	Browse  BrowseCmd  `cmd:"" help:"Browse a bookmark file interactively"`
}

// ViewFlags are shared by commands printing a tree.
type ViewFlags struct {
	Format    string `help:"Export format: all, directory or bookmarks (default from config)"`
	Directory string `short:"d" help:"Target directory (default: root)"`
	ShowName  bool   `name:"show-name" xor:"display" help:"Display bookmark names"`
	ShowURL   bool   `name:"show-url" xor:"display" help:"Display bookmark URLs"`
	Output    string `short:"o" default:"text" enum:"text,json,yaml" help:"Output format"`
	Query     string `short:"q" help:"jq expression to filter JSON output"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	File string `short:"f" required:"" help:"Path to bookmark HTML file"`
	ViewFlags
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File      string `short:"f" required:"" help:"Path to bookmark HTML file"`
	Directory string `short:"d" help:"Target directory (default: root)"`
}

// ImportsCmd is the "imports" subcommand.
type ImportsCmd struct{}

// StoredCmd is the "stored" subcommand.
type StoredCmd struct {
	ID string `help:"Import ID (default: latest import)"`
	ViewFlags
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	File      string `short:"f" required:"" help:"Path to bookmark HTML file"`
	Directory string `short:"d" help:"Target directory (default: root)"`
	ShowURL   bool   `name:"show-url" help:"Display bookmark URLs instead of names"`
}
