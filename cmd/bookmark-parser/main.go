package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/dastanaron/bookmarkparser/internal/config"
	"github.com/dastanaron/bookmarkparser/internal/logger"
	"github.com/dastanaron/bookmarkparser/internal/repository"
)

func main() {
	m := NewMain()
	if err := m.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file read when --config is not given.
	ConfigPath string

	// Repository opened for commands working on stored imports.
	Repo repository.Repository
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{ConfigPath: config.DefaultPath()}
}

// Close releases the database, if one was opened.
func (m *Main) Close() error {
	if m.Repo != nil {
		return m.Repo.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	deps := &Dependencies{Ctx: ctx, Stdout: stdout, Stderr: stderr}

	parser, err := kong.New(cli,
		kong.Name("bookmark-parser"),
		kong.Description("Parse browser bookmark HTML files."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bookmark-parser --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath := cli.Config
	if configPath == "" {
		configPath = m.ConfigPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cli.LogLevel != "" {
		cfg.WithLogLevel(cli.LogLevel)
	}
	if cli.DB != "" {
		cfg.WithDBPath(cli.DB)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log, closeLog := logger.New(stderr, level, cfg.LogFile)
	defer closeLog()

	deps.Config = cfg
	deps.Logger = log

	switch strings.Fields(kongCtx.Command())[0] {
	case "import", "imports", "stored":
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		repo, err := repository.NewSQLiteRepository(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
		}
		m.Repo = repo
		defer m.Close()
		deps.Repo = repo
	}

	if err := kongCtx.Run(deps); err != nil {
		log.Error("processing failed", slog.String("command", kongCtx.Command()), slog.Any("err", err))
		return err
	}
	return nil
}
