package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dastanaron/bookmarkparser/internal/models"
	"github.com/dastanaron/bookmarkparser/internal/parser"
	"github.com/dastanaron/bookmarkparser/internal/repository"
)

// ImportService parses bookmark files and stores the extracted trees
type ImportService struct {
	repo   repository.Repository
	logger *slog.Logger
}

// NewImportService creates a new import service
func NewImportService(repo repository.Repository, logger *slog.Logger) *ImportService {
	return &ImportService{repo: repo, logger: logger}
}

// ImportFile extracts the tree under directory (root when empty) from path and stores it
func (s *ImportService) ImportFile(path, directory string) (*models.Import, error) {
	doc, err := parser.ParseFile(path, parser.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}

	tree, err := doc.ExportAll(directory)
	if err != nil {
		return nil, err
	}

	imp, err := s.repo.Imports().Create(path, strings.TrimSpace(directory), tree)
	if err != nil {
		return nil, fmt.Errorf("store import: %w", err)
	}
	s.logger.Info("imported bookmarks", "id", imp.ID, "source", path, "folders", imp.Folders, "bookmarks", imp.Bookmarks)
	return imp, nil
}

// TreeService reads stored trees back
type TreeService struct {
	repo repository.Repository
}

// NewTreeService creates a new tree service
func NewTreeService(repo repository.Repository) *TreeService {
	return &TreeService{repo: repo}
}

// ListImports returns all stored imports, newest first
func (s *TreeService) ListImports() ([]models.Import, error) {
	return s.repo.Imports().List()
}

// Resolve returns the import with id, or the latest import when id is empty
func (s *TreeService) Resolve(id string) (*models.Import, error) {
	if id == "" {
		return s.repo.Imports().Latest()
	}
	return s.repo.Imports().GetByID(id)
}

// Export produces the same views as parser.Document.Export from a stored tree.
// A non-empty directory selects the first folder with that name, in document order.
func (s *TreeService) Export(id string, format parser.Format, directory string, showName bool) (*parser.Result, error) {
	imp, err := s.Resolve(id)
	if err != nil {
		return nil, err
	}

	tree, err := s.repo.Imports().LoadTree(imp.ID)
	if err != nil {
		return nil, fmt.Errorf("load import %s: %w", imp.ID, err)
	}

	if name := strings.TrimSpace(directory); name != "" {
		folder, ok := FindFolder(tree, name)
		if !ok {
			return nil, &parser.DirectoryNotFoundError{Name: directory}
		}
		tree = folder.Items
	}

	res := &parser.Result{Format: format, Target: directory}
	switch format {
	case parser.FormatAll:
		res.Tree = tree
	case parser.FormatDirectory:
		res.Tree = FoldersOnly(tree)
	case parser.FormatBookmarks:
		res.Bookmarks = parser.Flatten(tree, showName)
	default:
		return nil, fmt.Errorf("%w: %q", parser.ErrInvalidFormat, format)
	}
	return res, nil
}

// FindFolder returns the first folder named name in a pre-order walk of tree
func FindFolder(tree []models.Node, name string) (models.Folder, bool) {
	for _, n := range tree {
		f, ok := n.(models.Folder)
		if !ok {
			continue
		}
		if f.Name == name {
			return f, true
		}
		if found, ok := FindFolder(f.Items, name); ok {
			return found, true
		}
	}
	return models.Folder{}, false
}

// FoldersOnly copies tree without its bookmarks
func FoldersOnly(tree []models.Node) []models.Node {
	out := []models.Node{}
	for _, n := range tree {
		if f, ok := n.(models.Folder); ok {
			out = append(out, models.Folder{Name: f.Name, Items: FoldersOnly(f.Items)})
		}
	}
	return out
}
