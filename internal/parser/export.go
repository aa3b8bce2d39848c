package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dastanaron/bookmarkparser/internal/models"
)

// Format selects which view of the bookmark tree an export produces
type Format string

const (
	// FormatAll is the folder tree with bookmarks.
	FormatAll Format = "all"
	// FormatDirectory is the folder tree without bookmarks.
	FormatDirectory Format = "directory"
	// FormatBookmarks is the flat list of bookmark names or URLs.
	FormatBookmarks Format = "bookmarks"
)

// ErrInvalidFormat is returned by ParseFormat for unknown names
var ErrInvalidFormat = errors.New("invalid export format (expected all|directory|bookmarks)")

// ParseFormat converts a string to a Format.
// Empty string defaults to FormatDirectory.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatDirectory, nil
	case FormatAll, FormatDirectory, FormatBookmarks:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// Result is the outcome of an export.
// Tree is set for FormatAll and FormatDirectory, Bookmarks for FormatBookmarks.
type Result struct {
	Format    Format
	Target    string
	Tree      []models.Node
	Bookmarks []string
}

// ExportAll returns the folders and bookmarks under target (root when empty)
func (d *Document) ExportAll(target string) ([]models.Node, error) {
	return d.export(target, true)
}

// ExportFoldersOnly returns the folder structure under target without bookmarks
func (d *Document) ExportFoldersOnly(target string) ([]models.Node, error) {
	return d.export(target, false)
}

// ExportBookmarkList returns the flattened bookmarks under target
func (d *Document) ExportBookmarkList(target string, showName bool) ([]string, error) {
	tree, err := d.ExportAll(target)
	if err != nil {
		return nil, err
	}
	return Flatten(tree, showName), nil
}

// Export runs the export selected by format
func (d *Document) Export(format Format, target string, showName bool) (*Result, error) {
	res := &Result{Format: format, Target: target}
	var err error
	switch format {
	case FormatAll:
		res.Tree, err = d.ExportAll(target)
	case FormatDirectory:
		res.Tree, err = d.ExportFoldersOnly(target)
	case FormatBookmarks:
		res.Bookmarks, err = d.ExportBookmarkList(target, showName)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (d *Document) export(target string, includeBookmarks bool) ([]models.Node, error) {
	list, err := d.Locate(target)
	if err != nil {
		return nil, err
	}
	w := walker{
		includeBookmarks: includeBookmarks,
		maxDepth:         d.maxDepth,
		logger:           d.logger,
	}
	return w.walkNode(list), nil
}
