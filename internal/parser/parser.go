package parser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Netscape bookmark file elements. The HTML parser lowercases tag names.
const (
	tagList    = "dl"
	tagEntry   = "dt"
	tagHeading = "h3"
	tagAnchor  = "a"
)

// DefaultMaxDepth is the default limit of nested lists followed by a traversal
const DefaultMaxDepth = 512

// ErrDirectoryNotFound matches every DirectoryNotFoundError with errors.Is
var ErrDirectoryNotFound = errors.New("directory not found")

// DirectoryNotFoundError is returned when no folder heading carries the requested name
type DirectoryNotFoundError struct {
	Name string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("directory '%s' doesn't exist", e.Name)
}

func (e *DirectoryNotFoundError) Is(target error) bool {
	return target == ErrDirectoryNotFound
}

// Document is a parsed bookmark file.
// The DOM is read-only after Parse, so a Document can serve any number of exports.
type Document struct {
	doc      *goquery.Document
	logger   *slog.Logger
	maxDepth int
}

// Option configures a Document
type Option func(*Document)

// WithLogger sets the logger used for traversal diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMaxDepth limits how many nested lists a traversal follows.
// Folders below the limit are exported with no items.
func WithMaxDepth(depth int) Option {
	return func(d *Document) {
		if depth > 0 {
			d.maxDepth = depth
		}
	}
}

// Parse reads a Netscape bookmark file with the lenient HTML5 parser
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	d := &Document{
		doc:      goquery.NewDocumentFromNode(root),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// ParseFile opens and parses a bookmark file.
// A missing file is reported with an error matching fs.ErrNotExist.
func ParseFile(path string, opts ...Option) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	d, err := Parse(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("error parsing file %s: %w", path, err)
	}
	return d, nil
}

// Locate returns the list node a traversal starts from.
//
// An empty target selects the first list of the document. Otherwise the first
// heading anywhere in the document whose trimmed text equals the trimmed target
// is used, and the list among its parent entry's direct children is returned.
// The returned node is nil when that folder has no list.
func (d *Document) Locate(target string) (*html.Node, error) {
	name := strings.TrimSpace(target)
	if name == "" {
		root := d.doc.Find(tagList).First()
		if root.Length() == 0 {
			d.logger.Debug("document has no bookmark list")
			return nil, nil
		}
		return root.Get(0), nil
	}

	headings := d.headings(name)
	if headings.Length() == 0 {
		d.logger.Debug("directory not found", "directory", name)
		return nil, &DirectoryNotFoundError{Name: target}
	}
	if n := headings.Length(); n > 1 {
		d.logger.Warn("directory name is ambiguous, using first match", "directory", name, "matches", n)
	}

	list := headings.First().Parent().ChildrenFiltered(tagList).First()
	if list.Length() == 0 {
		d.logger.Debug("directory has no list", "directory", name)
		return nil, nil
	}
	return list.Get(0), nil
}

// HeadingCount reports how many folder headings are named name
func (d *Document) HeadingCount(name string) int {
	return d.headings(strings.TrimSpace(name)).Length()
}

func (d *Document) headings(name string) *goquery.Selection {
	return d.doc.Find(tagHeading).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return text(s) == name
	})
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
