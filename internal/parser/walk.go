package parser

import (
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/dastanaron/bookmarkparser/internal/models"
)

// Walk converts a list node into folder and bookmark nodes.
// A nil node or a node that is not a list yields an empty result.
func Walk(list *html.Node, includeBookmarks bool) []models.Node {
	w := walker{
		includeBookmarks: includeBookmarks,
		maxDepth:         DefaultMaxDepth,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return w.walkNode(list)
}

type walker struct {
	includeBookmarks bool
	maxDepth         int
	logger           *slog.Logger
}

func (w *walker) walkNode(list *html.Node) []models.Node {
	if list == nil {
		return []models.Node{}
	}
	return w.walk(goquery.NewDocumentFromNode(list).Selection, 0)
}

// walk only consumes the direct entries of list; nested lists are handled by recursion
func (w *walker) walk(list *goquery.Selection, depth int) []models.Node {
	result := []models.Node{}
	if list.Length() == 0 || goquery.NodeName(list) != tagList {
		return result
	}
	if depth >= w.maxDepth {
		w.logger.Warn("bookmark list nested too deep, skipping its contents", "depth", depth)
		return result
	}

	list.ChildrenFiltered(tagEntry).Each(func(_ int, entry *goquery.Selection) {
		// Found folder header <H3 ...>
		if heading := entry.ChildrenFiltered(tagHeading).First(); heading.Length() > 0 {
			sub := heading.NextAllFiltered(tagList).First()
			result = append(result, models.Folder{
				Name:  text(heading),
				Items: w.walk(sub, depth+1),
			})
			return
		}

		if !w.includeBookmarks {
			return
		}

		// Found bookmark <A HREF=...>
		if anchor := entry.ChildrenFiltered(tagAnchor).First(); anchor.Length() > 0 {
			result = append(result, models.Bookmark{
				Name: text(anchor),
				URL:  strings.TrimSpace(anchor.AttrOr("href", "")),
			})
		}
	})

	return result
}

// Flatten lists the bookmarks of a tree depth-first in document order.
// Each bookmark contributes its name when showName is set, its URL otherwise.
// Folder names are never included.
func Flatten(tree []models.Node, showName bool) []string {
	out := []string{}
	for _, n := range tree {
		switch v := n.(type) {
		case models.Folder:
			out = append(out, Flatten(v.Items, showName)...)
		case models.Bookmark:
			if showName {
				out = append(out, v.Name)
			} else {
				out = append(out, v.URL)
			}
		}
	}
	return out
}
