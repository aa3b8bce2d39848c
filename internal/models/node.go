package models

import (
	"encoding/json"
	"time"
)

// ItemType represents the type of item (bookmark or folder)
type ItemType string

const (
	ItemTypeBookmark ItemType = "bookmark"
	ItemTypeFolder   ItemType = "folder"
)

// Node is one entry of an extracted bookmark tree.
// The only implementations are Folder and Bookmark.
type Node interface {
	Type() ItemType
	isNode()
}

// Folder represents a bookmark folder with its children in document order
type Folder struct {
	Name  string
	Items []Node
}

// Bookmark represents a bookmark entry
type Bookmark struct {
	Name string
	URL  string
}

func (Folder) Type() ItemType   { return ItemTypeFolder }
func (Bookmark) Type() ItemType { return ItemTypeBookmark }

func (Folder) isNode()   {}
func (Bookmark) isNode() {}

type folderDoc struct {
	Type  ItemType `json:"type" yaml:"type"`
	Name  string   `json:"name" yaml:"name"`
	Items []Node   `json:"items" yaml:"items"`
}

type bookmarkDoc struct {
	Type ItemType `json:"type" yaml:"type"`
	Name string   `json:"name" yaml:"name"`
	URL  string   `json:"url" yaml:"url"`
}

func (f Folder) doc() folderDoc {
	items := f.Items
	if items == nil {
		items = []Node{}
	}
	return folderDoc{Type: ItemTypeFolder, Name: f.Name, Items: items}
}

// MarshalJSON encodes the folder as {"type":"folder","name":...,"items":[...]}.
func (f Folder) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.doc())
}

// MarshalYAML mirrors MarshalJSON for gopkg.in/yaml.v3.
func (f Folder) MarshalYAML() (interface{}, error) {
	return f.doc(), nil
}

// MarshalJSON encodes the bookmark as {"type":"bookmark","name":...,"url":...}.
func (b Bookmark) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookmarkDoc{Type: ItemTypeBookmark, Name: b.Name, URL: b.URL})
}

// MarshalYAML mirrors MarshalJSON for gopkg.in/yaml.v3.
func (b Bookmark) MarshalYAML() (interface{}, error) {
	return bookmarkDoc{Type: ItemTypeBookmark, Name: b.Name, URL: b.URL}, nil
}

// Count returns the number of folders and bookmarks in a tree, at any depth.
func Count(nodes []Node) (folders, bookmarks int) {
	for _, n := range nodes {
		switch v := n.(type) {
		case Folder:
			folders++
			f, b := Count(v.Items)
			folders += f
			bookmarks += b
		case Bookmark:
			bookmarks++
		}
	}
	return folders, bookmarks
}

// Import describes one extracted tree stored in the database
type Import struct {
	ID        string
	Source    string
	Directory string // empty for the root list
	CreatedAt time.Time
	Folders   int
	Bookmarks int
}

// Item is a stored tree entry as read back from the database.
// Used to rebuild a tree from folder and bookmark rows.
type Item struct {
	Type     ItemType
	ID       int
	Name     string
	URL      string // empty for folders
	ParentID *int   // nil for top level entries
	Position int
}
