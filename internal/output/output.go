package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/itchyny/gojq"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/dastanaron/bookmarkparser/internal/models"
	"github.com/dastanaron/bookmarkparser/internal/parser"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is the indented tree (or one bookmark per line).
	FormatText Format = "text"
	// FormatJSON is pretty-printed JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// ErrInvalidFormat is returned by ParseFormat for unknown names.
var ErrInvalidFormat = errors.New("invalid --output format (expected text|json|yaml)")

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", ErrInvalidFormat
	}
}

// Printer renders export results.
type Printer struct {
	w        io.Writer
	format   Format
	query    string
	showName bool
}

// NewPrinter creates a new Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format, showName: true}
}

// WithQuery filters JSON output through a jq expression.
func (p *Printer) WithQuery(query string) *Printer {
	p.query = query
	return p
}

// WithShowName selects bookmark names (true) or URLs (false) in text trees.
func (p *Printer) WithShowName(show bool) *Printer {
	p.showName = show
	return p
}

// Print outputs the tree or bookmark list of res.
func (p *Printer) Print(res *parser.Result) error {
	var data interface{} = res.Tree
	if res.Format == parser.FormatBookmarks {
		data = res.Bookmarks
	}

	if p.query != "" && p.format != FormatJSON {
		return fmt.Errorf("--query requires json output")
	}

	switch p.format {
	case FormatJSON:
		return p.printJSON(data)
	case FormatYAML:
		return p.printYAML(data)
	case FormatText:
		if res.Format == parser.FormatBookmarks {
			return p.printLines(res.Bookmarks)
		}
		return p.PrintTree(res.Tree, 0)
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

// PrintTree prints folders and bookmarks indented by level.
// Top level folders have no marker, everything else is prefixed with "|- ".
func (p *Printer) PrintTree(nodes []models.Node, level int) error {
	indent := strings.Repeat("  ", level)
	for _, n := range nodes {
		switch v := n.(type) {
		case models.Folder:
			prefix := ""
			if level > 0 {
				prefix = indent + "|- "
			}
			if _, err := fmt.Fprintf(p.w, "%s%s\n", prefix, v.Name); err != nil {
				return err
			}
			if err := p.PrintTree(v.Items, level+1); err != nil {
				return err
			}
		case models.Bookmark:
			display := v.URL
			if p.showName {
				display = v.Name
			}
			if _, err := fmt.Fprintf(p.w, "%s|- %s\n", indent, display); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Printer) printLines(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}

// printJSON outputs data as pretty-printed JSON.
// If a jq query is set, it filters the output.
func (p *Printer) printJSON(data interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)

	if p.query == "" {
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	parsed, err := gojq.Parse(p.query)
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}

	// gojq only accepts plain JSON values
	input, err := toJSONValue(data)
	if err != nil {
		return err
	}

	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("query error: %w", err)
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func toJSONValue(data interface{}) (interface{}, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// printYAML outputs data as YAML.
func (p *Printer) printYAML(data interface{}) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
