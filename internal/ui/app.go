package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/dastanaron/bookmarkparser/internal/models"
)

const (
	ModeNormal = 1
	ModeSearch = 2
)

// App represents the TUI application
type App struct {
	app      *tview.Application
	tree     *tview.TreeView
	detail   *tview.TextView
	search   *tview.InputField
	status   *tview.TextView
	mode     uint8
	title    string
	nodes    []models.Node
	showName bool
}

// NewApp creates a new application instance browsing nodes
func NewApp(title string, nodes []models.Node, showName bool) *App {
	return &App{
		app:      tview.NewApplication(),
		tree:     tview.NewTreeView(),
		detail:   tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		search:   tview.NewInputField().SetLabel("Search: "),
		status:   tview.NewTextView().SetDynamicColors(true),
		mode:     ModeNormal,
		title:    title,
		nodes:    nodes,
		showName: showName,
	}
}

// Run starts the application
func (a *App) Run() error {
	a.tree.SetBorder(true).SetTitle(fmt.Sprintf("Bookmarks (%s)", a.title))
	a.detail.SetBorder(true).SetTitle("Details")

	cols := tview.NewFlex().
		AddItem(a.tree, 0, 2, true).
		AddItem(a.detail, 0, 1, false)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.search, 1, 0, false).
		AddItem(cols, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.tree.SetChangedFunc(a.showDetails)
	a.tree.SetSelectedFunc(a.onSelect)
	a.search.SetChangedFunc(a.applyFilter)
	a.search.SetDoneFunc(a.onSearchDone)

	a.applyFilter("")

	a.app.SetRoot(main, true)
	a.app.SetInputCapture(a.globalInput)
	return a.app.Run()
}

func (a *App) applyFilter(query string) {
	root := BuildTree(a.title, a.nodes, a.showName, query)
	a.tree.SetRoot(root).SetCurrentNode(root)
	a.showDetails(root)
	a.updateStatus(root)
}

func (a *App) updateStatus(root *tview.TreeNode) {
	var folders, bookmarks int
	root.Walk(func(node, _ *tview.TreeNode) bool {
		switch node.GetReference().(type) {
		case models.Folder:
			folders++
		case models.Bookmark:
			bookmarks++
		}
		return true
	})
	countText := fmt.Sprintf(" [::b]%d[::r] bookmarks, [::b]%d[::r] folders", bookmarks, folders)
	a.status.SetText("[::b]/[::r] search  [::b]Enter[::r] open/expand  [::b]q[::r] quit" + countText)
}

func (a *App) showDetails(node *tview.TreeNode) {
	if node == nil {
		a.detail.SetText("")
		return
	}

	var text string
	switch v := node.GetReference().(type) {
	case models.Folder:
		folders, bookmarks := models.Count(v.Items)
		text = fmt.Sprintf(
			"[::b]Type:[::-]\nFolder\n\n[::b]Name:[::-]\n%s\n\n[::b]Contains:[::-]\n%d bookmarks, %d folders",
			tview.Escape(v.Name), bookmarks, folders)
	case models.Bookmark:
		text = fmt.Sprintf(
			"[::b]Type:[::-]\nBookmark\n\n[::b]Title:[::-]\n%s\n\n[::b]URL:[::-]\n%s",
			tview.Escape(v.Name), tview.Escape(v.URL))
	}
	a.detail.SetText(text)
}

func (a *App) onSelect(node *tview.TreeNode) {
	switch v := node.GetReference().(type) {
	case models.Bookmark:
		if v.URL != "" {
			openURL(v.URL)
		}
	default:
		node.SetExpanded(!node.IsExpanded())
	}
}

func (a *App) setMode(m uint8) {
	a.mode = m
	switch m {
	case ModeSearch:
		a.app.SetFocus(a.search)
	case ModeNormal:
		a.app.SetFocus(a.tree)
	}
}

func (a *App) onSearchDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		a.setMode(ModeNormal)
	case tcell.KeyEscape:
		a.search.SetText("")
		a.setMode(ModeNormal)
	}
}

func (a *App) globalInput(event *tcell.EventKey) *tcell.EventKey {
	if a.mode != ModeNormal || event.Key() != tcell.KeyRune {
		return event
	}
	switch event.Rune() {
	case 'q':
		a.app.Stop()
		return nil
	case '/':
		a.setMode(ModeSearch)
		return nil
	}
	return event
}

// BuildTree converts nodes to tree view nodes under a root labelled title.
// A non-empty query keeps bookmarks whose name or URL contains it, folders
// whose name contains it (with all their content) and the folders leading to them.
func BuildTree(title string, nodes []models.Node, showName bool, query string) *tview.TreeNode {
	root := tview.NewTreeNode(title).SetColor(tcell.ColorRed)
	addNodes(root, nodes, showName, strings.ToLower(strings.TrimSpace(query)))
	return root
}

func addNodes(parent *tview.TreeNode, nodes []models.Node, showName bool, query string) bool {
	added := false
	for _, n := range nodes {
		switch v := n.(type) {
		case models.Folder:
			child := tview.NewTreeNode(v.Name).
				SetReference(v).
				SetColor(tcell.ColorGreen)
			sub := query
			if matches(query, v.Name) {
				sub = ""
			}
			if !addNodes(child, v.Items, showName, sub) && sub != "" {
				continue
			}
			parent.AddChild(child)
			added = true
		case models.Bookmark:
			if !matches(query, v.Name, v.URL) {
				continue
			}
			text := v.URL
			if showName {
				text = v.Name
			}
			parent.AddChild(tview.NewTreeNode(text).SetReference(v))
			added = true
		}
	}
	return added
}

func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func openURL(url string) {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default:
		cmd = "xdg-open"
	}
	args = append(args, url)
	_ = exec.Command(cmd, args...).Start()
}
