package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dastanaron/bookmarkparser/internal/service"
)

// ImportCommand handles storing the tree of a bookmark file in the database
type ImportCommand struct {
	stdout    io.Writer
	importSvc *service.ImportService
}

// NewImportCommand creates a new import command
func NewImportCommand(stdout io.Writer, importSvc *service.ImportService) *ImportCommand {
	return &ImportCommand{stdout: stdout, importSvc: importSvc}
}

// Execute imports the bookmarks under directory from filePath
func (c *ImportCommand) Execute(filePath, directory string) error {
	imp, err := c.importSvc.ImportFile(filePath, directory)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(c.stdout, "Imported %d bookmarks in %d folders.\n", imp.Bookmarks, imp.Folders)
	fmt.Fprintf(c.stdout, "Import ID: %s\n", imp.ID)
	return nil
}

// ImportsCommand lists stored imports
type ImportsCommand struct {
	stdout  io.Writer
	treeSvc *service.TreeService
}

// NewImportsCommand creates a new imports listing command
func NewImportsCommand(stdout io.Writer, treeSvc *service.TreeService) *ImportsCommand {
	return &ImportsCommand{stdout: stdout, treeSvc: treeSvc}
}

// Execute prints one line per stored import, newest first
func (c *ImportsCommand) Execute() error {
	imports, err := c.treeSvc.ListImports()
	if err != nil {
		return fmt.Errorf("failed to get imports: %w", err)
	}

	if len(imports) == 0 {
		fmt.Fprintln(c.stdout, "No imports found. Use 'bookmark-parser import' to store a bookmark file.")
		return nil
	}

	w := tabwriter.NewWriter(c.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tSOURCE\tDIRECTORY\tFOLDERS\tBOOKMARKS")
	for _, imp := range imports {
		dir := imp.Directory
		if dir == "" {
			dir = "Root"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			imp.ID, imp.CreatedAt.Local().Format("2006-01-02 15:04"), imp.Source, dir, imp.Folders, imp.Bookmarks)
	}
	return w.Flush()
}

// StoredCommand prints a stored tree
type StoredCommand struct {
	stdout  io.Writer
	treeSvc *service.TreeService
}

// NewStoredCommand creates a new stored tree command
func NewStoredCommand(stdout io.Writer, treeSvc *service.TreeService) *StoredCommand {
	return &StoredCommand{stdout: stdout, treeSvc: treeSvc}
}

// Execute prints the import with id (latest when empty) like ExportCommand prints a file
func (c *StoredCommand) Execute(id string, opts ExportOptions) error {
	res, err := c.treeSvc.Export(id, opts.Format, opts.Directory, opts.ShowName)
	if err != nil {
		return err
	}
	return printResult(c.stdout, res, opts)
}
