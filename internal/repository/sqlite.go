package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dastanaron/bookmarkparser/internal/models"
)

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db      *sql.DB
	imports *importRepo
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	repo := &SQLiteRepository{
		db: db,
	}
	repo.imports = &importRepo{db: db}

	return repo, nil
}

func initSchema(db *sql.DB) error {
	createTables := `
	CREATE TABLE IF NOT EXISTS imports (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		directory TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS folders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		import_id TEXT NOT NULL,
		name TEXT NOT NULL,
		parent_id INTEGER,
		position INTEGER NOT NULL,
		FOREIGN KEY(import_id) REFERENCES imports(id),
		FOREIGN KEY(parent_id) REFERENCES folders(id)
	);

	CREATE TABLE IF NOT EXISTS bookmarks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		import_id TEXT NOT NULL,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		folder_id INTEGER,
		position INTEGER NOT NULL,
		FOREIGN KEY(import_id) REFERENCES imports(id),
		FOREIGN KEY(folder_id) REFERENCES folders(id)
	);

	CREATE INDEX IF NOT EXISTS idx_folders_import ON folders(import_id);
	CREATE INDEX IF NOT EXISTS idx_bookmarks_import ON bookmarks(import_id);
	`
	_, err := db.Exec(createTables)
	return err
}

// Imports returns the import repository
func (r *SQLiteRepository) Imports() ImportRepository {
	return r.imports
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// importRepo implements ImportRepository
type importRepo struct {
	db *sql.DB
}

func (r *importRepo) Create(source, directory string, tree []models.Node) (*models.Import, error) {
	imp := &models.Import{
		ID:        uuid.NewString(),
		Source:    source,
		Directory: directory,
		CreatedAt: time.Now().UTC(),
	}
	imp.Folders, imp.Bookmarks = models.Count(tree)

	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO imports(id, source, directory, created_at) VALUES (?, ?, ?, ?)`,
		imp.ID, imp.Source, imp.Directory, imp.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert import: %w", err)
	}

	if err := saveNodes(tx, imp.ID, nil, tree); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return imp, nil
}

// saveNodes inserts nodes under parentID. Folders and bookmarks share one
// position sequence per parent so mixed lists keep their order.
func saveNodes(tx *sql.Tx, importID string, parentID *int64, nodes []models.Node) error {
	for pos, n := range nodes {
		switch v := n.(type) {
		case models.Folder:
			res, err := tx.Exec(
				`INSERT INTO folders(import_id, name, parent_id, position) VALUES (?, ?, ?, ?)`,
				importID, v.Name, parentID, pos,
			)
			if err != nil {
				return fmt.Errorf("insert folder %q: %w", v.Name, err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			if err := saveNodes(tx, importID, &id, v.Items); err != nil {
				return err
			}
		case models.Bookmark:
			_, err := tx.Exec(
				`INSERT INTO bookmarks(import_id, title, url, folder_id, position) VALUES (?, ?, ?, ?, ?)`,
				importID, v.Name, v.URL, parentID, pos,
			)
			if err != nil {
				return fmt.Errorf("insert bookmark %q: %w", v.Name, err)
			}
		}
	}
	return nil
}

const selectImport = `
	SELECT i.id, i.source, i.directory, i.created_at,
		(SELECT COUNT(*) FROM folders f WHERE f.import_id = i.id),
		(SELECT COUNT(*) FROM bookmarks b WHERE b.import_id = i.id)
	FROM imports AS i`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanImport(s scanner) (*models.Import, error) {
	var imp models.Import
	if err := s.Scan(&imp.ID, &imp.Source, &imp.Directory, &imp.CreatedAt, &imp.Folders, &imp.Bookmarks); err != nil {
		return nil, err
	}
	return &imp, nil
}

func (r *importRepo) List() ([]models.Import, error) {
	rows, err := r.db.Query(selectImport + ` ORDER BY i.created_at DESC, i.rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var imports []models.Import
	for rows.Next() {
		imp, err := scanImport(rows)
		if err != nil {
			return nil, err
		}
		imports = append(imports, *imp)
	}
	return imports, rows.Err()
}

func (r *importRepo) GetByID(id string) (*models.Import, error) {
	imp, err := scanImport(r.db.QueryRow(selectImport+` WHERE i.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrImportNotFound, id)
	}
	return imp, err
}

func (r *importRepo) Latest() (*models.Import, error) {
	imp, err := scanImport(r.db.QueryRow(selectImport + ` ORDER BY i.created_at DESC, i.rowid DESC LIMIT 1`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrImportNotFound
	}
	return imp, err
}

func (r *importRepo) LoadTree(id string) ([]models.Node, error) {
	if _, err := r.GetByID(id); err != nil {
		return nil, err
	}

	items, err := r.loadItems(id)
	if err != nil {
		return nil, err
	}

	children := make(map[int][]models.Item) // parent id, 0 for top level
	for _, it := range items {
		key := 0
		if it.ParentID != nil {
			key = *it.ParentID
		}
		children[key] = append(children[key], it)
	}
	for key := range children {
		sort.SliceStable(children[key], func(i, j int) bool {
			return children[key][i].Position < children[key][j].Position
		})
	}

	return buildTree(children, 0), nil
}

func buildTree(children map[int][]models.Item, parent int) []models.Node {
	nodes := []models.Node{}
	for _, it := range children[parent] {
		if it.Type == models.ItemTypeFolder {
			nodes = append(nodes, models.Folder{Name: it.Name, Items: buildTree(children, it.ID)})
			continue
		}
		nodes = append(nodes, models.Bookmark{Name: it.Name, URL: it.URL})
	}
	return nodes
}

func (r *importRepo) loadItems(id string) ([]models.Item, error) {
	rows, err := r.db.Query(`
		SELECT 'folder', id, name, '', parent_id, position FROM folders WHERE import_id = ?
		UNION ALL
		SELECT 'bookmark', id, title, url, folder_id, position FROM bookmarks WHERE import_id = ?
	`, id, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.Type, &it.ID, &it.Name, &it.URL, &it.ParentID, &it.Position); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *importRepo) Delete(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM bookmarks WHERE import_id = ?`,
		`DELETE FROM folders WHERE import_id = ?`,
	} {
		if _, err := tx.Exec(stmt, id); err != nil {
			return err
		}
	}

	res, err := tx.Exec(`DELETE FROM imports WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrImportNotFound, id)
	}
	return tx.Commit()
}
