package repository

import (
	"errors"

	"github.com/dastanaron/bookmarkparser/internal/models"
)

// ErrImportNotFound is returned when no stored import matches the requested id
var ErrImportNotFound = errors.New("import not found")

// ImportRepository stores extracted bookmark trees
type ImportRepository interface {
	// Create stores tree as a new import and returns its record.
	Create(source, directory string, tree []models.Node) (*models.Import, error)
	List() ([]models.Import, error)
	GetByID(id string) (*models.Import, error)
	// Latest returns the most recently created import.
	Latest() (*models.Import, error)
	// LoadTree rebuilds the stored tree of an import in its original order.
	LoadTree(id string) ([]models.Node, error)
	Delete(id string) error
}

// Repository combines all repositories
type Repository interface {
	Imports() ImportRepository
	Close() error
}
