package http

import (
	"time"

	"github.com/mrlokans/library/internal/entities"
)

// CatalogStore is the catalog store surface used by the web shell and the
// JSON API. Each handler calls exactly one of these per request, except the
// statistics pair.
type CatalogStore interface {
	Insert(book *entities.Book) error
	DeleteByTitle(title string) (int64, error)
	ListAll() ([]entities.Book, error)
	Search(field entities.SearchField, term string) ([]entities.Book, error)
	CountTotal() (int64, error)
	CountRead() (int64, error)
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping() error
}

// ExportRunner triggers catalog exports outside the schedule.
type ExportRunner interface {
	RunNow() error
	GetNextRunTime() *time.Time
}
