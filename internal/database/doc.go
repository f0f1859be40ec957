// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and table initialization
//	├── books/           # Catalog store: book record operations
//	└── settings/        # Key/value settings (export status)
//
// # Using Sub-packages
//
// Database opens the SQLite file once and hands out the repositories that
// share its connection:
//
//	db, err := database.NewDatabase("./library.db")
//	defer db.Close()
//
//	catalog := db.Books()
//	err = catalog.Insert(&entities.Book{Title: "Dune"})
//	total, err := catalog.CountTotal()
//
// # Interface Implementations
//
//   - books.Repository: implements http.CatalogStore, tui.CatalogStore and
//     exporters.BookLister
//   - settings.Repository: implements tasks.StatusRecorder and tasks.StatusReader
//   - Database: implements http.HealthChecker
package database
