// Package interfaces documents the core abstractions used throughout the application.
//
// Consumers declare the narrow interface they need next to the code that uses
// it; concrete types live in the database, scheduler and tasks packages.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - CatalogStore: the six catalog operations used by the web shell (internal/http/stores.go)
//   - CatalogStore: the same operations for the terminal shell (internal/tui/model.go)
//   - Counter: CountTotal/CountRead for statistics (internal/catalog/stats.go)
//   - BookLister: ListAll for exports (internal/exporters/generic.go)
//   - HealthChecker: database ping (internal/http/stores.go)
//
// ## Export Interfaces
//
//   - StatusRecorder / StatusReader: last export run in settings (internal/tasks/export_catalog.go)
//   - ExportRunner: manual export trigger and next run time (internal/http/stores.go)
//   - Enqueuer: hands export runs to the task queue (internal/scheduler/export.go)
//
// # Adding a New Shell
//
// A shell depends only on its own store interface:
//
//  1. Declare the operations it calls:
//
//     type CatalogStore interface {
//         ListAll() ([]entities.Book, error)
//     }
//
//  2. Accept it in the constructor and have the entrypoint or the cli package
//     pass db.Books().
//
//  3. Add a compile-time check to checks.go:
//
//     var _ newshell.CatalogStore = (*books.Repository)(nil)
//
// # Adding a New Export Format
//
//  1. Add a Format constant in internal/exporters/generic.go and extend
//     ParseFormat, Extension, ContentType and Render.
//
//  2. The file exporter, the scheduled job, the download routes and the
//     export command pick it up through ParseFormat.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
