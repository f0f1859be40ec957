package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/database/settings"
	"github.com/mrlokans/library/internal/exporters"
	"github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/tasks"
	"github.com/mrlokans/library/internal/tui"
)

// =============================================================================
// Catalog Store
// =============================================================================

// One repository serves every shell
var _ http.CatalogStore = (*books.Repository)(nil)
var _ tui.CatalogStore = (*books.Repository)(nil)
var _ catalog.Counter = (*books.Repository)(nil)
var _ exporters.BookLister = (*books.Repository)(nil)

// HealthChecker implementations
var _ http.HealthChecker = (*database.Database)(nil)

// =============================================================================
// Export
// =============================================================================

// Export status persistence
var _ tasks.StatusRecorder = (*settings.Repository)(nil)
var _ tasks.StatusReader = (*settings.Repository)(nil)

// Manual export trigger
var _ http.ExportRunner = (*scheduler.ExportScheduler)(nil)

// Background queue
var _ scheduler.Enqueuer = (*tasks.Client)(nil)
