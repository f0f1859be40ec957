package http

import (
	"github.com/mrlokans/library/internal/session"
	"github.com/mrlokans/library/internal/tasks"
)

// RouterConfig contains the dependencies needed to build the router.
// Optional fields may be left nil.
type RouterConfig struct {
	Catalog CatalogStore
	Health  HealthChecker

	// Export status and manual runs (optional)
	ExportStatus tasks.StatusReader
	ExportRunner ExportRunner

	// Flash messages; without it confirmations render in place of a redirect
	Sessions *session.Manager

	// CSRF protection is enabled when a secret is set
	CSRFSecret    []byte
	SecureCookies bool

	// Empty uses the templates embedded in the binary
	TemplatesPath string

	Version string
}

