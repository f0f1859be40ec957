package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/security"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(security.SecurityHeadersMiddleware())

	// Session runs first so flash writes survive CSRF's request replacement
	if cfg.Sessions != nil {
		router.Use(cfg.Sessions.SessionLoadSave())
	}
	if len(cfg.CSRFSecret) > 0 {
		router.Use(security.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	router.SetHTMLTemplate(mustParseTemplates(cfg.TemplatesPath))

	health := NewHealthController(cfg.Health, cfg.Version)
	ui := NewUIController(cfg.Catalog, cfg.Sessions, cfg.Version).WithExport(cfg.ExportStatus, cfg.ExportRunner)
	books := NewBooksController(cfg.Catalog)
	export := NewExportController(cfg.Catalog, cfg.ExportRunner)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", Ping)

	// UI routes, one per view
	router.GET("/", ui.Index)
	router.GET(ViewPath(catalog.ViewAdd), ui.AddPage)
	router.POST(ViewPath(catalog.ViewAdd), ui.AddBook)
	router.GET(ViewPath(catalog.ViewRemove), ui.RemovePage)
	router.POST(ViewPath(catalog.ViewRemove), ui.RemoveBook)
	router.GET(ViewPath(catalog.ViewBooks), ui.BooksPage)
	router.GET(ViewPath(catalog.ViewSearch), ui.SearchPage)
	router.GET(ViewPath(catalog.ViewStats), ui.StatsPage)

	// Export downloads and manual runs
	router.GET("/export/books.csv", export.DownloadCSV)
	router.GET("/export/books.md", export.DownloadMarkdown)
	router.POST("/export/run", ui.RunExport)

	// JSON API
	api := router.Group("/api")
	api.GET("/books", books.GetAllBooks)
	api.POST("/books", books.CreateBook)
	api.DELETE("/books", books.DeleteBooks)
	api.GET("/books/search", books.SearchBooks)
	api.GET("/books/stats", books.GetBookStats)
	api.GET("/export", export.Download)
	api.POST("/export/run", export.Run)

	return router
}
