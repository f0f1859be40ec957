package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/exporters"
)

// ExportController streams the whole catalog as a file download.
type ExportController struct {
	lister exporters.BookLister
	runner ExportRunner
}

func NewExportController(lister exporters.BookLister, runner ExportRunner) *ExportController {
	return &ExportController{
		lister: lister,
		runner: runner,
	}
}

func (controller *ExportController) download(c *gin.Context, format exporters.Format) {
	books, err := controller.lister.ListAll()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books")
		return
	}

	var buf bytes.Buffer
	if err := exporters.Render(&buf, format, books); err != nil {
		c.String(http.StatusInternalServerError, "Error rendering export")
		return
	}

	filename := fmt.Sprintf("books-%s.%s", time.Now().Format("2006-01-02"), format.Extension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

func (controller *ExportController) DownloadCSV(c *gin.Context) {
	controller.download(c, exporters.FormatCSV)
}

func (controller *ExportController) DownloadMarkdown(c *gin.Context) {
	controller.download(c, exporters.FormatMarkdown)
}

// Download serves /api/export?format=csv|markdown.
func (controller *ExportController) Download(c *gin.Context) {
	format, err := exporters.ParseFormat(c.DefaultQuery("format", string(exporters.FormatCSV)))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	controller.download(c, format)
}

// Run triggers an export to the configured directory.
func (controller *ExportController) Run(c *gin.Context) {
	if controller.runner == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "export is not configured"})
		return
	}
	if err := controller.runner.RunNow(); err != nil {
		respondInternalError(c, err, "run export")
		return
	}
	respondAccepted(c, "export started")
}
