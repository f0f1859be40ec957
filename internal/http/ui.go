package http

import (
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/security"
	"github.com/mrlokans/library/internal/session"
	"github.com/mrlokans/library/internal/tasks"
)

const flashContextKey = "flash"

type menuLink struct {
	Label  string
	Path   string
	Active bool
}

type searchFieldOption struct {
	Value    string
	Label    string
	Selected bool
}

// ViewPath returns the URL of a view's page.
func ViewPath(v catalog.View) string {
	return "/" + v.Slug()
}

// UIController serves the five catalog views as HTML pages.
type UIController struct {
	store        CatalogStore
	sessions     *session.Manager
	exportStatus tasks.StatusReader
	exportRunner ExportRunner
	version      string
}

func NewUIController(store CatalogStore, sessions *session.Manager, version string) *UIController {
	return &UIController{
		store:    store,
		sessions: sessions,
		version:  version,
	}
}

// WithExport enables the export section of the statistics view.
func (ui *UIController) WithExport(status tasks.StatusReader, runner ExportRunner) *UIController {
	ui.exportStatus = status
	ui.exportRunner = runner
	return ui
}

func menuFor(view catalog.View) []menuLink {
	menu := make([]menuLink, 0, len(catalog.Views))
	for _, v := range catalog.Views {
		menu = append(menu, menuLink{Label: v.Label(), Path: ViewPath(v), Active: v == view})
	}
	return menu
}

func (ui *UIController) render(c *gin.Context, status int, view catalog.View, data gin.H) {
	data["Title"] = view.Label()
	data["Menu"] = menuFor(view)
	data["Version"] = ui.version
	data["CSRFField"] = security.CSRFTokenField(c)
	if flash := ui.popFlash(c); flash != nil {
		data["Flash"] = flash
	}

	c.HTML(status, view.Slug(), data)
}

func (ui *UIController) renderError(c *gin.Context, view catalog.View, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.HTML(http.StatusInternalServerError, "error", gin.H{
		"Title":   view.Label(),
		"Menu":    menuFor(view),
		"Version": ui.version,
		"Error":   "Something went wrong while talking to the catalog. Please try again.",
	})
}

func (ui *UIController) popFlash(c *gin.Context) *session.Flash {
	if v, ok := c.Get(flashContextKey); ok {
		if flash, ok := v.(*session.Flash); ok {
			return flash
		}
	}
	if ui.sessions == nil {
		return nil
	}
	if flash, ok := ui.sessions.PopFlash(c.Request); ok {
		return &flash
	}
	return nil
}

// finish shows a confirmation after a form post. With sessions it follows
// post/redirect/get; without, the page is rendered in place.
func (ui *UIController) finish(c *gin.Context, view catalog.View, kind session.FlashKind, message string, page gin.HandlerFunc) {
	if ui.sessions != nil {
		ui.sessions.SetFlash(c.Request, kind, message)
		c.Redirect(http.StatusSeeOther, ViewPath(view))
		return
	}
	c.Set(flashContextKey, &session.Flash{Kind: kind, Message: message})
	page(c)
}

func (ui *UIController) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, ViewPath(catalog.DefaultView))
}

func (ui *UIController) AddPage(c *gin.Context) {
	ui.render(c, http.StatusOK, catalog.ViewAdd, gin.H{
		"ReadStatusOptions": entities.ReadStatusOptions,
	})
}

// AddBook inserts the submitted record. Fields are stored as typed; only the
// read status is coerced.
func (ui *UIController) AddBook(c *gin.Context) {
	readStatus, err := entities.ParseReadStatus(c.DefaultPostForm("read_status", entities.ReadStatusRead.String()))
	if err != nil {
		c.Set(flashContextKey, &session.Flash{Kind: session.FlashError, Message: "Read status must be True or False."})
		ui.render(c, http.StatusBadRequest, catalog.ViewAdd, gin.H{
			"ReadStatusOptions": entities.ReadStatusOptions,
		})
		return
	}

	book := entities.Book{
		Title:      c.PostForm("title"),
		Author:     c.PostForm("author"),
		Year:       c.PostForm("year"),
		Genre:      c.PostForm("genre"),
		ReadStatus: readStatus,
	}
	if err := ui.store.Insert(&book); err != nil {
		ui.renderError(c, catalog.ViewAdd, err, "add book")
		return
	}

	ui.finish(c, catalog.ViewAdd, session.FlashSuccess, catalog.AddedMessage(book.Title), ui.AddPage)
}

func (ui *UIController) RemovePage(c *gin.Context) {
	ui.render(c, http.StatusOK, catalog.ViewRemove, gin.H{})
}

// RemoveBook deletes every record with the exact title. The confirmation is
// the same whether or not anything matched.
func (ui *UIController) RemoveBook(c *gin.Context) {
	title := c.PostForm("title")

	removed, err := ui.store.DeleteByTitle(title)
	if err != nil {
		ui.renderError(c, catalog.ViewRemove, err, "remove book")
		return
	}
	log.Printf("Removed %d book(s) titled %q", removed, title)

	ui.finish(c, catalog.ViewRemove, session.FlashSuccess, catalog.RemovedMessage(title), ui.RemovePage)
}

func (ui *UIController) BooksPage(c *gin.Context) {
	books, err := ui.store.ListAll()
	if err != nil {
		ui.renderError(c, catalog.ViewBooks, err, "list books")
		return
	}

	ui.render(c, http.StatusOK, catalog.ViewBooks, gin.H{
		"Books":        books,
		"EmptyMessage": catalog.MessageNoBooks,
	})
}

// SearchPage always renders the form. The store is queried only when the
// term is non-empty.
func (ui *UIController) SearchPage(c *gin.Context) {
	term := c.Query("q")
	field := entities.SearchFieldTitle
	if raw := c.Query("field"); raw != "" {
		parsed, err := entities.ParseSearchField(raw)
		if err != nil {
			c.Set(flashContextKey, &session.Flash{Kind: session.FlashError, Message: "Unknown search field."})
			ui.render(c, http.StatusBadRequest, catalog.ViewSearch, gin.H{
				"Fields": searchFieldOptions(field),
				"Term":   term,
			})
			return
		}
		field = parsed
	}

	data := gin.H{
		"Fields":       searchFieldOptions(field),
		"Term":         term,
		"EmptyMessage": catalog.MessageNoMatches,
	}

	if term != "" {
		books, err := ui.store.Search(field, term)
		if err != nil {
			ui.renderError(c, catalog.ViewSearch, err, "search books")
			return
		}
		data["Searched"] = true
		data["Books"] = books
	}

	ui.render(c, http.StatusOK, catalog.ViewSearch, data)
}

func searchFieldOptions(selected entities.SearchField) []searchFieldOption {
	options := make([]searchFieldOption, 0, len(entities.SearchFields))
	for _, f := range entities.SearchFields {
		options = append(options, searchFieldOption{
			Value:    f.String(),
			Label:    f.Label(),
			Selected: f == selected,
		})
	}
	return options
}

func (ui *UIController) StatsPage(c *gin.Context) {
	stats, err := catalog.LoadStats(ui.store)
	if err != nil {
		ui.renderError(c, catalog.ViewStats, err, "load statistics")
		return
	}

	data := gin.H{
		"Stats":           stats,
		"ExportAvailable": ui.exportRunner != nil,
	}

	if ui.exportStatus != nil {
		status, err := tasks.LoadExportStatus(ui.exportStatus)
		if err != nil {
			log.Printf("Failed to load export status: %v", err)
		} else {
			data["ExportStatus"] = status
		}
	}
	if ui.exportRunner != nil {
		if next := ui.exportRunner.GetNextRunTime(); next != nil {
			data["NextExport"] = *next
		}
	}

	ui.render(c, http.StatusOK, catalog.ViewStats, data)
}

// RunExport triggers an export from the statistics view.
func (ui *UIController) RunExport(c *gin.Context) {
	if ui.exportRunner == nil {
		c.String(http.StatusNotFound, "Export is not configured")
		return
	}

	if err := ui.exportRunner.RunNow(); err != nil {
		log.Printf("Manual export failed: %v", err)
		ui.finish(c, catalog.ViewStats, session.FlashError, "Export failed: "+firstLine(err.Error()), ui.StatsPage)
		return
	}
	ui.finish(c, catalog.ViewStats, session.FlashSuccess, "Export started.", ui.StatsPage)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// mustParseTemplates is used by NewRouter; a broken template set is a
// programming error.
func mustParseTemplates(dir string) *template.Template {
	return template.Must(loadTemplates(dir))
}
