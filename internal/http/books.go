package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

// BooksController exposes the catalog store as a JSON API.
type BooksController struct {
	store CatalogStore
}

func NewBooksController(store CatalogStore) *BooksController {
	return &BooksController{
		store: store,
	}
}

// CreateBookRequest mirrors the Add Book form. "read" accepts a boolean or
// a "True"/"False" string.
type CreateBookRequest struct {
	Title  string              `json:"title"`
	Author string              `json:"author"`
	Year   string              `json:"year"`
	Genre  string              `json:"genre"`
	Read   entities.ReadStatus `json:"read"`
}

func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books, err := controller.store.ListAll()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	if books == nil {
		books = []entities.Book{}
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

func (controller *BooksController) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	book := entities.Book{
		Title:      req.Title,
		Author:     req.Author,
		Year:       req.Year,
		Genre:      req.Genre,
		ReadStatus: req.Read,
	}
	if err := controller.store.Insert(&book); err != nil {
		respondInternalError(c, err, "add book")
		return
	}

	respondCreated(c, gin.H{"message": catalog.AddedMessage(book.Title), "book": book})
}

// DeleteBooks removes every record titled ?title=. A missing title is an
// error; a title nobody has is not.
func (controller *BooksController) DeleteBooks(c *gin.Context) {
	title, ok := c.GetQuery("title")
	if !ok {
		respondBadRequest(c, "title query parameter is required")
		return
	}

	removed, err := controller.store.DeleteByTitle(title)
	if err != nil {
		respondInternalError(c, err, "remove book")
		return
	}
	log.Printf("Removed %d book(s) titled %q", removed, title)

	respondSuccess(c, catalog.RemovedMessage(title), gin.H{"removed": removed})
}

func (controller *BooksController) SearchBooks(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		respondBadRequest(c, "q query parameter is required")
		return
	}

	field, err := entities.ParseSearchField(c.DefaultQuery("field", entities.SearchFieldTitle.String()))
	if err != nil {
		respondBadRequest(c, "field must be one of title, author, genre")
		return
	}

	books, err := controller.store.Search(field, term)
	if err != nil {
		respondInternalError(c, err, "search books")
		return
	}
	if books == nil {
		books = []entities.Book{}
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books), "field": field.String(), "q": term})
}

func (controller *BooksController) GetBookStats(c *gin.Context) {
	stats, err := catalog.LoadStats(controller.store)
	if err != nil {
		respondInternalError(c, err, "load statistics")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"total_books":     stats.Total,
		"read_books":      stats.Read,
		"read_percentage": stats.FormattedReadPercentage(),
	})
}
