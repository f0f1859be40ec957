package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/entities"
)

func doJSON(t *testing.T, store *fakeCatalog, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	router := newTestRouter(store)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return w, response
}

func TestBooksController_GetAllBooks(t *testing.T) {
	t.Run("empty catalog returns an empty list", func(t *testing.T) {
		w, response := doJSON(t, newFakeCatalog(), http.MethodGet, "/api/books", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(0), response["count"])
		assert.Equal(t, []any{}, response["books"])
	})

	t.Run("returns every record", func(t *testing.T) {
		store := newFakeCatalog(entities.Book{Title: "Dune", ReadStatus: entities.ReadStatusRead}, entities.Book{Title: "Emma"})
		w, response := doJSON(t, store, http.MethodGet, "/api/books", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(2), response["count"])
		books := response["books"].([]any)
		first := books[0].(map[string]any)
		assert.Equal(t, "Dune", first["title"])
		assert.Equal(t, true, first["read"])
	})

	t.Run("storage fault", func(t *testing.T) {
		store := newFakeCatalog()
		store.err = errStoreDown
		w, response := doJSON(t, store, http.MethodGet, "/api/books", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", response["error"])
	})
}

func TestBooksController_CreateBook(t *testing.T) {
	t.Run("boolean read flag", func(t *testing.T) {
		store := newFakeCatalog()
		w, response := doJSON(t, store, http.MethodPost, "/api/books",
			`{"title":"Dune","author":"Frank Herbert","year":"1965","genre":"Sci-Fi","read":true}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "'Dune' added successfully!", response["message"])
		require.Len(t, store.inserted, 1)
		assert.Equal(t, entities.ReadStatusRead, store.inserted[0].ReadStatus)
		assert.Equal(t, "1965", store.inserted[0].Year)
	})

	t.Run("string read flag", func(t *testing.T) {
		store := newFakeCatalog()
		w, _ := doJSON(t, store, http.MethodPost, "/api/books", `{"title":"Emma","read":"False"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, store.inserted, 1)
		assert.Equal(t, entities.ReadStatusUnread, store.inserted[0].ReadStatus)
	})

	t.Run("invalid body", func(t *testing.T) {
		store := newFakeCatalog()
		w, _ := doJSON(t, store, http.MethodPost, "/api/books", `{"title":"Emma","read":"perhaps"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.inserted)
	})
}

func TestBooksController_DeleteBooks(t *testing.T) {
	t.Run("reports removed count", func(t *testing.T) {
		store := newFakeCatalog(entities.Book{Title: "X"}, entities.Book{Title: "X"}, entities.Book{Title: "Y"})
		w, response := doJSON(t, store, http.MethodDelete, "/api/books?title=X", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "'X' removed successfully!", response["message"])
		assert.Equal(t, float64(2), response["data"].(map[string]any)["removed"])
	})

	t.Run("missing match still succeeds", func(t *testing.T) {
		w, response := doJSON(t, newFakeCatalog(), http.MethodDelete, "/api/books?title=Nope", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "'Nope' removed successfully!", response["message"])
	})

	t.Run("title parameter is required", func(t *testing.T) {
		store := newFakeCatalog()
		w, _ := doJSON(t, store, http.MethodDelete, "/api/books", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.deleted)
	})
}

func TestBooksController_SearchBooks(t *testing.T) {
	books := []entities.Book{{Title: "Dune"}, {Title: "dune2"}, {Title: "Foo"}}

	t.Run("matches", func(t *testing.T) {
		w, response := doJSON(t, newFakeCatalog(books...), http.MethodGet, "/api/books/search?field=title&q=dun", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(2), response["count"])
		assert.Equal(t, "title", response["field"])
	})

	t.Run("empty term is rejected without a query", func(t *testing.T) {
		store := newFakeCatalog(books...)
		w, _ := doJSON(t, store, http.MethodGet, "/api/books/search?field=title", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.searches)
	})

	t.Run("unknown field", func(t *testing.T) {
		store := newFakeCatalog(books...)
		w, _ := doJSON(t, store, http.MethodGet, "/api/books/search?field=id&q=1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.searches)
	})
}

func TestBooksController_GetBookStats(t *testing.T) {
	store := newFakeCatalog(
		entities.Book{Title: "A", ReadStatus: entities.ReadStatusRead},
		entities.Book{Title: "B"},
		entities.Book{Title: "C", ReadStatus: entities.ReadStatusRead},
		entities.Book{Title: "D", ReadStatus: entities.ReadStatusRead},
	)
	w, response := doJSON(t, store, http.MethodGet, "/api/books/stats", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), response["total_books"])
	assert.Equal(t, float64(3), response["read_books"])
	assert.Equal(t, "75.0%", response["read_percentage"])
}
