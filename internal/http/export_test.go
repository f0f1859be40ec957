package http

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/entities"
)

func TestExportController_Downloads(t *testing.T) {
	store := newFakeCatalog(
		entities.Book{Title: "Dune", Author: "Frank Herbert", ReadStatus: entities.ReadStatusRead},
		entities.Book{Title: "Emma", Author: "Jane Austen"},
	)
	router := newTestRouter(store)

	t.Run("csv", func(t *testing.T) {
		w := get(router, "/export/books.csv")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

		records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "Dune", records[1][1])
		assert.Equal(t, "True", records[1][5])
	})

	t.Run("markdown", func(t *testing.T) {
		w := get(router, "/export/books.md")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "| 2 | Emma | Jane Austen |")
	})

	t.Run("api format parameter", func(t *testing.T) {
		w := get(router, "/api/export?format=markdown")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")

		w = get(router, "/api/export?format=xml")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage fault", func(t *testing.T) {
		broken := newFakeCatalog()
		broken.err = errStoreDown
		w := get(newTestRouter(broken), "/export/books.csv")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestExportController_Run(t *testing.T) {
	runner := &fakeRunner{}
	router := NewRouter(RouterConfig{Catalog: newFakeCatalog(), ExportRunner: runner})

	w := httpDo(router, http.MethodPost, "/api/export/run")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, runner.runs)

	w = httpDo(newTestRouter(newFakeCatalog()), http.MethodPost, "/api/export/run")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
