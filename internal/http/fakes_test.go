package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var errStoreDown = errors.New("disk I/O error")

type searchCall struct {
	field entities.SearchField
	term  string
}

// fakeCatalog is an in-memory CatalogStore recording every call.
type fakeCatalog struct {
	books  []entities.Book
	nextID uint
	err    error

	inserted   []entities.Book
	deleted    []string
	searches   []searchCall
	listCalls  int
	countCalls int
}

func newFakeCatalog(books ...entities.Book) *fakeCatalog {
	f := &fakeCatalog{nextID: 1}
	for _, b := range books {
		b.ID = f.nextID
		f.nextID++
		f.books = append(f.books, b)
	}
	return f
}

func (f *fakeCatalog) Insert(book *entities.Book) error {
	if f.err != nil {
		return f.err
	}
	book.ID = f.nextID
	f.nextID++
	f.books = append(f.books, *book)
	f.inserted = append(f.inserted, *book)
	return nil
}

func (f *fakeCatalog) DeleteByTitle(title string) (int64, error) {
	f.deleted = append(f.deleted, title)
	if f.err != nil {
		return 0, f.err
	}
	kept := f.books[:0]
	var removed int64
	for _, b := range f.books {
		if b.Title == title {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	f.books = kept
	return removed, nil
}

func (f *fakeCatalog) ListAll() ([]entities.Book, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]entities.Book(nil), f.books...), nil
}

func (f *fakeCatalog) Search(field entities.SearchField, term string) ([]entities.Book, error) {
	f.searches = append(f.searches, searchCall{field: field, term: term})
	if f.err != nil {
		return nil, f.err
	}
	var out []entities.Book
	for _, b := range f.books {
		value := map[entities.SearchField]string{
			entities.SearchFieldTitle:  b.Title,
			entities.SearchFieldAuthor: b.Author,
			entities.SearchFieldGenre:  b.Genre,
		}[field]
		if strings.Contains(strings.ToLower(value), strings.ToLower(term)) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeCatalog) CountTotal() (int64, error) {
	f.countCalls++
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.books)), nil
}

func (f *fakeCatalog) CountRead() (int64, error) {
	f.countCalls++
	if f.err != nil {
		return 0, f.err
	}
	var read int64
	for _, b := range f.books {
		if b.ReadStatus.IsRead() {
			read++
		}
	}
	return read, nil
}

type fakeRunner struct {
	runs int
	err  error
	next *time.Time
}

func (f *fakeRunner) RunNow() error {
	f.runs++
	return f.err
}

func (f *fakeRunner) GetNextRunTime() *time.Time {
	return f.next
}

type fakeStatusReader struct {
	values map[string]string
}

func (f fakeStatusReader) GetValues(keys ...string) (map[string]string, error) {
	return f.values, nil
}

type fakeHealth struct {
	err error
}

func (f fakeHealth) Ping() error {
	return f.err
}
