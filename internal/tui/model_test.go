package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

type searchCall struct {
	field entities.SearchField
	term  string
}

type fakeStore struct {
	books       []entities.Book
	nextID      uint
	deleted     []string
	searchCalls []searchCall
	err         error
}

func (f *fakeStore) Insert(book *entities.Book) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	book.ID = f.nextID
	f.books = append(f.books, *book)
	return nil
}

func (f *fakeStore) DeleteByTitle(title string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.deleted = append(f.deleted, title)
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

func (f *fakeStore) ListAll() ([]entities.Book, error) {
	return f.books, f.err
}

func (f *fakeStore) Search(field entities.SearchField, term string) ([]entities.Book, error) {
	f.searchCalls = append(f.searchCalls, searchCall{field: field, term: term})
	if f.err != nil {
		return nil, f.err
	}
	var out []entities.Book
	for _, b := range f.books {
		if b.Title == term || b.Author == term || b.Genre == term {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) CountTotal() (int64, error) {
	return int64(len(f.books)), f.err
}

func (f *fakeStore) CountRead() (int64, error) {
	var read int64
	for _, b := range f.books {
		if b.ReadStatus.IsRead() {
			read++
		}
	}
	return read, f.err
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs to the model in order and returns the final model together
// with the command produced by the last message.
func send(t *testing.T, m tea.Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	model, ok := m.(Model)
	require.True(t, ok)
	return model, cmd
}

// resolve executes a store command and feeds its result back to the model.
func resolve(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	model, _ := send(t, m, cmd())
	return model
}

func TestModel_StartsInMenu(t *testing.T) {
	m := NewModel(&fakeStore{})

	view, shown := m.Active()
	assert.Equal(t, catalog.DefaultView, view)
	assert.False(t, shown)

	out := m.View()
	for i, v := range catalog.Views {
		assert.Contains(t, out, v.Label(), i)
	}
	assert.Contains(t, out, "1. Add Book")
}

func TestModel_NumberKeysOpenViews(t *testing.T) {
	for i, v := range catalog.Views {
		t.Run(v.Label(), func(t *testing.T) {
			m, _ := send(t, NewModel(&fakeStore{}), runes(string(rune('1'+i))))

			active, shown := m.Active()
			assert.True(t, shown)
			assert.Equal(t, v, active)
			assert.Contains(t, m.View(), v.Label())
		})
	}
}

func TestModel_EnterOpensSelectedAndEscReturns(t *testing.T) {
	m, _ := send(t, NewModel(&fakeStore{}), tea.KeyMsg{Type: tea.KeyDown}, enterKey)

	active, shown := m.Active()
	require.True(t, shown)
	assert.Equal(t, catalog.ViewRemove, active)

	m, _ = send(t, m, escKey)
	_, shown = m.Active()
	assert.False(t, shown)
}

func TestModel_Quit(t *testing.T) {
	t.Run("q quits from the menu", func(t *testing.T) {
		m, cmd := send(t, NewModel(&fakeStore{}), runes("q"))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	})

	t.Run("q is text inside a form", func(t *testing.T) {
		m, _ := send(t, NewModel(&fakeStore{}), runes("1"), runes("q"))
		_, shown := m.Active()
		assert.True(t, shown)
		assert.NotEmpty(t, m.View())
	})

	t.Run("ctrl+c quits anywhere", func(t *testing.T) {
		_, cmd := send(t, NewModel(&fakeStore{}), runes("2"), tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}

func TestAddBook(t *testing.T) {
	store := &fakeStore{}
	m, _ := send(t, NewModel(store),
		runes("1"),
		runes("Dune"), enterKey,
		runes("Frank Herbert"), enterKey,
		runes("1965"), enterKey,
		runes("Sci-Fi"), enterKey,
		rightKey, enterKey,
	)
	assert.Empty(t, store.books, "nothing is stored before submit")

	m, cmd := send(t, m, enterKey)
	m = resolve(t, m, cmd)

	require.Len(t, store.books, 1)
	assert.Equal(t, entities.Book{
		ID:         1,
		Title:      "Dune",
		Author:     "Frank Herbert",
		Year:       "1965",
		Genre:      "Sci-Fi",
		ReadStatus: entities.ReadStatusUnread,
	}, store.books[0])
	assert.Contains(t, m.View(), "'Dune' added successfully!")
}

func TestAddBook_DefaultsToRead(t *testing.T) {
	store := &fakeStore{}
	m, _ := send(t, NewModel(store), runes("1"), runes("Emma"))
	for i := 0; i < 5; i++ {
		m, _ = send(t, m, enterKey)
	}

	m, cmd := send(t, m, enterKey)
	resolve(t, m, cmd)

	require.Len(t, store.books, 1)
	assert.Equal(t, entities.ReadStatusRead, store.books[0].ReadStatus)
}

func TestAddBook_StoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	m, _ := send(t, NewModel(store), runes("1"))
	for i := 0; i < 5; i++ {
		m, _ = send(t, m, enterKey)
	}

	m, cmd := send(t, m, enterKey)
	m = resolve(t, m, cmd)

	assert.Contains(t, m.View(), "Error: disk full")
	assert.NotContains(t, m.View(), "added successfully")
}

func TestRemoveBook_AlwaysConfirms(t *testing.T) {
	store := &fakeStore{books: []entities.Book{{ID: 1, Title: "Dune"}}}

	for _, title := range []string{"Dune", "Missing"} {
		m, _ := send(t, NewModel(store), runes("2"), runes(title), enterKey)
		m, cmd := send(t, m, enterKey)
		m = resolve(t, m, cmd)

		assert.Contains(t, m.View(), "'"+title+"' removed successfully!")
	}
	assert.Equal(t, []string{"Dune", "Missing"}, store.deleted)
	assert.Empty(t, store.books)
}

func TestViewBooks(t *testing.T) {
	t.Run("lists every record", func(t *testing.T) {
		store := &fakeStore{books: []entities.Book{
			{ID: 1, Title: "Dune", Author: "Frank Herbert", ReadStatus: entities.ReadStatusRead},
			{ID: 2, Title: "Emma", Author: "Jane Austen"},
		}}
		m, cmd := send(t, NewModel(store), runes("3"))
		m = resolve(t, m, cmd)

		out := m.View()
		assert.Contains(t, out, "Dune")
		assert.Contains(t, out, "Jane Austen")
		assert.NotContains(t, out, catalog.MessageNoBooks)
	})

	t.Run("empty catalog", func(t *testing.T) {
		m, cmd := send(t, NewModel(&fakeStore{}), runes("3"))
		m = resolve(t, m, cmd)
		assert.Contains(t, m.View(), catalog.MessageNoBooks)
	})

	t.Run("store failure", func(t *testing.T) {
		m, cmd := send(t, NewModel(&fakeStore{err: errors.New("locked")}), runes("3"))
		m = resolve(t, m, cmd)
		assert.Contains(t, m.View(), "Error: locked")
	})
}

func TestSearchBook(t *testing.T) {
	books := []entities.Book{
		{ID: 1, Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi"},
		{ID: 2, Title: "Emma", Author: "Jane Austen", Genre: "Romance"},
	}

	t.Run("empty term runs no query", func(t *testing.T) {
		store := &fakeStore{books: books}
		m, _ := send(t, NewModel(store), runes("4"), enterKey)
		m, cmd := send(t, m, enterKey)

		assert.Nil(t, cmd)
		assert.Empty(t, store.searchCalls)
		assert.NotContains(t, m.View(), catalog.MessageNoMatches)
	})

	t.Run("searches the chosen field", func(t *testing.T) {
		store := &fakeStore{books: books}
		m, _ := send(t, NewModel(store),
			runes("4"),
			tea.KeyMsg{Type: tea.KeyShiftTab}, rightKey, tea.KeyMsg{Type: tea.KeyTab},
			runes("Jane Austen"), enterKey,
		)
		m, cmd := send(t, m, enterKey)
		m = resolve(t, m, cmd)

		require.Len(t, store.searchCalls, 1)
		assert.Equal(t, searchCall{field: entities.SearchFieldAuthor, term: "Jane Austen"}, store.searchCalls[0])
		assert.Contains(t, m.View(), "Emma")
	})

	t.Run("no matches", func(t *testing.T) {
		store := &fakeStore{books: books}
		m, _ := send(t, NewModel(store), runes("4"), runes("zzz"), enterKey)
		m, cmd := send(t, m, enterKey)
		m = resolve(t, m, cmd)

		require.Len(t, store.searchCalls, 1)
		assert.Equal(t, entities.SearchFieldTitle, store.searchCalls[0].field)
		assert.Contains(t, m.View(), catalog.MessageNoMatches)
	})
}

func TestStatistics(t *testing.T) {
	store := &fakeStore{books: []entities.Book{
		{Title: "A", ReadStatus: entities.ReadStatusRead},
		{Title: "B", ReadStatus: entities.ReadStatusUnread},
		{Title: "C", ReadStatus: entities.ReadStatusRead},
		{Title: "D", ReadStatus: entities.ReadStatusRead},
	}}
	m, cmd := send(t, NewModel(store), runes("5"))
	m = resolve(t, m, cmd)

	out := m.View()
	assert.Contains(t, out, "Total Books")
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "75.0%")

	m, cmd = send(t, NewModel(&fakeStore{}), runes("5"))
	m = resolve(t, m, cmd)
	assert.Contains(t, m.View(), "0.0%")
}
