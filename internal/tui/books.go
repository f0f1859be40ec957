package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

type booksScreen struct {
	store  CatalogStore
	books  []entities.Book
	loaded bool
	status statusLine
}

func newBooksScreen(store CatalogStore) *booksScreen {
	return &booksScreen{store: store}
}

func (s *booksScreen) enter() tea.Cmd {
	s.loaded = false
	s.status = statusLine{}
	return s.load()
}

func (s *booksScreen) load() tea.Cmd {
	store := s.store
	return func() tea.Msg {
		books, err := store.ListAll()
		if err != nil {
			return storeErrMsg{err: err}
		}
		return booksLoadedMsg{books: books}
	}
}

func (s *booksScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case booksLoadedMsg:
		s.books = msg.books
		s.loaded = true
		s.status = statusLine{}
		if len(msg.books) == 0 {
			s.status = info(catalog.MessageNoBooks)
		}

	case storeErrMsg:
		s.status = failure(msg)

	case tea.KeyMsg:
		if msg.String() == "r" {
			return s.load()
		}
	}
	return nil
}

func (s *booksScreen) view() string {
	if s.loaded && len(s.books) > 0 {
		return RenderBooks(s.books) + "\n\n " + blurredStyle.Render("r: reload") + "\n"
	}
	if s.status.text == "" {
		return " Loading...\n"
	}
	return s.status.String()
}
