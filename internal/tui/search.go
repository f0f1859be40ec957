package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

const (
	searchField = iota
	searchTerm
)

type searchScreen struct {
	store    CatalogStore
	form     form
	results  []entities.Book
	searched bool
	status   statusLine
}

func newSearchScreen(store CatalogStore) *searchScreen {
	labels := make([]string, 0, len(entities.SearchFields))
	for _, f := range entities.SearchFields {
		labels = append(labels, f.Label())
	}

	s := &searchScreen{
		store: store,
		form: newForm(
			choiceField("Search by", labels...),
			textField("Search term", ""),
		),
	}
	return s
}

func (s *searchScreen) enter() tea.Cmd {
	s.clear()
	s.form.reset()
	s.form.focusIndex = searchTerm
	return s.form.applyFocus()
}

func (s *searchScreen) clear() {
	s.results = nil
	s.searched = false
	s.status = statusLine{}
}

func (s *searchScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case searchDoneMsg:
		s.results = msg.books
		s.searched = true
		s.status = statusLine{}
		if len(msg.books) == 0 {
			s.status = warning(catalog.MessageNoMatches)
		}
		return nil

	case storeErrMsg:
		s.status = failure(msg)
		return nil
	}

	submitted, cmd := s.form.update(msg)
	if !submitted {
		return cmd
	}

	term := s.form.value(searchTerm)
	if term == "" {
		s.clear()
		return nil
	}

	field, err := entities.ParseSearchField(s.form.value(searchField))
	if err != nil {
		s.status = failure(err)
		return nil
	}

	store := s.store
	return func() tea.Msg {
		books, err := store.Search(field, term)
		if err != nil {
			return storeErrMsg{err: err}
		}
		return searchDoneMsg{books: books}
	}
}

func (s *searchScreen) view() string {
	out := s.form.view() + "\n"
	if s.searched && len(s.results) > 0 {
		out += RenderBooks(s.results) + "\n"
	}
	return out + s.status.String()
}
