package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrlokans/library/internal/catalog"
)

type removeScreen struct {
	store  CatalogStore
	form   form
	status statusLine
}

func newRemoveScreen(store CatalogStore) *removeScreen {
	return &removeScreen{
		store: store,
		form:  newForm(textField("Title", "Exact title to remove")),
	}
}

func (s *removeScreen) enter() tea.Cmd {
	s.status = statusLine{}
	s.form.reset()
	return s.form.applyFocus()
}

func (s *removeScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case bookRemovedMsg:
		s.status = success(catalog.RemovedMessage(msg.title))
		s.form.reset()
		return s.form.applyFocus()

	case storeErrMsg:
		s.status = failure(msg)
		return nil
	}

	submitted, cmd := s.form.update(msg)
	if !submitted {
		return cmd
	}

	title := s.form.value(0)
	store := s.store
	return func() tea.Msg {
		removed, err := store.DeleteByTitle(title)
		if err != nil {
			return storeErrMsg{err: err}
		}
		log.Printf("Removed %d book(s) titled %q", removed, title)
		return bookRemovedMsg{title: title, removed: removed}
	}
}

func (s *removeScreen) view() string {
	return s.form.view() + "\n" + s.status.String()
}
