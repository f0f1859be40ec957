package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

const (
	addTitle = iota
	addAuthor
	addYear
	addGenre
	addReadStatus
)

type addScreen struct {
	store  CatalogStore
	form   form
	status statusLine
}

func newAddScreen(store CatalogStore) *addScreen {
	options := make([]string, 0, len(entities.ReadStatusOptions))
	for _, s := range entities.ReadStatusOptions {
		options = append(options, s.String())
	}

	return &addScreen{
		store: store,
		form: newForm(
			textField("Title", "Dune"),
			textField("Author", "Frank Herbert"),
			textField("Year", "1965"),
			textField("Genre", "Sci-Fi"),
			choiceField("Read Status", options...),
		),
	}
}

func (s *addScreen) enter() tea.Cmd {
	s.status = statusLine{}
	s.form.reset()
	return s.form.applyFocus()
}

func (s *addScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case bookAddedMsg:
		s.status = success(catalog.AddedMessage(msg.title))
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
	return s.insert()
}

func (s *addScreen) insert() tea.Cmd {
	status, err := entities.ParseReadStatus(s.form.value(addReadStatus))
	if err != nil {
		s.status = failure(err)
		return nil
	}

	book := entities.Book{
		Title:      s.form.value(addTitle),
		Author:     s.form.value(addAuthor),
		Year:       s.form.value(addYear),
		Genre:      s.form.value(addGenre),
		ReadStatus: status,
	}
	store := s.store
	return func() tea.Msg {
		if err := store.Insert(&book); err != nil {
			return storeErrMsg{err: err}
		}
		log.Printf("Added book %d %q", book.ID, book.Title)
		return bookAddedMsg{title: book.Title}
	}
}

func (s *addScreen) view() string {
	return s.form.view() + "\n" + s.status.String()
}
