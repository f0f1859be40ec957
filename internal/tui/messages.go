package tui

import (
	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

type bookAddedMsg struct{ title string }

type bookRemovedMsg struct {
	title   string
	removed int64
}

type booksLoadedMsg struct{ books []entities.Book }

type searchDoneMsg struct{ books []entities.Book }

type statsLoadedMsg struct{ stats catalog.Stats }

type storeErrMsg struct{ err error }

func (e storeErrMsg) Error() string { return e.err.Error() }

// statusLine is the single message line shown under a form.
type statusLine struct {
	text  string
	style func(...string) string
}

func (s statusLine) String() string {
	if s.text == "" {
		return ""
	}
	return " " + s.style(s.text) + "\n"
}

func success(text string) statusLine { return statusLine{text: text, style: successStyle.Render} }
func info(text string) statusLine    { return statusLine{text: text, style: infoStyle.Render} }
func warning(text string) statusLine { return statusLine{text: text, style: warningStyle.Render} }

func failure(err error) statusLine {
	return statusLine{text: "Error: " + err.Error(), style: errorStyle.Render}
}
