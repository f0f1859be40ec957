package catalog

import (
	"fmt"
	"strings"
)

// View is the single navigation selection of a shell. Exactly one view is
// shown per render.
type View uint8

const (
	ViewAdd View = iota
	ViewRemove
	ViewBooks
	ViewSearch
	ViewStats
)

// Views lists the menu in display order. The first entry is the default.
var Views = []View{ViewAdd, ViewRemove, ViewBooks, ViewSearch, ViewStats}

// DefaultView is shown when no selection has been made.
const DefaultView = ViewAdd

func (v View) Label() string {
	switch v {
	case ViewAdd:
		return "Add Book"
	case ViewRemove:
		return "Remove Book"
	case ViewBooks:
		return "View Books"
	case ViewSearch:
		return "Search Book"
	case ViewStats:
		return "Statistics"
	}
	return fmt.Sprintf("View(%d)", uint8(v))
}

// Slug is the short name used in URLs and CLI commands.
func (v View) Slug() string {
	switch v {
	case ViewAdd:
		return "add"
	case ViewRemove:
		return "remove"
	case ViewBooks:
		return "books"
	case ViewSearch:
		return "search"
	case ViewStats:
		return "stats"
	}
	return ""
}

func (v View) String() string {
	return v.Label()
}

// ParseView accepts a slug or a label, case-insensitively.
func ParseView(s string) (View, bool) {
	s = strings.TrimSpace(s)
	for _, v := range Views {
		if strings.EqualFold(s, v.Slug()) || strings.EqualFold(s, v.Label()) {
			return v, true
		}
	}
	return DefaultView, false
}
