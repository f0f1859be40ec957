package tui

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

const (
	listHeight   = 12
	defaultWidth = 20
)

// CatalogStore is the catalog the terminal shell works against.
type CatalogStore interface {
	Insert(book *entities.Book) error
	DeleteByTitle(title string) (int64, error)
	ListAll() ([]entities.Book, error)
	Search(field entities.SearchField, term string) ([]entities.Book, error)
	CountTotal() (int64, error)
	CountRead() (int64, error)
}

// screen is one of the five views. enter is called every time the view is
// selected from the menu.
type screen interface {
	enter() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	view() string
}

type menuItem struct {
	view catalog.View
}

func (i menuItem) FilterValue() string { return i.view.Label() }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(menuItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.view.Label())

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + s[0])
		}
	}

	_, _ = fmt.Fprint(w, fn(str))
}

// Model is the root bubbletea model: a numbered menu and the active view.
type Model struct {
	menu     list.Model
	screens  map[catalog.View]screen
	active   catalog.View
	inMenu   bool
	quitting bool
}

func NewModel(store CatalogStore) Model {
	items := make([]list.Item, 0, len(catalog.Views))
	for _, v := range catalog.Views {
		items = append(items, menuItem{view: v})
	}

	l := list.New(items, itemDelegate{}, defaultWidth, listHeight)
	l.Title = "Library"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return Model{
		menu: l,
		screens: map[catalog.View]screen{
			catalog.ViewAdd:    newAddScreen(store),
			catalog.ViewRemove: newRemoveScreen(store),
			catalog.ViewBooks:  newBooksScreen(store),
			catalog.ViewSearch: newSearchScreen(store),
			catalog.ViewStats:  newStatsScreen(store),
		},
		active: catalog.DefaultView,
		inMenu: true,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Active reports the selected view and whether it is shown instead of the menu.
func (m Model) Active() (catalog.View, bool) {
	return m.active, !m.inMenu
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.inMenu {
			return m.updateMenu(msg)
		}
		if msg.String() == "esc" {
			m.inMenu = true
			return m, nil
		}
	}

	if m.inMenu {
		return m, nil
	}
	return m, m.screens[m.active].update(msg)
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keypress := msg.String(); keypress {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		if i, ok := m.menu.SelectedItem().(menuItem); ok {
			return m.open(i.view)
		}
		return m, nil

	case "1", "2", "3", "4", "5":
		idx := int(keypress[0] - '1')
		m.menu.Select(idx)
		return m.open(catalog.Views[idx])
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) open(v catalog.View) (tea.Model, tea.Cmd) {
	m.active = v
	m.inMenu = false
	return m, m.screens[v].enter()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.inMenu {
		return "\n" + m.menu.View()
	}
	return fmt.Sprintf("\n %s\n\n%s\n %s\n",
		headerStyle.Render(m.active.Label()),
		m.screens[m.active].view(),
		blurredStyle.Render("esc: back to menu • ctrl+c: quit"),
	)
}

// Run starts the terminal shell in the alternate screen and blocks until
// the user quits. Log output would corrupt the display, so it goes to
// logPath when set and is discarded otherwise.
func Run(store CatalogStore, logPath string) error {
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "tui")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(NewModel(store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal shell: %w", err)
	}
	return nil
}
