package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrlokans/library/internal/catalog"
)

type statsScreen struct {
	store  CatalogStore
	stats  catalog.Stats
	loaded bool
	status statusLine
}

func newStatsScreen(store CatalogStore) *statsScreen {
	return &statsScreen{store: store}
}

func (s *statsScreen) enter() tea.Cmd {
	s.loaded = false
	s.status = statusLine{}
	return s.load()
}

func (s *statsScreen) load() tea.Cmd {
	store := s.store
	return func() tea.Msg {
		stats, err := catalog.LoadStats(store)
		if err != nil {
			return storeErrMsg{err: err}
		}
		return statsLoadedMsg{stats: stats}
	}
}

func (s *statsScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.stats = msg.stats
		s.loaded = true
		s.status = statusLine{}

	case storeErrMsg:
		s.status = failure(msg)

	case tea.KeyMsg:
		if msg.String() == "r" {
			return s.load()
		}
	}
	return nil
}

func (s *statsScreen) view() string {
	if !s.loaded {
		if s.status.text != "" {
			return s.status.String()
		}
		return " Loading...\n"
	}
	return fmt.Sprintf(" Total Books\n %s\n\n Read Percentage\n %s\n\n %s\n",
		metricStyle.Render(fmt.Sprint(s.stats.Total)),
		metricStyle.Render(s.stats.FormattedReadPercentage()),
		blurredStyle.Render("r: reload"),
	)
}
