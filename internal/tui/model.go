package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/towelWet/TowelHost/internal/color"
	"github.com/towelWet/TowelHost/internal/host"
)

const refreshInterval = 500 * time.Millisecond

// Source provides the host state to display.
type Source interface {
	Snapshot() host.Snapshot
}

// tickMsg triggers a refresh of the snapshot.
type tickMsg time.Time

// statusModel is the BubbleTea model for the host status view.
type statusModel struct {
	src      Source
	snap     host.Snapshot
	theme    color.Theme
	started  time.Time
	now      time.Time
	quitting bool
}

func newStatusModel(src Source, theme color.Theme, started time.Time) statusModel {
	return statusModel{
		src:     src,
		snap:    src.Snapshot(),
		theme:   theme,
		started: started,
		now:     started,
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (statusModel) Init() tea.Cmd {
	return tick()
}

//nolint:ireturn // tea.Model is required by the bubbletea framework
func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.quitting = true

			return m, tea.Quit
		}

	case tickMsg:
		m.snap = m.src.Snapshot()
		m.now = time.Time(msg)

		return m, tick()
	}

	return m, nil
}

func (m statusModel) View() string {
	if m.quitting {
		return ""
	}

	body := Render(m.snap, m.theme, m.now.Sub(m.started))

	return m.theme.Border.Render(body) + "\n" + m.theme.Muted.Render("q: quit") + "\n"
}
