package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Washedglad/electricians-spellbook/internal/models"
	"github.com/Washedglad/electricians-spellbook/internal/store"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	clockStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("84"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type keyMap struct {
	Stop key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Stop, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Stop, k.Quit}}
}

var timerKeys = keyMap{
	Stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop timer"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "leave running"),
	),
}

// TimerModel is the live elapsed-time view for the active timer.
type TimerModel struct {
	store     *store.Store
	entry     models.TimeEntry
	questName string

	width   int
	height  int
	elapsed time.Duration
	help    help.Model

	stopped *models.TimeEntry
}

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// NewTimerModel builds the view for an already-started timer entry.
func NewTimerModel(s *store.Store, entry models.TimeEntry) TimerModel {
	return TimerModel{
		store:     s,
		entry:     entry,
		questName: s.QuestName(entry.QuestID),
		elapsed:   time.Since(entry.StartTime),
		help:      help.New(),
	}
}

func (m TimerModel) Init() tea.Cmd {
	return tick()
}

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.elapsed = time.Since(m.entry.StartTime)
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, timerKeys.Stop):
			if entry, ok := m.store.StopTimer(); ok {
				m.stopped = &entry
			}
			return m, tea.Quit
		case key.Matches(msg, timerKeys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m TimerModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	clock := fmt.Sprintf("%02d:%02d:%02d",
		int(m.elapsed.Hours()),
		int(m.elapsed.Minutes())%60,
		int(m.elapsed.Seconds())%60)

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render("⏱  "+m.questName),
		"",
		clockStyle.Render(clock),
		"",
		faintStyle.Render("started "+m.entry.StartTime.Format("15:04:05")),
	)

	panel := frameStyle.Render(body)
	content := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, panel)
	return lipgloss.JoinVertical(lipgloss.Left, content, m.help.View(timerKeys))
}

// RunTimer starts the interactive timer view and reports the finished
// ledger entry if the user stopped the timer from inside the view.
func RunTimer(s *store.Store, entry models.TimeEntry) (*models.TimeEntry, error) {
	p := tea.NewProgram(NewTimerModel(s, entry), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := finalModel.(TimerModel); ok {
		return m.stopped, nil
	}
	return nil, nil
}
