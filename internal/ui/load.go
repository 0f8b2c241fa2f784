package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadProgress reports the track currently being fetched and decoded.
type LoadProgress struct {
	Track string
	Index int
	Total int
}

// LoadComplete signals that every stem decoded successfully.
type LoadComplete struct {
	Tracks   []string
	Master   time.Duration
	LoadTime time.Duration
}

// LoadFailed signals that the load aborted; Err names the track.
type LoadFailed struct {
	Err error
}

// LoadModel implements the Bubbletea model for the loading screen.
// After the program finishes the caller inspects Err and Done; a model
// that is neither done nor failed was interrupted by the user.
type LoadModel struct {
	title     string
	bar       progress.Model
	current   LoadProgress
	complete  *LoadComplete
	failed    *LoadFailed
	startTime time.Time
	width     int
}

// NewLoadModel creates the loading screen model.
func NewLoadModel(title string) *LoadModel {
	return &LoadModel{
		title:     title,
		bar:       progress.New(progress.WithDefaultGradient()),
		startTime: time.Now(),
	}
}

// Err returns the load failure, if any, after the program finished.
func (m *LoadModel) Err() error {
	if m.failed != nil {
		return m.failed.Err
	}
	return nil
}

// Done reports whether every stem loaded before the program quit.
func (m *LoadModel) Done() bool {
	return m.complete != nil
}

// Init initializes the model
func (m *LoadModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *LoadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(msg.Width-10, 60)
		return m, nil

	case LoadProgress:
		m.current = msg
		return m, nil

	case LoadComplete:
		m.complete = &msg
		return m, tea.Quit

	case LoadFailed:
		m.failed = &msg
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the UI
func (m *LoadModel) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Sunny Day Mixer ☀"))
	s.WriteString("\n")
	s.WriteString(faintStyle.Render(fmt.Sprintf("Loading %s", m.title)))
	s.WriteString("\n\n")

	if m.current.Total > 0 {
		percent := float64(m.current.Index) / float64(m.current.Total)
		s.WriteString(m.bar.ViewAs(percent))
		s.WriteString("\n\n")
		s.WriteString(faintStyle.Render("Fetching:"))
		s.WriteString(fmt.Sprintf(" %s  (%d/%d)\n", m.current.Track, m.current.Index+1, m.current.Total))
	} else {
		s.WriteString(faintStyle.Render("Starting load...\n"))
	}

	s.WriteString("\n")
	s.WriteString(faintStyle.Render(fmt.Sprintf("Elapsed: %.1fs", time.Since(m.startTime).Seconds())))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF9F1C")).
		Padding(1, 2).
		Render(s.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
