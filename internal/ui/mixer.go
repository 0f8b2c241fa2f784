package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/config"
	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/transport"
)

// tickMsg drives the position refresh while the transport is playing.
// Ticking stops the moment the state leaves Playing.
type tickMsg time.Time

// stateMsg carries a transport state transition into the UI, including
// the automatic stop at end of song.
type stateMsg transport.StateChange

// subClosedMsg signals that the engine was closed underneath the UI.
type subClosedMsg struct{}

// mixerModel implements the Bubbletea model for the mixer screen.
type mixerModel struct {
	engine *transport.Engine
	sub    *transport.Subscription

	title    string
	names    []string
	selected int

	posBar  progress.Model
	gainBar progress.Model

	width   int
	lastErr error
}

// NewMixerModel creates the mixer screen for a loaded engine.
func NewMixerModel(engine *transport.Engine, title string) tea.Model {
	return &mixerModel{
		engine:  engine,
		sub:     engine.Subscribe(),
		title:   title,
		names:   engine.Registry().TrackNames(),
		posBar:  progress.New(progress.WithDefaultGradient()),
		gainBar: progress.New(progress.WithSolidFill("#FFD75F")),
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *mixerModel) waitState() tea.Cmd {
	return func() tea.Msg {
		select {
		case change := <-m.sub.StateChanged:
			return stateMsg(change)
		case <-m.sub.Done:
			return subClosedMsg{}
		}
	}
}

// Init starts listening for transport events.
func (m *mixerModel) Init() tea.Cmd {
	return m.waitState()
}

// Update handles messages
func (m *mixerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.posBar.Width = min(msg.Width-20, 52)
		m.gainBar.Width = 14
		return m, nil

	case tickMsg:
		if m.engine.State() == transport.StatePlaying {
			return m, tickCmd()
		}
		return m, nil

	case stateMsg:
		cmds := []tea.Cmd{m.waitState()}
		if msg.Current == transport.StatePlaying {
			cmds = append(cmds, tickCmd())
		}
		return m, tea.Batch(cmds...)

	case subClosedMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *mixerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	reg := m.engine.Registry()
	name := m.names[m.selected]

	switch msg.String() {
	case "q", "ctrl+c":
		m.engine.Stop()
		m.engine.Unsubscribe(m.sub)
		return m, tea.Quit

	case " ":
		if m.engine.State() == transport.StatePlaying {
			m.lastErr = m.engine.Pause()
		} else {
			m.lastErr = m.engine.Play()
		}

	case "s":
		m.lastErr = m.engine.Stop()

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.names)-1 {
			m.selected++
		}

	case "left", "h":
		level, err := reg.Gain(name)
		if err == nil {
			m.lastErr = reg.SetGain(name, level-config.GainStep)
		}

	case "right", "l":
		level, err := reg.Gain(name)
		if err == nil {
			m.lastErr = reg.SetGain(name, level+config.GainStep)
		}

	case "m":
		muted, err := reg.Muted(name)
		if err == nil {
			m.lastErr = reg.SetMute(name, !muted)
		}
	}

	return m, nil
}

// View renders the UI
func (m *mixerModel) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Sunny Day Mixer ☀"))
	s.WriteString("  ")
	s.WriteString(faintStyle.Render(m.title))
	s.WriteString("\n\n")

	s.WriteString(m.renderTransport())
	s.WriteString("\n")

	for i, name := range m.names {
		s.WriteString(m.renderTrack(i, name))
	}

	if m.lastErr != nil {
		s.WriteString("\n")
		s.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4500")).Render(m.lastErr.Error()))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(faintStyle.Render("[space] play/pause  [s] stop  [↑/↓] track  [←/→] gain  [m] mute  [q] quit"))
	s.WriteString("\n")

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF9F1C")).
		Padding(1, 2).
		Render(s.String())
}

func (m *mixerModel) renderTransport() string {
	var s strings.Builder

	elapsed := m.engine.Elapsed()
	master := m.engine.MasterDuration()

	s.WriteString(statusStyle.Render(m.engine.State().String()))
	s.WriteString("\n")

	percent := 0.0
	if master > 0 {
		percent = elapsed.Seconds() / master.Seconds()
	}
	s.WriteString(m.posBar.ViewAs(percent))
	s.WriteString(fmt.Sprintf("  %s / %s\n", formatTime(elapsed), formatTime(master)))

	return s.String()
}

func (m *mixerModel) renderTrack(i int, name string) string {
	var s strings.Builder
	reg := m.engine.Registry()

	level, _ := reg.Gain(name)
	muted, _ := reg.Muted(name)
	duration, _ := reg.Duration(name)
	profile, _ := reg.Profile(name)

	prefix := "  "
	label := name
	if i == m.selected {
		prefix = "> "
		label = selectedStyle.Render(name)
	}
	if muted {
		label = mutedTrackStyle.Render(name)
	}

	s.WriteString(prefix)
	s.WriteString(fmt.Sprintf("%-14s", label))
	s.WriteString(m.gainBar.ViewAs(level))
	if muted {
		s.WriteString(fmt.Sprintf(" %4s", "MUTE"))
	} else {
		s.WriteString(fmt.Sprintf(" %3.0f%%", level*100))
	}
	s.WriteString(fmt.Sprintf("  %s  ", formatTime(duration)))
	if profile != nil {
		s.WriteString(renderSpectrum(profile.Spectrum))
	}
	s.WriteString("\n")

	if profile != nil {
		s.WriteString(faintStyle.Render(fmt.Sprintf("    peak %5.1f dB · rms %5.1f dB",
			toDecibels(profile.Peak), toDecibels(profile.RMS))))
		s.WriteString("\n")
	}

	return s.String()
}

// renderSpectrum draws normalized bar heights as block runes.
func renderSpectrum(bars []float64) string {
	if len(bars) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var result strings.Builder
	for _, h := range bars {
		if h < 0 {
			h = 0
		}
		if h > 1 {
			h = 1
		}
		idx := int(h * float64(len(blocks)-1))
		result.WriteRune(blocks[idx])
	}

	return faintStyle.Render(result.String())
}

func toDecibels(level float64) float64 {
	if level <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(level)
}

func formatTime(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
