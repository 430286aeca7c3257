// Package tui provides the Bubble Tea typing test interface.
package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/katype/internal/model"
	"github.com/verte-zerg/katype/internal/result"
)

// DefaultReadyText is shown before the timer starts.
const DefaultReadyText = "Be ready"

const (
	readyDelay    = 3 * time.Second
	clockInterval = time.Second
	contentRatio  = 0.70
)

type phase int

const (
	phaseReady phase = iota
	phaseTyping
	phaseDone
)

type readyDoneMsg struct{}

type clockMsg time.Time

// Outcome reports how a test ended once the program has exited.
type Outcome struct {
	Typed     []string
	StartedAt time.Time
	EndedAt   time.Time
	Elapsed   time.Duration
	Aborted   bool
	TimedOut  bool
}

// ElapsedSeconds returns the elapsed time truncated to whole seconds.
func (o Outcome) ElapsedSeconds() int {
	return int(o.Elapsed / time.Second)
}

// Completed reports whether the user submitted the test.
func (o Outcome) Completed() bool {
	return !o.Aborted && !o.TimedOut && !o.EndedAt.IsZero()
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	config model.Config
	words  []string
	input  textinput.Model
	now    func() time.Time

	width  int
	height int

	phase     phase
	startedAt time.Time
	clock     time.Time
	outcome   Outcome
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	missingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	valueStyle       = correctStyle.Copy().Bold(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a typing test model for words.
func NewModel(cfg model.Config, words []string) *Model {
	if cfg.ReadyText == "" {
		cfg.ReadyText = DefaultReadyText
	}
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 0
	input.Focus()
	width, height := TerminalSize()
	return &Model{
		config: cfg,
		words:  words,
		input:  input,
		now:    time.Now,
		width:  width,
		height: height,
		phase:  phaseReady,
	}
}

// Outcome returns the result of the session after the program exits.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Tick(readyDelay, func(time.Time) tea.Msg {
		return readyDoneMsg{}
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.contentWidth()
		return m, nil
	case readyDoneMsg:
		if m.phase != phaseReady {
			return m, nil
		}
		return m, m.startTyping()
	case clockMsg:
		return m, m.handleClock(time.Time(msg))
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.outcome.Aborted = true
			m.phase = phaseDone
			return m, tea.Quit
		case tea.KeyEnter:
			if m.phase != phaseTyping {
				return m, nil
			}
			m.submit()
			return m, tea.Quit
		}
		if m.phase != phaseTyping {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	default:
		if m.phase != phaseTyping {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.phase {
	case phaseReady:
		return m.place(incorrectStyle.Render(m.config.ReadyText), "")
	case phaseTyping:
		styled := buildStyledRunes(m.words, m.input.Value())
		wrapped := wrapStyledRunes(styled, m.contentWidth())
		content := lipgloss.JoinVertical(lipgloss.Left, wrapped, "", m.input.View())
		content = lipgloss.NewStyle().Width(m.contentWidth()).Render(content)
		return m.place(content, m.renderFooter())
	default:
		return ""
	}
}

func (m *Model) startTyping() tea.Cmd {
	m.phase = phaseTyping
	m.startedAt = m.now()
	m.clock = m.startedAt
	m.outcome.StartedAt = m.startedAt
	m.input.Width = m.contentWidth()
	return tea.Batch(textinput.Blink, clockTick())
}

func (m *Model) handleClock(t time.Time) tea.Cmd {
	if m.phase != phaseTyping {
		return nil
	}
	m.clock = t
	if m.config.Timeout > 0 && m.now().Sub(m.startedAt) >= m.config.Timeout {
		m.outcome.TimedOut = true
		m.outcome.Typed = result.SplitTyped(m.input.Value())
		m.outcome.EndedAt = m.now()
		m.outcome.Elapsed = m.outcome.EndedAt.Sub(m.startedAt)
		m.phase = phaseDone
		return tea.Quit
	}
	return clockTick()
}

func (m *Model) submit() {
	ended := m.now()
	m.outcome.Typed = result.SplitTyped(m.input.Value())
	m.outcome.EndedAt = ended
	m.outcome.Elapsed = ended.Sub(m.startedAt)
	m.phase = phaseDone
}

func (m *Model) contentWidth() int {
	width := int(float64(m.width) * contentRatio)
	if width < 1 {
		width = 1
	}
	return width
}

func (m *Model) place(content, footer string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderFooter() string {
	typed := len(result.SplitTyped(m.input.Value()))
	elapsed := int(m.clock.Sub(m.startedAt) / time.Second)
	segments := []string{
		fmt.Sprintf("Words %d/%d", typed, len(m.words)),
		fmt.Sprintf("Time %ds", elapsed),
	}
	if m.config.Timeout > 0 {
		left := int((m.config.Timeout - m.clock.Sub(m.startedAt)) / time.Second)
		segments = append(segments, fmt.Sprintf("Timeout in %ds", max(left, 0)))
	}
	segments = append(segments, "enter: submit · esc: quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}

func clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

// TerminalSize returns the size of stdout, falling back to COLUMNS/LINES
// and then 80x24.
func TerminalSize() (width, height int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		return w, h
	}
	width, height = 80, 24
	if v, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && v > 0 {
		width = v
	}
	if v, err := strconv.Atoi(os.Getenv("LINES")); err == nil && v > 0 {
		height = v
	}
	return width, height
}
