package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/katype/internal/model"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestModel(cfg model.Config, words []string) (*Model, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := NewModel(cfg, words)
	m.now = clock.now
	return m, clock
}

func TestModelSubmitRecordsOutcome(t *testing.T) {
	m, clock := newTestModel(model.Config{}, []string{"the", "cat"})
	if m.View() == "" {
		t.Fatalf("expected ready text view")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("enter must be ignored before the test starts")
	}

	m.Update(readyDoneMsg{})
	if m.phase != phaseTyping {
		t.Fatalf("expected typing phase after ready delay")
	}
	m.input.SetValue("  the   cat ")
	clock.t = clock.t.Add(10*time.Second + 700*time.Millisecond)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit command on submit")
	}
	out := m.Outcome()
	if !out.Completed() {
		t.Fatalf("expected completed outcome: %+v", out)
	}
	if len(out.Typed) != 2 || out.Typed[0] != "the" || out.Typed[1] != "cat" {
		t.Fatalf("unexpected typed words %q", out.Typed)
	}
	if out.ElapsedSeconds() != 10 {
		t.Fatalf("expected elapsed seconds truncated to 10, got %d", out.ElapsedSeconds())
	}
}

func TestModelEscAborts(t *testing.T) {
	m, _ := newTestModel(model.Config{}, []string{"a"})
	m.Update(readyDoneMsg{})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	out := m.Outcome()
	if !out.Aborted || out.Completed() {
		t.Fatalf("expected aborted outcome: %+v", out)
	}
}

func TestModelTimeout(t *testing.T) {
	m, clock := newTestModel(model.Config{Timeout: 5 * time.Second}, []string{"a", "b"})
	m.Update(readyDoneMsg{})

	clock.t = clock.t.Add(2 * time.Second)
	if _, cmd := m.Update(clockMsg(clock.t)); cmd == nil {
		t.Fatalf("expected another clock tick before timeout")
	}
	if m.Outcome().TimedOut {
		t.Fatalf("timed out too early")
	}

	clock.t = clock.t.Add(3 * time.Second)
	m.Update(clockMsg(clock.t))
	out := m.Outcome()
	if !out.TimedOut || out.Completed() {
		t.Fatalf("expected timed out outcome: %+v", out)
	}
}

func TestModelDefaultReadyText(t *testing.T) {
	m, _ := newTestModel(model.Config{}, nil)
	if m.config.ReadyText != DefaultReadyText {
		t.Fatalf("expected default ready text, got %q", m.config.ReadyText)
	}
}
