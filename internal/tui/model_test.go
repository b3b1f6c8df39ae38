package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/passtui/internal/generator"
	"github.com/verte-zerg/passtui/internal/history"
	"github.com/verte-zerg/passtui/internal/model"
)

func newTestModel(t *testing.T, opts model.Options) *Model {
	t.Helper()
	store := history.New(filepath.Join(t.TempDir(), "history.json"))
	return NewModel(opts, store, generator.New())
}

func pressKey(t *testing.T, m *Model, key rune) *Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}})
	next, ok := updated.(*Model)
	if !ok {
		t.Fatalf("unexpected model type %T", updated)
	}
	return next
}

func TestToggleKeys(t *testing.T) {
	m := newTestModel(t, model.Options{Length: 12, Upper: true, Lower: true, Digits: true, Symbols: true})
	m = pressKey(t, m, 'u')
	if m.opts.Upper {
		t.Fatalf("expected upper to toggle off")
	}
	m = pressKey(t, m, 'u')
	if !m.opts.Upper {
		t.Fatalf("expected upper to toggle back on")
	}
	m = pressKey(t, m, 's')
	if m.opts.Symbols {
		t.Fatalf("expected symbols to toggle off")
	}
}

func TestLengthClamped(t *testing.T) {
	m := newTestModel(t, model.Options{Length: 100, Lower: true})
	if m.opts.Length != MaxLength {
		t.Fatalf("expected length clamped to %d, got %d", MaxLength, m.opts.Length)
	}
	m = pressKey(t, m, '+')
	if m.opts.Length != MaxLength {
		t.Fatalf("expected length to stay at %d, got %d", MaxLength, m.opts.Length)
	}

	m = newTestModel(t, model.Options{Length: 1, Lower: true})
	if m.opts.Length != MinLength {
		t.Fatalf("expected length clamped to %d, got %d", MinLength, m.opts.Length)
	}
	m = pressKey(t, m, '-')
	if m.opts.Length != MinLength {
		t.Fatalf("expected length to stay at %d, got %d", MinLength, m.opts.Length)
	}
}

func TestGenerateRecordsHistory(t *testing.T) {
	m := newTestModel(t, model.Options{Length: 12, Upper: true, Lower: true, Digits: true, Symbols: true})
	m = pressKey(t, m, 'g')
	if len(m.password) != 12 {
		t.Fatalf("expected 12-character password, got %q", m.password)
	}
	if m.label == "" {
		t.Fatalf("expected a strength label")
	}
	if m.store.Len() != 1 {
		t.Fatalf("expected 1 history entry, got %d", m.store.Len())
	}
	entry := m.store.Entries()[0]
	if entry.Password != m.password || entry.Strength != m.label {
		t.Fatalf("history entry mismatch: %+v", entry)
	}
}

func TestGenerateWithoutClassesShowsError(t *testing.T) {
	m := newTestModel(t, model.Options{Length: 12})
	m = pressKey(t, m, 'g')
	if !m.statusIsErr {
		t.Fatalf("expected an error status, got %q", m.status)
	}
	if m.password != "" {
		t.Fatalf("expected no password, got %q", m.password)
	}
	if m.store.Len() != 0 {
		t.Fatalf("expected empty history, got %d entries", m.store.Len())
	}
}

func TestHistoryLines(t *testing.T) {
	lines := historyLines(nil)
	if len(lines) != 1 || lines[0] != "No passwords generated yet." {
		t.Fatalf("unexpected placeholder: %v", lines)
	}
	lines = historyLines([]model.Entry{
		{Password: "abcdefgh", Timestamp: "2025-01-02 03:04:05", Strength: model.Weak},
	})
	if lines[0] != "2025-01-02 03:04:05  abcdefgh  Weak" {
		t.Fatalf("unexpected line: %q", lines[0])
	}
}
