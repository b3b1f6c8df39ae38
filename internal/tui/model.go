// Package tui provides the Bubble Tea password generator interface.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/passtui/internal/export"
	"github.com/verte-zerg/passtui/internal/generator"
	"github.com/verte-zerg/passtui/internal/history"
	"github.com/verte-zerg/passtui/internal/model"
	"github.com/verte-zerg/passtui/internal/strength"
)

// Length bounds enforced by the presentation layer.
const (
	MinLength = 8
	MaxLength = 64
)

// historyDisplayLimit caps how many recent entries the list shows.
const historyDisplayLimit = 50

// chromeHeight is the number of fixed lines around the history viewport.
const chromeHeight = 9

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	passwordStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))

	weakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	strongStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
)

// Model implements the Bubble Tea generator UI.
type Model struct {
	opts  model.Options
	store *history.Store
	gen   *generator.Generator

	password string
	label    model.Strength

	status      string
	statusIsErr bool

	width  int
	height int

	historyView viewport.Model
	ready       bool
}

// NewModel constructs a generator TUI model. The length is clamped to
// the [MinLength, MaxLength] range.
func NewModel(opts model.Options, store *history.Store, gen *generator.Generator) *Model {
	opts.Length = clampLength(opts.Length)
	return &Model{
		opts:  opts,
		store: store,
		gen:   gen,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeHistory()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "u":
			m.opts.Upper = !m.opts.Upper
			return m, nil
		case "l":
			m.opts.Lower = !m.opts.Lower
			return m, nil
		case "d":
			m.opts.Digits = !m.opts.Digits
			return m, nil
		case "s":
			m.opts.Symbols = !m.opts.Symbols
			return m, nil
		case "+", "=":
			m.opts.Length = clampLength(m.opts.Length + 1)
			return m, nil
		case "-", "_":
			m.opts.Length = clampLength(m.opts.Length - 1)
			return m, nil
		case "g", "enter":
			m.generate()
			return m, nil
		case "c":
			m.copyPassword()
			return m, nil
		case "e":
			m.exportHistory()
			return m, nil
		case "up", "down", "pgup", "pgdown", "j", "k":
			var cmd tea.Cmd
			m.historyView, cmd = m.historyView.Update(msg)
			return m, cmd
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("passtui") + "\n\n")
	b.WriteString(m.renderOptions() + "\n\n")
	b.WriteString(m.renderPassword() + "\n")
	b.WriteString(m.renderStatus() + "\n")
	b.WriteString(dimStyle.Render("History (most recent first)") + "\n")
	if m.ready {
		b.WriteString(m.historyView.View() + "\n")
	} else {
		b.WriteString(strings.Join(historyLines(m.store.Recent(historyDisplayLimit)), "\n") + "\n")
	}
	b.WriteString(footerStyle.Render("g generate  c copy  e export  u/l/d/s toggle  +/- length  q quit"))
	return b.String()
}

func (m *Model) renderOptions() string {
	return fmt.Sprintf("Length %d  [%s] Upper  [%s] Lower  [%s] Digits  [%s] Symbols",
		m.opts.Length,
		checkbox(m.opts.Upper),
		checkbox(m.opts.Lower),
		checkbox(m.opts.Digits),
		checkbox(m.opts.Symbols),
	)
}

func checkbox(on bool) string {
	if on {
		return "x"
	}
	return " "
}

func (m *Model) renderPassword() string {
	if m.password == "" {
		return dimStyle.Render("Press g to generate a password.")
	}
	return passwordStyle.Render(m.password) + "  " + strengthStyle(m.label).Render(string(m.label))
}

func (m *Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsErr {
		return errorStyle.Render(m.status)
	}
	return dimStyle.Render(m.status)
}

func (m *Model) generate() {
	password, err := m.gen.Generate(m.opts)
	if err != nil {
		if errors.Is(err, generator.ErrNoCharClasses) {
			m.setError("select at least one character class")
			return
		}
		m.setError(err.Error())
		return
	}
	m.password = password
	m.label = strength.Classify(password)

	entry := model.Entry{
		Password:  password,
		Timestamp: time.Now().Format(model.TimestampLayout),
		Strength:  m.label,
	}
	if err := m.store.Append(entry); err != nil {
		// The password stays on screen for copying even when the
		// history write fails.
		m.setError(fmt.Sprintf("history not saved: %v", err))
	} else {
		m.setStatus("generated")
	}
	m.refreshHistory()
}

func (m *Model) copyPassword() {
	if m.password == "" {
		m.setError("nothing to copy")
		return
	}
	if err := clipboard.WriteAll(m.password); err != nil {
		m.setError(fmt.Sprintf("failed to copy: %v", err))
		return
	}
	m.setStatus("copied to clipboard")
}

func (m *Model) exportHistory() {
	if m.store.Len() == 0 {
		m.setError("history is empty")
		return
	}
	name := fmt.Sprintf("passtui-history-%s.csv", time.Now().Format("20060102-150405"))
	if err := export.WriteCSV(name, m.store.Entries()); err != nil {
		m.setError(fmt.Sprintf("failed to export: %v", err))
		return
	}
	m.setStatus("exported to " + name)
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.statusIsErr = false
}

func (m *Model) setError(status string) {
	m.status = status
	m.statusIsErr = true
}

func (m *Model) resizeHistory() {
	viewHeight := m.height - chromeHeight
	if viewHeight < 3 {
		viewHeight = 3
	}
	if !m.ready {
		m.historyView = viewport.New(m.width, viewHeight)
		m.ready = true
	} else {
		m.historyView.Width = m.width
		m.historyView.Height = viewHeight
	}
	m.refreshHistory()
}

func (m *Model) refreshHistory() {
	if !m.ready {
		return
	}
	m.historyView.SetContent(strings.Join(historyLines(m.store.Recent(historyDisplayLimit)), "\n"))
}

func historyLines(entries []model.Entry) []string {
	if len(entries) == 0 {
		return []string{"No passwords generated yet."}
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s  %s  %s", entry.Timestamp, entry.Password, entry.Strength))
	}
	return lines
}

func strengthStyle(label model.Strength) lipgloss.Style {
	switch label {
	case model.Strong:
		return strongStyle
	case model.Medium:
		return mediumStyle
	default:
		return weakStyle
	}
}

func clampLength(length int) int {
	if length < MinLength {
		return MinLength
	}
	if length > MaxLength {
		return MaxLength
	}
	return length
}
