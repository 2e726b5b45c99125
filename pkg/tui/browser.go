// Package tui is the interactive table browser behind "qstr browse".
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DrSkyle/qstr/pkg/report"
	"github.com/DrSkyle/qstr/pkg/sys/intern"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
)

// Header and footer lines around the viewport.
const chromeHeight = 3

type keyMap struct {
	Quit   key.Binding
	Filter key.Binding
	Clear  key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filter")),
}

// Model browses dump entries and narrows them with a CEL filter.
type Model struct {
	all   []intern.Entry
	shown []intern.Entry

	filter  string
	input   string
	editing bool
	err     error

	vp    viewport.Model
	ready bool
}

// NewModel returns a browser over entries.
func NewModel(entries []intern.Entry) Model {
	return Model{all: entries, shown: entries}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = h
		}
		m.vp.SetContent(m.render())
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.edit(msg), nil
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Filter):
			m.editing = true
			m.input = m.filter
			return m, nil
		case key.Matches(msg, keys.Clear):
			return m.apply(""), nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// edit handles a key while the filter prompt is open.
func (m Model) edit(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		return m.apply(m.input)
	case tea.KeyEsc:
		m.editing = false
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m
}

// apply compiles expr and narrows the view. A bad expression keeps the
// previous view and shows the error.
func (m Model) apply(expr string) Model {
	m.err = nil
	if strings.TrimSpace(expr) == "" {
		m.filter = ""
		m.shown = m.all
	} else {
		f, err := report.CompileFilter(expr)
		if err == nil {
			var shown []intern.Entry
			if shown, err = f.Apply(m.all); err == nil {
				m.filter = expr
				m.shown = shown
			}
		}
		m.err = err
	}
	if m.ready {
		m.vp.SetContent(m.render())
		m.vp.GotoTop()
	}
	return m
}

func (m Model) render() string {
	var sb strings.Builder
	if err := report.WriteEntries(&sb, m.shown, report.FormatText); err != nil {
		return err.Error()
	}
	return sb.String()
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var status string
	switch {
	case m.editing:
		status = "where: " + m.input + "█"
	case m.err != nil:
		status = errStyle.Render(m.err.Error())
	case m.filter != "":
		status = dimStyle.Render("where: " + m.filter)
	default:
		status = dimStyle.Render("no filter")
	}

	title := titleStyle.Render(fmt.Sprintf("QSTR %d/%d strings", len(m.shown), len(m.all)))
	help := dimStyle.Render("/ filter • c clear • ↑/↓ scroll • q quit")
	return title + "\n" + status + "\n" + m.vp.View() + "\n" + help
}

// Shown returns the entries that pass the current filter.
func (m Model) Shown() []intern.Entry {
	return m.shown
}

// Filter returns the applied filter expression.
func (m Model) Filter() string {
	return m.filter
}

// Err returns the error from the last filter that failed to apply.
func (m Model) Err() error {
	return m.err
}
