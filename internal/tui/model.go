package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glimpse/glimpse/internal/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	sevHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	sevMedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	sevLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type statusMsg string

// Model is a compact pre-export review of scanner findings. The user walks
// the list, optionally unmasks excerpts, and either acknowledges the export
// or aborts it.
type Model struct {
	findings []types.Finding
	cursor   int
	masked   bool
	accepted bool
	status   string

	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func NewModel(findings []types.Finding) Model {
	return Model{
		findings: findings,
		masked:   true,
	}
}

// Accepted reports whether the user acknowledged the findings.
func (m Model) Accepted() bool { return m.accepted }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// title + status take a line each
		vh := msg.Height - 2
		if vh < 1 {
			vh = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vh)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vh
		}
		m.viewport.SetContent(m.listContent())
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.accepted = false
			return m, tea.Quit
		case "a":
			m.accepted = true
			return m, tea.Quit
		case "down", "j":
			if m.cursor < len(m.findings)-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "s":
			m.masked = !m.masked
		case "c":
			return m, m.copyPath()
		}
		if m.ready {
			m.viewport.SetContent(m.listContent())
			m.scrollToCursor()
		}
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) scrollToCursor() {
	line := m.cursorLine()
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// cursorLine maps the cursor index to its rendered line, accounting for the
// file header above each group.
func (m Model) cursorLine() int {
	line := 0
	lastPath := ""
	for i, f := range m.findings {
		if f.Path != lastPath {
			line++
			lastPath = f.Path
		}
		if i == m.cursor {
			return line
		}
		line++
	}
	return line
}

func (m Model) copyPath() tea.Cmd {
	if len(m.findings) == 0 {
		return nil
	}
	path := m.findings[m.cursor].Path
	return func() tea.Msg {
		if err := clipboard.WriteAll(path); err != nil {
			return statusMsg("Clipboard unavailable: " + err.Error())
		}
		return statusMsg("Copied " + path)
	}
}

func severityText(s types.Severity) string {
	switch s {
	case types.SevHigh:
		return sevHighStyle.Render("HIGH")
	case types.SevMed:
		return sevMedStyle.Render("MED ")
	default:
		return sevLowStyle.Render("LOW ")
	}
}

func maskExcerpt(s string) string {
	n := len(s)
	if n > 12 {
		n = 12
	}
	return strings.Repeat("*", n)
}

func (m Model) listContent() string {
	if len(m.findings) == 0 {
		return "No findings."
	}
	var b strings.Builder
	lastPath := ""
	for i, f := range m.findings {
		if f.Path != lastPath {
			b.WriteString(fileStyle.Render(f.Path) + "\n")
			lastPath = f.Path
		}
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		excerpt := f.Excerpt
		if m.masked {
			excerpt = maskExcerpt(excerpt)
		}
		loc := "(filename)"
		if f.Line > 0 {
			loc = fmt.Sprintf("line %d", f.Line)
		}
		fmt.Fprintf(&b, "%s%s  %-24s %-9s %s\n", marker, severityText(f.Severity), f.Category, loc, excerpt)
	}
	return b.String()
}

func (m Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("Review findings before export (%d)", len(m.findings)))
	help := statusStyle.Render(" j/k move  s unmask  c copy path  a acknowledge and export  q abort ")
	if m.status != "" {
		help = statusStyle.Render(" " + m.status + " ")
	}
	if !m.ready {
		return title + "\n" + m.listContent() + "\n" + help
	}
	return title + "\n" + m.viewport.View() + "\n" + help
}
