package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const searchErrFallback = "Could not trace that number. Is the backend running?"

// searchModel is the landing page: a country selector plus a national
// number input. It performs no format validation beyond non-empty.
type searchModel struct {
	styles  Styles
	backend Backend

	countryIdx int
	input      textinput.Model
	spinner    spinner.Model

	loading bool
	errMsg  string
}

func newSearchModel(styles Styles, backend Backend) searchModel {
	ti := textinput.New()
	ti.Placeholder = "national number, e.g. 415 858 6273"
	ti.CharLimit = 24
	ti.Width = 32
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return searchModel{
		styles:  styles,
		backend: backend,
		input:   ti,
		spinner: sp,
	}
}

// BuildTraceNumber forms the traced number: dial code plus the national
// number with all whitespace stripped.
func BuildTraceNumber(dialCode, national string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, national)
	return dialCode + stripped
}

func (m searchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m searchModel) Update(msg tea.Msg) (searchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "ctrl+p":
			if m.countryIdx > 0 {
				m.countryIdx--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.countryIdx < len(Countries)-1 {
				m.countryIdx++
			}
			return m, nil
		case "enter":
			return m.submit()
		}

	case traceDoneMsg:
		if msg.origin == PageSearch && m.loading {
			m.loading = false
			m.errMsg = ""
			return m, navigateCmd(showResultsMsg{result: msg.result})
		}
		return m, nil

	case traceFailedMsg:
		if msg.origin == PageSearch && m.loading {
			m.loading = false
			m.errMsg = userMessage(msg.err, searchErrFallback)
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit fires the trace unless one is already in flight or the input
// is empty.
func (m searchModel) submit() (searchModel, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	if strings.TrimSpace(m.input.Value()) == "" {
		m.errMsg = "Enter a phone number first."
		return m, nil
	}

	m.loading = true
	m.errMsg = ""
	number := BuildTraceNumber(Countries[m.countryIdx].DialCode, m.input.Value())
	return m, tea.Batch(traceCmd(m.backend, PageSearch, number), m.spinner.Tick)
}

func (m searchModel) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("Trace a Phone Number") + "\n")
	b.WriteString(s.Muted.Render("Look up carrier, location, line type and spam history.") + "\n\n")

	country := Countries[m.countryIdx]
	selector := s.Bold.Render(country.Flag+" "+country.Name) + " " + s.Muted.Render("("+country.DialCode+")")
	b.WriteString(s.Label.Render("Country") + selector + "  " + s.Muted.Render("↑/↓ to change") + "\n\n")

	b.WriteString(s.InputBox.Render(country.DialCode+" "+m.input.View()) + "\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " " + s.Muted.Render("Tracing...") + "\n")
	} else if m.errMsg != "" {
		b.WriteString(s.Error.Render("✗ "+m.errMsg) + "\n")
	} else {
		b.WriteString(s.Muted.Render("Press Enter to trace.") + "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left, b.String())
}
