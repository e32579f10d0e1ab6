package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

const reportErrFallback = "Could not submit the report. Is the backend running?"

type reportFocus int

const (
	focusNumber reportFocus = iota
	focusCategory
	focusDescription
)

// reportModel is the spam-report form: number, category selector and a
// free-text description. The number field can arrive prefilled from
// the results page.
type reportModel struct {
	styles  Styles
	backend Backend

	number      textinput.Model
	categoryIdx int
	description textarea.Model
	focus       reportFocus
	prefilled   bool

	spinner    spinner.Model
	submitting bool
	errMsg     string
	toast      string
}

func newReportModel(styles Styles, backend Backend) reportModel {
	num := textinput.New()
	num.Placeholder = "+14158586273"
	num.CharLimit = 20
	num.Focus()

	desc := textarea.New()
	desc.Placeholder = "What happened? (optional)"
	desc.CharLimit = 500
	desc.SetHeight(4)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return reportModel{
		styles:      styles,
		backend:     backend,
		number:      num,
		description: desc,
		spinner:     sp,
	}
}

// prefill sets the number from a results-page handoff. A prefilled
// number survives submission so repeat reports stay one keypress away.
func (m reportModel) prefill(number string) reportModel {
	m.number.SetValue(number)
	m.prefilled = true
	m.focus = focusCategory
	m.number.Blur()
	return m
}

func (m reportModel) Update(msg tea.Msg) (reportModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "down":
			if m.focus == focusCategory {
				m = m.moveCategory(msg.String())
				return m, nil
			}
			if m.focus == focusDescription {
				break // let the textarea scroll
			}
			fallthrough
		case "ctrl+n":
			m = m.cycleFocus()
			return m, nil
		case "enter":
			if m.focus != focusDescription {
				return m.submit()
			}
		case "ctrl+s":
			return m.submit()
		}

	case reportDoneMsg:
		if m.submitting {
			m.submitting = false
			m.toast = fmt.Sprintf("✅ %s (%d total for this number)", msg.ack.Message, msg.ack.TotalReports)
			m.description.Reset()
			if !m.prefilled {
				m.number.Reset()
			}
			return m, toastTickCmd()
		}
		return m, nil

	case reportFailedMsg:
		if m.submitting {
			m.submitting = false
			m.errMsg = userMessage(msg.err, reportErrFallback)
			// Failure is a transient toast too, dismissed on the same
			// timer as the success message.
			return m, toastTickCmd()
		}
		return m, nil

	case toastExpiredMsg:
		m.toast = ""
		m.errMsg = ""
		return m, nil

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusNumber:
		m.number, cmd = m.number.Update(msg)
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}

func (m reportModel) cycleFocus() reportModel {
	m.number.Blur()
	m.description.Blur()

	m.focus = (m.focus + 1) % 3
	switch m.focus {
	case focusNumber:
		m.number.Focus()
	case focusDescription:
		m.description.Focus()
	}
	return m
}

func (m reportModel) moveCategory(key string) reportModel {
	n := len(domain.ReportTypes)
	if key == "up" {
		m.categoryIdx = (m.categoryIdx - 1 + n) % n
	} else {
		m.categoryIdx = (m.categoryIdx + 1) % n
	}
	return m
}

func (m reportModel) submit() (reportModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	number := strings.TrimSpace(m.number.Value())
	if number == "" {
		m.errMsg = "Enter the phone number to report."
		return m, nil
	}

	report := domain.Report{
		Number:      number,
		Type:        domain.ReportTypes[m.categoryIdx],
		Description: strings.TrimSpace(m.description.Value()),
	}

	m.submitting = true
	m.errMsg = ""
	m.toast = ""
	return m, tea.Batch(reportCmd(m.backend, report), m.spinner.Tick)
}

func (m reportModel) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("Report a Number") + "\n\n")

	b.WriteString(s.Label.Render("Number") + "\n")
	numBox := s.InputBox.Render(m.number.View())
	b.WriteString(numBox + "\n\n")

	b.WriteString(s.Label.Render("Category") + "\n")
	for i, t := range domain.ReportTypes {
		line := "  " + string(t)
		if i == m.categoryIdx {
			marker := "> "
			if m.focus == focusCategory {
				line = s.NavSel.Render(marker + string(t))
			} else {
				line = s.Bold.Render(marker + string(t))
			}
		} else {
			line = s.Muted.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	b.WriteString(s.Label.Render("Description") + "\n")
	b.WriteString(m.description.View() + "\n\n")

	switch {
	case m.submitting:
		b.WriteString(m.spinner.View() + " " + s.Muted.Render("Submitting...") + "\n")
	case m.toast != "":
		b.WriteString(s.Success.Render(m.toast) + "\n")
	case m.errMsg != "":
		b.WriteString(s.Error.Render("✗ "+m.errMsg) + "\n")
	}

	b.WriteString("\n" + s.Muted.Render("up/down: pick category  ctrl+n: next field  enter/ctrl+s: submit"))

	return b.String()
}
