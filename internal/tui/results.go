package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

const analyzeErrFallback = "AI analysis is unavailable right now."

// resultsModel renders one TraceResult handed over as navigation
// payload. Without a payload it only shows a prompt back to search and
// never calls the backend.
type resultsModel struct {
	styles  Styles
	backend Backend

	result *domain.TraceResult

	// AI section. One analysis per page instance: the action is a no-op
	// while a request is pending or a result exists.
	analysis    *domain.AIAnalysis
	analyzing   bool
	analysisErr string
	spinner     spinner.Model
}

func newResultsModel(styles Styles, backend Backend) resultsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return resultsModel{
		styles:  styles,
		backend: backend,
	}
}

// withResult starts a fresh page instance for a new trace payload,
// dropping any previous analysis state.
func (m resultsModel) withResult(result domain.TraceResult) resultsModel {
	m.result = &result
	m.analysis = nil
	m.analyzing = false
	m.analysisErr = ""
	return m
}

func (m resultsModel) Update(msg tea.Msg) (resultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "a":
			return m.startAnalysis()
		case "r":
			if m.result != nil {
				return m, navigateCmd(showReportMsg{number: m.result.E164})
			}
		}

	case analysisDoneMsg:
		if m.analyzing {
			m.analyzing = false
			m.analysis = &msg.analysis
		}
		return m, nil

	case analysisFailedMsg:
		if m.analyzing {
			m.analyzing = false
			m.analysisErr = userMessage(msg.err, analyzeErrFallback)
		}
		return m, nil

	case spinner.TickMsg:
		if m.analyzing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// startAnalysis dispatches the one-shot AI assessment. Repeat presses
// while a request is in flight or a result exists do nothing.
func (m resultsModel) startAnalysis() (resultsModel, tea.Cmd) {
	if m.result == nil || m.analyzing || m.analysis != nil {
		return m, nil
	}

	m.analyzing = true
	m.analysisErr = ""
	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = m.styles.Spinner
	return m, tea.Batch(analyzeCmd(m.backend, *m.result), m.spinner.Tick)
}

func (m resultsModel) View() string {
	s := m.styles

	if m.result == nil {
		return s.Title.Render("No trace to show") + "\n" +
			s.Muted.Render("Run a lookup from the Search page first (Tab to navigate).")
	}

	r := *m.result
	var b strings.Builder

	// Number header.
	validBadge := s.Success.Render("✓ valid")
	if !r.Valid {
		validBadge = s.Error.Render("✗ invalid")
	}
	b.WriteString(s.Title.Render(r.Flag+" "+r.FormattedInternational) + " " + validBadge + "\n\n")

	row := func(label, value string) {
		if value == "" {
			value = "Unknown"
		}
		b.WriteString(s.Label.Render(label) + s.Value.Render(value) + "\n")
	}

	row("E.164", r.E164)
	row("National", r.FormattedNational)
	row("Country", r.CountryName+" ("+r.CountryCode+")")
	row("Location", r.Location)
	row("Line type", r.LineType)
	row("Carrier", r.Carrier+carrierSuffix(s, r))
	if len(r.Timezones) > 0 {
		row("Timezones", strings.Join(r.Timezones, ", "))
	}

	if r.Ported() {
		b.WriteString("\n" + s.Muted.Render("Carrier comes from offline numbering data and may not reflect a ported number.") + "\n")
	}

	// Spam section.
	b.WriteString("\n" + s.RenderDivider(40) + "\n")
	b.WriteString(s.Bold.Render("Community Reports") + "\n")
	if r.SpamReports == 0 {
		b.WriteString(s.Success.Render("✓ No spam reports on record.") + "\n")
	} else {
		b.WriteString(s.Warning.Render(fmt.Sprintf("⚠ %d report(s) filed against this number", r.SpamReports)) + "\n")
		for _, rep := range r.Reports {
			line := "  • " + s.Bold.Render(string(rep.Type))
			if rep.Description != "" {
				line += s.Muted.Render(" — " + rep.Description)
			}
			b.WriteString(line + "\n")
		}
	}

	// AI section.
	b.WriteString("\n" + s.RenderDivider(40) + "\n")
	b.WriteString(s.Bold.Render("AI Risk Analysis") + "\n")
	switch {
	case m.analyzing:
		b.WriteString(m.spinner.View() + " " + s.Muted.Render("Analyzing...") + "\n")
	case m.analysisErr != "":
		b.WriteString(s.Error.Render("✗ "+m.analysisErr) + "\n")
	case m.analysis != nil:
		b.WriteString(m.renderAnalysis(*m.analysis))
	default:
		b.WriteString(s.Muted.Render("Press 'a' to run a one-shot AI risk analysis.") + "\n")
	}

	b.WriteString("\n" + s.Muted.Render("a: analyze  r: report this number"))

	return lipgloss.JoinVertical(lipgloss.Left, b.String())
}

func (m resultsModel) renderAnalysis(a domain.AIAnalysis) string {
	s := m.styles
	var b strings.Builder

	levelBadge := lipgloss.NewStyle().
		Background(RiskBandColor(a.RiskScore)).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 1).
		Bold(true).
		Render(string(a.RiskLevel))

	b.WriteString(s.RenderRiskMeter(a.RiskScore, 24) + "\n")
	b.WriteString(levelBadge + " " + s.Badge.Render(a.ThreatType) + "\n\n")
	b.WriteString(s.Body.Render(a.Analysis) + "\n")

	if len(a.Factors) > 0 {
		b.WriteString("\n")
		for _, f := range a.Factors {
			b.WriteString(s.Muted.Render("  • "+f) + "\n")
		}
	}

	b.WriteString("\n" + s.Info.Render(a.Recommendation) + "\n")

	source := string(a.AISource)
	if a.Model != "" {
		source += " (" + a.Model + ")"
	}
	b.WriteString(s.Muted.Render("source: " + source))

	return s.Card.Render(b.String()) + "\n"
}

func carrierSuffix(s Styles, r domain.TraceResult) string {
	switch r.CarrierSource {
	case domain.CarrierLive:
		return " " + s.Muted.Render("(live)")
	case domain.CarrierOffline:
		return " " + s.Muted.Render("(offline data)")
	default:
		return ""
	}
}
