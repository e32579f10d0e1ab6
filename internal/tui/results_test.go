package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

func tracedNumber() domain.TraceResult {
	return domain.TraceResult{
		Number:                 "+14158586273",
		FormattedInternational: "+1 415-858-6273",
		FormattedNational:      "(415) 858-6273",
		E164:                   "+14158586273",
		Valid:                  true,
		Possible:               true,
		CountryCode:            "US",
		CountryName:            "United States",
		Flag:                   "🇺🇸",
		Location:               "California",
		Carrier:                "Verizon",
		OriginalCarrier:        "Verizon",
		CarrierSource:          domain.CarrierOffline,
		LineType:               "Mobile",
	}
}

func TestResultsWithoutPayloadShowsPromptOnly(t *testing.T) {
	backend := &mockBackend{}
	m := newResultsModel(DefaultStyles(), backend)

	view := m.View()
	assert.Contains(t, view, "No trace to show")

	// The analyze and report keys are inert with no payload.
	m, cmd := m.Update(keyMsg("a"))
	assert.Nil(t, cmd)
	m, cmd = m.Update(keyMsg("r"))
	assert.Nil(t, cmd)
	assert.Empty(t, backend.analyzeCalls)
}

func TestResultsRendersTraceFields(t *testing.T) {
	m := newResultsModel(DefaultStyles(), &mockBackend{}).withResult(tracedNumber())

	view := m.View()
	assert.Contains(t, view, "+1 415-858-6273")
	assert.Contains(t, view, "United States")
	assert.Contains(t, view, "Verizon")
	assert.Contains(t, view, "California")
	assert.Contains(t, view, "Mobile")
	assert.Contains(t, view, "No spam reports")
}

func TestResultsPortedDisclaimer(t *testing.T) {
	trace := tracedNumber()
	trace.CarrierSource = domain.CarrierOffline
	m := newResultsModel(DefaultStyles(), &mockBackend{}).withResult(trace)
	assert.Contains(t, m.View(), "offline numbering data")

	trace.CarrierSource = domain.CarrierLive
	m = newResultsModel(DefaultStyles(), &mockBackend{}).withResult(trace)
	assert.NotContains(t, m.View(), "offline numbering data")
}

func TestResultsListsReports(t *testing.T) {
	trace := tracedNumber()
	trace.SpamReports = 3
	trace.Reports = []domain.SpamReport{
		{Type: domain.ReportScam, Description: "fake IRS call"},
		{Type: domain.ReportRobocall},
		{Type: domain.ReportSpam},
	}
	m := newResultsModel(DefaultStyles(), &mockBackend{}).withResult(trace)

	view := m.View()
	assert.Contains(t, view, "3 report(s)")
	assert.Contains(t, view, "scam")
	assert.Contains(t, view, "fake IRS call")
}

func TestResultsAnalyzeRunsOnce(t *testing.T) {
	backend := &mockBackend{analysis: domain.AIAnalysis{RiskScore: 42, RiskLevel: domain.LevelMedium}}
	m := newResultsModel(DefaultStyles(), &mockBackend{}).withResult(tracedNumber())
	m.backend = backend

	m, cmd := m.Update(keyMsg("a"))
	require.NotNil(t, cmd)
	assert.True(t, m.analyzing)
	drainCmd(cmd)
	require.Len(t, backend.analyzeCalls, 1)

	// Pressing again while in flight is a no-op.
	m, cmd = m.Update(keyMsg("a"))
	assert.Nil(t, cmd)

	m, _ = m.Update(analysisDoneMsg{analysis: backend.analysis})
	assert.False(t, m.analyzing)
	require.NotNil(t, m.analysis)

	// And once the analysis is shown, so is the key.
	m, cmd = m.Update(keyMsg("a"))
	assert.Nil(t, cmd)
	assert.Len(t, backend.analyzeCalls, 1)
}

func TestResultsNewPayloadResetsAnalysis(t *testing.T) {
	m := newResultsModel(DefaultStyles(), &mockBackend{}).withResult(tracedNumber())
	m.analyzing = true
	m, _ = m.Update(analysisDoneMsg{analysis: domain.AIAnalysis{RiskScore: 42}})
	require.NotNil(t, m.analysis)

	m = m.withResult(tracedNumber())
	assert.Nil(t, m.analysis)
	assert.False(t, m.analyzing)
}

func TestResultsAnalysisRendering(t *testing.T) {
	m := newResultsModel(DefaultStyles(), &mockBackend{}).withResult(tracedNumber())
	m.analyzing = true
	m, _ = m.Update(analysisDoneMsg{analysis: domain.AIAnalysis{
		RiskScore:      67,
		RiskLevel:      domain.LevelHigh,
		ThreatType:     "Scam",
		Factors:        []string{"Multiple community reports (3)"},
		Analysis:       "This number has several concerning risk factors.",
		Recommendation: "Exercise extreme caution.",
		AISource:       domain.SourceRuleBased,
	}})

	view := m.View()
	assert.Contains(t, view, "67/100")
	assert.Contains(t, view, "High")
	assert.Contains(t, view, "Scam")
	assert.Contains(t, view, "Multiple community reports")
	assert.Contains(t, view, "Exercise extreme caution.")
	assert.Contains(t, view, "rule-based")
}

func TestResultsReportKeyNavigatesWithNumber(t *testing.T) {
	m := newResultsModel(DefaultStyles(), &mockBackend{}).withResult(tracedNumber())

	_, cmd := m.Update(keyMsg("r"))
	require.NotNil(t, cmd)

	nav, ok := cmd().(showReportMsg)
	require.True(t, ok)
	assert.Equal(t, "+14158586273", nav.number)
}

func TestResultsAnalyzeFailureShowsMessage(t *testing.T) {
	m := newResultsModel(DefaultStyles(), &mockBackend{}).withResult(tracedNumber())
	m.analyzing = true

	m, _ = m.Update(analysisFailedMsg{err: errMock})

	assert.False(t, m.analyzing)
	assert.True(t, strings.Contains(m.View(), analyzeErrFallback))

	// After a failure the action becomes available again.
	_, cmd := m.Update(keyMsg("a"))
	assert.NotNil(t, cmd)
}
