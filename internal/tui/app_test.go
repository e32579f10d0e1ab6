package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

func TestShellTabCyclesPages(t *testing.T) {
	m := NewModel(&mockBackend{})
	assert.Equal(t, PageSearch, m.page)

	for _, want := range []Page{PageResults, PageReport, PageHistory, PageAssistant, PageSearch} {
		next, _ := m.Update(keyMsg("tab"))
		m = next.(Model)
		assert.Equal(t, want, m.page)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	assert.Equal(t, PageAssistant, m.page, "shift+tab cycles backwards and wraps")
}

func TestShellShowResultsNavigates(t *testing.T) {
	m := NewModel(&mockBackend{})

	next, _ := m.Update(showResultsMsg{result: domain.TraceResult{E164: "+14158586273"}})
	m = next.(Model)

	assert.Equal(t, PageResults, m.page)
	require.NotNil(t, m.results.result)
	assert.Equal(t, "+14158586273", m.results.result.E164)
}

func TestShellShowReportPrefills(t *testing.T) {
	m := NewModel(&mockBackend{})

	next, _ := m.Update(showReportMsg{number: "+14158586273"})
	m = next.(Model)

	assert.Equal(t, PageReport, m.page)
	assert.Equal(t, "+14158586273", m.report.number.Value())
	assert.True(t, m.report.prefilled)
}

func TestShellHistoryVisitTriggersFetch(t *testing.T) {
	backend := &mockBackend{}
	m := NewModel(backend)

	next, cmd := m.switchPage(PageHistory)
	require.NotNil(t, cmd)
	assert.True(t, next.history.loading)
	drainCmd(cmd)
	assert.Equal(t, 1, backend.recentCalls)
}

func TestShellDataMessagesFanOutToRequester(t *testing.T) {
	// A trace fired from search must navigate even if another page is
	// showing when the reply lands.
	m := NewModel(&mockBackend{})
	m.search.loading = true
	m.page = PageAssistant

	_, cmd := m.Update(traceDoneMsg{origin: PageSearch, result: domain.TraceResult{E164: "+14158586273"}})
	require.NotNil(t, cmd)

	found := false
	collectMsgs(cmd, func(msg tea.Msg) {
		if nav, ok := msg.(showResultsMsg); ok {
			found = true
			assert.Equal(t, "+14158586273", nav.result.E164)
		}
	})
	assert.True(t, found, "navigation message missing from the batch")
}

func TestShellConcurrentTracesStayWithTheirPages(t *testing.T) {
	// A search trace and a history re-trace in flight together: each
	// reply must be consumed exactly once, by its requesting page.
	m := NewModel(&mockBackend{})
	m.search.loading = true
	m.history.retracing = true

	next, cmd := m.Update(traceDoneMsg{origin: PageHistory, result: domain.TraceResult{E164: "+442071838750"}})
	m = next.(Model)
	require.NotNil(t, cmd)

	navs := 0
	collectMsgs(cmd, func(msg tea.Msg) {
		if nav, ok := msg.(showResultsMsg); ok {
			navs++
			assert.Equal(t, "+442071838750", nav.result.E164)
		}
	})
	assert.Equal(t, 1, navs, "only the history page navigates")
	assert.True(t, m.search.loading, "the search request is still pending")
	assert.False(t, m.history.retracing)

	next, cmd = m.Update(traceDoneMsg{origin: PageSearch, result: domain.TraceResult{E164: "+14158586273"}})
	m = next.(Model)
	require.NotNil(t, cmd)

	navs = 0
	collectMsgs(cmd, func(msg tea.Msg) {
		if nav, ok := msg.(showResultsMsg); ok {
			navs++
			assert.Equal(t, "+14158586273", nav.result.E164)
		}
	})
	assert.Equal(t, 1, navs)
	assert.False(t, m.search.loading)
}

func TestShellHealthBannerTracksBackend(t *testing.T) {
	m := NewModel(&mockBackend{})
	assert.NotContains(t, m.navbar(), "backend offline")

	next, _ := m.Update(backendHealthMsg{up: false})
	m = next.(Model)
	assert.Contains(t, m.navbar(), "backend offline")
}

func TestShellQuitKey(t *testing.T) {
	m := NewModel(&mockBackend{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// collectMsgs walks a command tree, handing every produced message to fn.
func collectMsgs(cmd tea.Cmd, fn func(tea.Msg)) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			collectMsgs(c, fn)
		}
		return
	}
	fn(msg)
}
