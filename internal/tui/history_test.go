package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

func TestHistoryFetchesOnEveryVisit(t *testing.T) {
	backend := &mockBackend{}
	m := newHistoryModel(DefaultStyles(), backend)

	m, cmd := m.enter()
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	drainCmd(cmd)
	assert.Equal(t, 1, backend.recentCalls)

	m, _ = m.Update(recentDoneMsg{entries: nil})

	_, cmd = m.enter()
	require.NotNil(t, cmd, "a revisit re-fetches")
	drainCmd(cmd)
	assert.Equal(t, 2, backend.recentCalls)
}

func TestHistoryRefreshReplacesList(t *testing.T) {
	backend := &mockBackend{}
	m := newHistoryModel(DefaultStyles(), backend)
	m = m.setSize(80, 24)

	m, _ = m.Update(recentDoneMsg{entries: []domain.HistoryEntry{
		{Number: "+14158586273", Formatted: "+1 415-858-6273"},
		{Number: "+442071838750", Formatted: "+44 20 7183 8750"},
	}})
	assert.Len(t, m.list.Items(), 2)

	m, cmd := m.Update(keyMsg("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	m, _ = m.Update(recentDoneMsg{entries: []domain.HistoryEntry{
		{Number: "+14155552671", Formatted: "+1 415-555-2671"},
	}})

	require.Len(t, m.list.Items(), 1, "refresh replaces, never appends")
	item := m.list.Items()[0].(historyItem)
	assert.Equal(t, "+14155552671", item.entry.Number)
}

func TestHistoryEnterRetracesSelection(t *testing.T) {
	backend := &mockBackend{traceResult: domain.TraceResult{E164: "+14158586273"}}
	m := newHistoryModel(DefaultStyles(), backend)
	m = m.setSize(80, 24)
	m, _ = m.Update(recentDoneMsg{entries: []domain.HistoryEntry{
		{Number: "+14158586273", Formatted: "+1 415-858-6273"},
	}})

	m, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.retracing)
	drainCmd(cmd)
	require.Len(t, backend.traceCalls, 1)
	assert.Equal(t, "+14158586273", backend.traceCalls[0])

	m, cmd = m.Update(traceDoneMsg{origin: PageHistory, result: backend.traceResult})
	assert.False(t, m.retracing)
	require.NotNil(t, cmd)
	nav, ok := cmd().(showResultsMsg)
	require.True(t, ok)
	assert.Equal(t, "+14158586273", nav.result.E164)
}

func TestHistoryFailureOffersRetry(t *testing.T) {
	m := newHistoryModel(DefaultStyles(), &mockBackend{})
	m.loading = true

	m, _ = m.Update(recentFailedMsg{err: errMock})

	assert.False(t, m.loading)
	assert.Contains(t, m.View(), historyErrFallback)
	assert.Contains(t, m.View(), "retry")
}

func TestHistoryEmptyState(t *testing.T) {
	m := newHistoryModel(DefaultStyles(), &mockBackend{})
	m, _ = m.Update(recentDoneMsg{entries: nil})

	assert.Contains(t, m.View(), "No lookups yet")
}

func TestHistoryItemDescription(t *testing.T) {
	item := historyItem{entry: domain.HistoryEntry{
		Carrier:  "Verizon",
		LineType: "Mobile",
		Location: "California",
		Valid:    true,
	}}
	assert.Equal(t, "Verizon · California", item.Description())

	invalid := historyItem{entry: domain.HistoryEntry{LineType: "Mobile", Valid: false}}
	assert.Equal(t, "Mobile · invalid", invalid.Description())
}
