package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgdevment/phone-tracer/internal/domain"
	"github.com/rgdevment/phone-tracer/internal/platform/api"
)

// userMessage picks the inline text for a failed call. Validation
// errors surface the backend's own detail; transport and AI outages get
// a fixed line; anything else uses the page's fallback.
func userMessage(err error, fallback string) string {
	switch {
	case api.IsValidation(err):
		return api.UserMessage(err, fallback)
	case api.IsNetwork(err):
		return "Cannot reach the backend. Is it running?"
	case api.IsServiceUnavailable(err):
		return "The AI service is unavailable right now. Try again in a moment."
	default:
		return fallback
	}
}

// Backend is what the pages need from the HTTP client wrapper. The api
// client satisfies it; tests swap in a mock.
type Backend interface {
	Trace(ctx context.Context, number string) (*domain.TraceResult, error)
	SubmitReport(ctx context.Context, report domain.Report) (*domain.ReportAck, error)
	Recent(ctx context.Context) ([]domain.HistoryEntry, error)
	Analyze(ctx context.Context, trace domain.TraceResult) (*domain.AIAnalysis, error)
	Chat(ctx context.Context, message string, history []domain.ChatMessage) (*domain.ChatReply, error)
	AIStatus(ctx context.Context) (*domain.AIStatus, error)
	Health(ctx context.Context) error
}

// Navigation messages, handled by the shell.
type (
	// showResultsMsg navigates to the results page carrying the trace
	// as transient payload. The page is never addressable without one.
	showResultsMsg struct{ result domain.TraceResult }

	// showReportMsg navigates to the report page with a prefilled number.
	showReportMsg struct{ number string }
)

// Data messages returned by backend commands. Trace replies carry the
// page that asked, since both search and history can have a trace in
// flight at the same time.
type (
	traceDoneMsg struct {
		origin Page
		result domain.TraceResult
	}
	traceFailedMsg struct {
		origin Page
		err    error
	}

	reportDoneMsg   struct{ ack domain.ReportAck }
	reportFailedMsg struct{ err error }

	recentDoneMsg   struct{ entries []domain.HistoryEntry }
	recentFailedMsg struct{ err error }

	analysisDoneMsg   struct{ analysis domain.AIAnalysis }
	analysisFailedMsg struct{ err error }

	chatDoneMsg   struct{ reply domain.ChatReply }
	chatFailedMsg struct{ err error }

	aiStatusMsg struct{ status domain.AIStatus }

	backendHealthMsg struct{ up bool }

	toastExpiredMsg struct{}
)

const toastDuration = 3 * time.Second

func traceCmd(b Backend, origin Page, number string) tea.Cmd {
	return func() tea.Msg {
		result, err := b.Trace(context.Background(), number)
		if err != nil {
			return traceFailedMsg{origin: origin, err: err}
		}
		return traceDoneMsg{origin: origin, result: *result}
	}
}

func reportCmd(b Backend, report domain.Report) tea.Cmd {
	return func() tea.Msg {
		ack, err := b.SubmitReport(context.Background(), report)
		if err != nil {
			return reportFailedMsg{err: err}
		}
		return reportDoneMsg{ack: *ack}
	}
}

func recentCmd(b Backend) tea.Cmd {
	return func() tea.Msg {
		entries, err := b.Recent(context.Background())
		if err != nil {
			return recentFailedMsg{err: err}
		}
		return recentDoneMsg{entries: entries}
	}
}

func analyzeCmd(b Backend, trace domain.TraceResult) tea.Cmd {
	return func() tea.Msg {
		analysis, err := b.Analyze(context.Background(), trace)
		if err != nil {
			return analysisFailedMsg{err: err}
		}
		return analysisDoneMsg{analysis: *analysis}
	}
}

func chatCmd(b Backend, message string, history []domain.ChatMessage) tea.Cmd {
	return func() tea.Msg {
		reply, err := b.Chat(context.Background(), message, history)
		if err != nil {
			return chatFailedMsg{err: err}
		}
		return chatDoneMsg{reply: *reply}
	}
}

func aiStatusCmd(b Backend) tea.Cmd {
	return func() tea.Msg {
		status, err := b.AIStatus(context.Background())
		if err != nil {
			// Non-fatal: the assistant page just leaves the engine
			// indicator blank.
			return aiStatusMsg{}
		}
		return aiStatusMsg{status: *status}
	}
}

func healthCmd(b Backend) tea.Cmd {
	return func() tea.Msg {
		return backendHealthMsg{up: b.Health(context.Background()) == nil}
	}
}

func toastTickCmd() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

func navigateCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
