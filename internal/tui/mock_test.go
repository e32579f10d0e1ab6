package tui

import (
	"context"
	"errors"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

// mockBackend records calls and serves canned answers so page models
// can be driven without a server.
type mockBackend struct {
	traceCalls   []string
	reportCalls  []domain.Report
	recentCalls  int
	analyzeCalls []domain.TraceResult
	chatCalls    []chatCall

	traceResult domain.TraceResult
	recent      []domain.HistoryEntry
	analysis    domain.AIAnalysis
	reply       domain.ChatReply
	ack         domain.ReportAck
	status      domain.AIStatus
	fail        bool
}

type chatCall struct {
	message string
	history []domain.ChatMessage
}

var errMock = errors.New("mock backend failure")

func (m *mockBackend) Trace(ctx context.Context, number string) (*domain.TraceResult, error) {
	m.traceCalls = append(m.traceCalls, number)
	if m.fail {
		return nil, errMock
	}
	return &m.traceResult, nil
}

func (m *mockBackend) SubmitReport(ctx context.Context, report domain.Report) (*domain.ReportAck, error) {
	m.reportCalls = append(m.reportCalls, report)
	if m.fail {
		return nil, errMock
	}
	return &m.ack, nil
}

func (m *mockBackend) Recent(ctx context.Context) ([]domain.HistoryEntry, error) {
	m.recentCalls++
	if m.fail {
		return nil, errMock
	}
	return m.recent, nil
}

func (m *mockBackend) Analyze(ctx context.Context, trace domain.TraceResult) (*domain.AIAnalysis, error) {
	m.analyzeCalls = append(m.analyzeCalls, trace)
	if m.fail {
		return nil, errMock
	}
	return &m.analysis, nil
}

func (m *mockBackend) Chat(ctx context.Context, message string, history []domain.ChatMessage) (*domain.ChatReply, error) {
	m.chatCalls = append(m.chatCalls, chatCall{message: message, history: history})
	if m.fail {
		return nil, errMock
	}
	return &m.reply, nil
}

func (m *mockBackend) AIStatus(ctx context.Context) (*domain.AIStatus, error) {
	if m.fail {
		return nil, errMock
	}
	return &m.status, nil
}

func (m *mockBackend) Health(ctx context.Context) error {
	if m.fail {
		return errMock
	}
	return nil
}
