package service

import (
	"context"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

type Service interface {
	Trace(ctx context.Context, rawNumber string) (*domain.TraceResult, error)

	IngestReport(ctx context.Context, report domain.Report) (*domain.ReportAck, error)

	RecentLookups(ctx context.Context) ([]domain.HistoryEntry, error)

	Analyze(ctx context.Context, trace domain.TraceResult) (*domain.AIAnalysis, error)

	Chat(ctx context.Context, message string, history []domain.ChatMessage) (*domain.ChatReply, error)
}
