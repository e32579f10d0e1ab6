package service

import (
	"context"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

type Repository interface {
	AppendReport(ctx context.Context, r domain.SpamReport) error

	ReportsFor(ctx context.Context, e164 string) ([]domain.SpamReport, error)

	AddHistory(ctx context.Context, entry domain.HistoryEntry) error

	RecentHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
}

// LiveCarrier is the answer of an external carrier-lookup API. It
// reflects number portability, unlike the embedded numbering-plan data.
type LiveCarrier struct {
	Carrier  string
	LineType string
}

// CarrierLookup resolves the current carrier of a number through an
// external API. Implementations return (nil, nil) when they have no
// answer; the caller then keeps the offline data.
type CarrierLookup interface {
	Lookup(ctx context.Context, e164 string) (*LiveCarrier, error)
}
