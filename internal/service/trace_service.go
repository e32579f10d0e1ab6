package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"

	"github.com/rgdevment/phone-tracer/internal/ai"
	"github.com/rgdevment/phone-tracer/internal/domain"
)

// ErrInvalidNumber is returned when a number cannot be parsed at all.
// Handlers map it to a 400 with this message as the detail.
var ErrInvalidNumber = errors.New("Invalid phone number format. Include country code, e.g. +14158586273")

const (
	recentLimit  = 20
	reportsShown = 5
)

// traceService is the concrete implementation of the Service interface.
// It is unexported (starts with lowercase) to force usage of the Interface.
type traceService struct {
	repo Repository
	live CarrierLookup // nil when no lookup key is configured
}

// NewTraceService is the constructor.
// It initializes the logic layer with its necessary dependencies.
func NewTraceService(repo Repository, live CarrierLookup) Service {
	return &traceService{
		repo: repo,
		live: live,
	}
}

// Trace validates and enriches a number, records it in the lookup
// history, and attaches the community reports filed against it.
func (s *traceService) Trace(ctx context.Context, rawNumber string) (*domain.TraceResult, error) {
	raw := strings.TrimSpace(rawNumber)
	if !strings.HasPrefix(raw, "+") {
		raw = "+" + raw
	}

	pn, err := phonenumbers.Parse(raw, "")
	if err != nil {
		return nil, ErrInvalidNumber
	}

	region := phonenumbers.GetRegionCodeForNumber(pn)
	e164 := phonenumbers.Format(pn, phonenumbers.E164)

	offlineCarrier := carrierName(pn)
	location := locationName(pn)
	timezones, _ := phonenumbers.GetTimezonesForNumber(pn)
	lineType := lineTypeLabel(phonenumbers.GetNumberType(pn))

	carrier := offlineCarrier
	carrierSource := domain.CarrierOffline
	if s.live != nil {
		if lc, err := s.live.Lookup(ctx, e164); err == nil && lc != nil {
			if c := strings.TrimSpace(lc.Carrier); c != "" {
				carrier = c
				carrierSource = domain.CarrierLive
			}
			if lt := strings.TrimSpace(lc.LineType); lt != "" {
				lineType = capitalize(lt)
			}
		}
	}

	reports, err := s.repo.ReportsFor(ctx, e164)
	if err != nil {
		return nil, err
	}
	shown := reports
	if len(shown) > reportsShown {
		shown = shown[len(shown)-reportsShown:]
	}

	result := &domain.TraceResult{
		Number:                 raw,
		FormattedInternational: phonenumbers.Format(pn, phonenumbers.INTERNATIONAL),
		FormattedNational:      phonenumbers.Format(pn, phonenumbers.NATIONAL),
		E164:                   e164,
		Valid:                  phonenumbers.IsValidNumber(pn),
		Possible:               phonenumbers.IsPossibleNumber(pn),
		CountryCode:            region,
		CountryName:            domain.CountryName(region),
		Flag:                   domain.FlagEmoji(region),
		Location:               location,
		Carrier:                carrier,
		OriginalCarrier:        offlineCarrier,
		CarrierSource:          carrierSource,
		LineType:               lineType,
		Timezones:              timezones,
		SpamReports:            len(reports),
		Reports:                shown,
	}

	entry := domain.HistoryEntry{
		Number:    e164,
		Formatted: result.FormattedInternational,
		Country:   result.CountryName,
		Flag:      result.Flag,
		Carrier:   result.Carrier,
		LineType:  result.LineType,
		Location:  result.Location,
		Valid:     result.Valid,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.AddHistory(ctx, entry); err != nil {
		return nil, err
	}

	return result, nil
}

// IngestReport normalizes and stores one community report.
func (s *traceService) IngestReport(ctx context.Context, report domain.Report) (*domain.ReportAck, error) {
	raw := strings.TrimSpace(report.Number)
	if !strings.HasPrefix(raw, "+") {
		raw = "+" + raw
	}

	pn, err := phonenumbers.Parse(raw, "")
	if err != nil {
		return nil, ErrInvalidNumber
	}
	e164 := phonenumbers.Format(pn, phonenumbers.E164)

	rtype := domain.ReportType(strings.ToLower(strings.TrimSpace(string(report.Type))))
	stored := domain.NewSpamReport(e164, rtype, strings.TrimSpace(report.Description))
	if err := s.repo.AppendReport(ctx, stored); err != nil {
		return nil, err
	}

	existing, err := s.repo.ReportsFor(ctx, e164)
	if err != nil {
		return nil, err
	}

	return &domain.ReportAck{
		Message:      "Report submitted successfully",
		TotalReports: len(existing),
	}, nil
}

func (s *traceService) RecentLookups(ctx context.Context) ([]domain.HistoryEntry, error) {
	return s.repo.RecentHistory(ctx, recentLimit)
}

// Analyze re-reads the stored reports for the number so the assessment
// reflects evidence filed after the trace was taken.
func (s *traceService) Analyze(ctx context.Context, trace domain.TraceResult) (*domain.AIAnalysis, error) {
	var reports []domain.SpamReport
	if trace.E164 != "" {
		var err error
		reports, err = s.repo.ReportsFor(ctx, trace.E164)
		if err != nil {
			return nil, err
		}
	}

	analysis := ai.Analyze(trace, reports)
	return &analysis, nil
}

func (s *traceService) Chat(ctx context.Context, message string, history []domain.ChatMessage) (*domain.ChatReply, error) {
	reply := ai.Chat(message, history)
	return &reply, nil
}

func carrierName(pn *phonenumbers.PhoneNumber) string {
	name, err := phonenumbers.GetCarrierForNumber(pn, "en")
	if err != nil || name == "" {
		return "Unknown"
	}
	return name
}

func locationName(pn *phonenumbers.PhoneNumber) string {
	loc, err := phonenumbers.GetGeocodingForNumber(pn, "en")
	if err != nil || loc == "" {
		return "Unknown"
	}
	return loc
}

func lineTypeLabel(t phonenumbers.PhoneNumberType) string {
	switch t {
	case phonenumbers.MOBILE:
		return "Mobile"
	case phonenumbers.FIXED_LINE:
		return "Landline"
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return "Landline/Mobile"
	case phonenumbers.TOLL_FREE:
		return "Toll-Free"
	case phonenumbers.PREMIUM_RATE:
		return "Premium Rate"
	case phonenumbers.VOIP:
		return "VoIP"
	case phonenumbers.PERSONAL_NUMBER:
		return "Personal"
	case phonenumbers.PAGER:
		return "Pager"
	case phonenumbers.UAN:
		return "UAN"
	case phonenumbers.SHARED_COST:
		return "Shared Cost"
	default:
		return "Unknown"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
