package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rgdevment/phone-tracer/internal/domain"
	httpHandler "github.com/rgdevment/phone-tracer/internal/platform/http"
	"github.com/rgdevment/phone-tracer/internal/service"
)

type stubService struct {
	traceResult *domain.TraceResult
	traceErr    error
	ack         *domain.ReportAck
	ingested    []domain.Report
	history     []domain.HistoryEntry
}

func (s *stubService) Trace(ctx context.Context, number string) (*domain.TraceResult, error) {
	if s.traceErr != nil {
		return nil, s.traceErr
	}
	return s.traceResult, nil
}

func (s *stubService) IngestReport(ctx context.Context, r domain.Report) (*domain.ReportAck, error) {
	s.ingested = append(s.ingested, r)
	return s.ack, nil
}

func (s *stubService) RecentLookups(ctx context.Context) ([]domain.HistoryEntry, error) {
	return s.history, nil
}

func (s *stubService) Analyze(ctx context.Context, trace domain.TraceResult) (*domain.AIAnalysis, error) {
	return &domain.AIAnalysis{RiskScore: 10, RiskLevel: domain.LevelLow}, nil
}

func (s *stubService) Chat(ctx context.Context, message string, history []domain.ChatMessage) (*domain.ChatReply, error) {
	return &domain.ChatReply{Response: "ok", AISource: domain.SourceRuleBased}, nil
}

func newTestRouter(svc service.Service) chi.Router {
	r := chi.NewRouter()
	httpHandler.NewHandler(svc, zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestTraceRequiresNumberParam(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/trace", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], "number query parameter")
}

func TestTraceInvalidNumberReturns400Detail(t *testing.T) {
	router := newTestRouter(&stubService{traceErr: service.ErrInvalidNumber})

	req := httptest.NewRequest(http.MethodGet, "/api/trace?number=garbage", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, service.ErrInvalidNumber.Error(), body["detail"])
}

func TestTraceReturnsResult(t *testing.T) {
	router := newTestRouter(&stubService{
		traceResult: &domain.TraceResult{E164: "+14155552671", Valid: true, CountryCode: "US"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/trace?number=%2B14155552671", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result domain.TraceResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "+14155552671", result.E164)
}

func TestCreateReportValidation(t *testing.T) {
	cases := []struct {
		Name string
		Body string
	}{
		{"malformed json", `{not json`},
		{"number too short", `{"number": "123", "type": "spam"}`},
		{"unknown type", `{"number": "+14155552671", "type": "annoying"}`},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			svc := &stubService{ack: &domain.ReportAck{}}
			router := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/report", bytes.NewBufferString(tc.Body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, svc.ingested, "invalid requests must not reach the service")
		})
	}
}

func TestCreateReportLowerCasesType(t *testing.T) {
	svc := &stubService{ack: &domain.ReportAck{Message: "Report submitted successfully", TotalReports: 1}}
	router := newTestRouter(svc)

	body := `{"number": "+14155552671", "type": "SCAM", "description": "fake IRS"}`
	req := httptest.NewRequest(http.MethodPost, "/api/report", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.ingested, 1)
	assert.Equal(t, domain.ReportScam, svc.ingested[0].Type)

	var ack domain.ReportAck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.Equal(t, 1, ack.TotalReports)
}

func TestRecentEmptyHistoryIsJSONArray(t *testing.T) {
	router := newTestRouter(&stubService{history: nil})

	req := httptest.NewRequest(http.MethodGet, "/api/recent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestChatRequiresMessage(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", bytes.NewBufferString(`{"message": "  "}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAIStatusAndHealth(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/ai/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var status domain.AIStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "not_loaded", status.State)

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
