// Package api is the typed HTTP client for the PhoneTracer backend.
// One method per endpoint, one request per call: no retries, no
// caching, no client-side timeouts. The caller surfaces failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Trace looks up number. The backend answers 400 with a detail message
// when the number cannot be parsed.
func (c *Client) Trace(ctx context.Context, number string) (*domain.TraceResult, error) {
	var result domain.TraceResult
	path := "/api/trace?number=" + url.QueryEscape(number)
	if err := c.get(ctx, path, &result, KindNetwork); err != nil {
		return nil, err
	}
	return &result, nil
}

// SubmitReport files a spam/scam report.
func (c *Client) SubmitReport(ctx context.Context, report domain.Report) (*domain.ReportAck, error) {
	var ack domain.ReportAck
	if err := c.post(ctx, "/api/report", report, &ack, KindNetwork); err != nil {
		return nil, err
	}
	return &ack, nil
}

// Recent fetches the lookup history, most recent first.
func (c *Client) Recent(ctx context.Context) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	if err := c.get(ctx, "/api/recent", &entries, KindNetwork); err != nil {
		return nil, err
	}
	return entries, nil
}

// Analyze requests the one-shot AI threat assessment for a trace.
func (c *Client) Analyze(ctx context.Context, trace domain.TraceResult) (*domain.AIAnalysis, error) {
	body := struct {
		TraceData domain.TraceResult `json:"trace_data"`
	}{TraceData: trace}

	var analysis domain.AIAnalysis
	if err := c.post(ctx, "/api/ai/analyze", body, &analysis, KindServiceUnavailable); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// Chat sends one message plus the prior conversation as context.
func (c *Client) Chat(ctx context.Context, message string, history []domain.ChatMessage) (*domain.ChatReply, error) {
	body := struct {
		Message string               `json:"message"`
		History []domain.ChatMessage `json:"history"`
	}{Message: message, History: history}

	var reply domain.ChatReply
	if err := c.post(ctx, "/api/ai/chat", body, &reply, KindServiceUnavailable); err != nil {
		return nil, err
	}
	return &reply, nil
}

// AIStatus reports which engine answers AI requests.
func (c *Client) AIStatus(ctx context.Context) (*domain.AIStatus, error) {
	var status domain.AIStatus
	if err := c.get(ctx, "/api/ai/status", &status, KindServiceUnavailable); err != nil {
		return nil, err
	}
	return &status, nil
}

// Health pings the backend.
func (c *Client) Health(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	return c.get(ctx, "/api/health", &resp, KindNetwork)
}

func (c *Client) get(ctx context.Context, path string, out any, failKind Kind) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &Error{Kind: failKind, Message: "could not build request", cause: err}
	}
	return c.do(req, out, failKind)
}

func (c *Client) post(ctx context.Context, path string, body, out any, failKind Kind) error {
	data, err := json.Marshal(body)
	if err != nil {
		return &Error{Kind: failKind, Message: "could not encode request", cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return &Error{Kind: failKind, Message: "could not build request", cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out, failKind)
}

func (c *Client) do(req *http.Request, out any, failKind Kind) error {
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: failKind, Message: "backend unreachable", cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: failKind, Message: "failed to read response", Status: resp.StatusCode, cause: err}
	}

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, data, failKind)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &Error{
			Kind:    failKind,
			Message: "unexpected response from backend",
			Status:  resp.StatusCode,
			cause:   fmt.Errorf("api: decode response: %w", err),
		}
	}
	return nil
}

// statusError maps an HTTP error status onto the taxonomy: 4xx carries
// the backend's detail message as a validation failure, 5xx takes the
// endpoint's failure kind.
func statusError(status int, body []byte, failKind Kind) *Error {
	var detail struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(body, &detail)

	if status < 500 {
		msg := detail.Detail
		if msg == "" {
			msg = fmt.Sprintf("request rejected (HTTP %d)", status)
		}
		return &Error{Kind: KindValidation, Message: msg, Status: status}
	}

	msg := detail.Detail
	if msg == "" {
		msg = "backend error"
	}
	return &Error{Kind: failKind, Message: msg, Status: status}
}
