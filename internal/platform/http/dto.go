package http

import (
	"errors"
	"strings"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

type ReportRequest struct {
	Number      string `json:"number"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (r *ReportRequest) Validate() error {
	if len(strings.TrimSpace(r.Number)) < 5 {
		return errors.New("number is too short")
	}
	if !domain.ValidReportType(r.Type) {
		return errors.New("invalid report type")
	}
	return nil
}

type AnalyzeRequest struct {
	TraceData domain.TraceResult `json:"trace_data"`
}

type ChatRequest struct {
	Message string               `json:"message"`
	History []domain.ChatMessage `json:"history"`
}

func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}

func (r *ReportRequest) toDomain() domain.Report {
	return domain.Report{
		Number:      r.Number,
		Type:        domain.ReportType(strings.ToLower(strings.TrimSpace(r.Type))),
		Description: r.Description,
	}
}

// detailResponse is the error envelope: {"detail": "..."}. The hosted
// backend serializes errors this way and the client wrapper parses it,
// so the dev backend must match.
type detailResponse struct {
	Detail string `json:"detail"`
}
