package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rgdevment/phone-tracer/internal/ai"
	"github.com/rgdevment/phone-tracer/internal/domain"
	"github.com/rgdevment/phone-tracer/internal/service"
)

type Handler struct {
	service service.Service
	log     *zap.Logger
}

func NewHandler(s service.Service, log *zap.Logger) *Handler {
	return &Handler{
		service: s,
		log:     log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/trace", h.Trace)
	r.Post("/api/report", h.CreateReport)
	r.Get("/api/recent", h.Recent)
	r.Post("/api/ai/analyze", h.Analyze)
	r.Post("/api/ai/chat", h.Chat)
	r.Get("/api/ai/status", h.AIStatus)
	r.Get("/api/health", h.Health)
}

func (h *Handler) Trace(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("number")
	if number == "" {
		writeDetail(w, http.StatusBadRequest, "number query parameter is required")
		return
	}

	result, err := h.service.Trace(r.Context(), number)
	if err != nil {
		h.writeError(w, err, "trace failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	if err := req.Validate(); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	ack, err := h.service.IngestReport(r.Context(), req.toDomain())
	if err != nil {
		h.writeError(w, err, "report failed")
		return
	}

	writeJSON(w, http.StatusOK, ack)
}

func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	history, err := h.service.RecentLookups(r.Context())
	if err != nil {
		h.writeError(w, err, "recent failed")
		return
	}
	if history == nil {
		history = []domain.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	analysis, err := h.service.Analyze(r.Context(), req.TraceData)
	if err != nil {
		h.writeError(w, err, "analyze failed")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	if err := req.Validate(); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := h.service.Chat(r.Context(), req.Message, req.History)
	if err != nil {
		h.writeError(w, err, "chat failed")
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

func (h *Handler) AIStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ai.Status())
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeError(w http.ResponseWriter, err error, msg string) {
	if errors.Is(err, service.ErrInvalidNumber) {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	h.log.Error(msg, zap.Error(err))
	writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}
