package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReportType represents the category of an abuse report.
// Using a custom type prevents string typos in the business logic.
// The wire format is always lower-case.
type ReportType string

const (
	ReportSpam         ReportType = "spam"
	ReportScam         ReportType = "scam"
	ReportFraud        ReportType = "fraud"
	ReportTelemarketer ReportType = "telemarketer"
	ReportRobocall     ReportType = "robocall"
	ReportPhishing     ReportType = "phishing"
	ReportHarassment   ReportType = "harassment"
	ReportOther        ReportType = "other"
)

// ReportTypes lists every accepted category in display order.
// The report page renders its selector from this slice; the backend
// validates submissions against it.
var ReportTypes = []ReportType{
	ReportSpam,
	ReportScam,
	ReportFraud,
	ReportTelemarketer,
	ReportRobocall,
	ReportPhishing,
	ReportHarassment,
	ReportOther,
}

// ValidReportType reports whether t (any casing) is an accepted category.
func ValidReportType(t string) bool {
	normalized := ReportType(strings.ToLower(strings.TrimSpace(t)))
	for _, rt := range ReportTypes {
		if rt == normalized {
			return true
		}
	}
	return false
}

// Report is a spam/scam report as submitted by the user.
// It is sent once and discarded after the backend acknowledges it.
type Report struct {
	Number      string     `json:"number"` // E.164-ish, "+" optional
	Type        ReportType `json:"type"`
	Description string     `json:"description"`
}

// SpamReport is a stored community report as returned inside a
// TraceResult. Unlike Report it carries the normalized number and the
// submission timestamp (ISO-8601).
type SpamReport struct {
	ID          uuid.UUID  `json:"id"`
	Number      string     `json:"number"`
	Type        ReportType `json:"type"`
	Description string     `json:"description,omitempty"`
	Timestamp   string     `json:"timestamp"`
}

// NewSpamReport is a factory for the stored form of a submission.
// The caller is expected to have normalized the number to E.164.
func NewSpamReport(e164 string, t ReportType, description string) SpamReport {
	return SpamReport{
		ID:          uuid.New(),
		Number:      e164,
		Type:        t,
		Description: description,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

// ReportAck is the backend acknowledgment for a submitted report.
type ReportAck struct {
	Message      string `json:"message"`
	TotalReports int    `json:"total_reports_for_number"`
}
