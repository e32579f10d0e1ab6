package domain

// CarrierSource tells where the carrier field of a TraceResult came
// from. "offline" means the embedded numbering-plan data, which does
// not reflect number portability; "live" means a lookup API answered.
type CarrierSource string

const (
	CarrierLive    CarrierSource = "live"
	CarrierOffline CarrierSource = "offline"
	CarrierUnknown CarrierSource = "unknown"
)

// TraceResult is the full lookup payload for one phone number.
// Created server-side per trace request; the client holds it only for
// the duration of viewing the results page and never mutates it.
type TraceResult struct {
	Number                 string        `json:"number"`
	FormattedInternational string        `json:"formatted_international"`
	FormattedNational      string        `json:"formatted_national"`
	E164                   string        `json:"e164"`
	Valid                  bool          `json:"valid"`
	Possible               bool          `json:"possible"`
	CountryCode            string        `json:"country_code"` // ISO 3166-1 alpha-2
	CountryName            string        `json:"country_name"`
	Flag                   string        `json:"flag"` // emoji
	Location               string        `json:"location"`
	Carrier                string        `json:"carrier"`
	OriginalCarrier        string        `json:"original_carrier"`
	CarrierSource          CarrierSource `json:"carrier_source"`
	LineType               string        `json:"line_type"`
	Timezones              []string      `json:"timezones"`
	SpamReports            int           `json:"spam_reports"`
	Reports                []SpamReport  `json:"reports"`
}

// Ported reports whether the displayed carrier may be stale due to
// mobile number portability. Only a live lookup reflects porting.
func (t TraceResult) Ported() bool {
	return t.CarrierSource == CarrierOffline
}

// HistoryEntry is one past lookup as returned by the recent endpoint.
// Read-only on the client; a refresh replaces the whole list instead
// of merging into it.
type HistoryEntry struct {
	Number    string `json:"number"`
	Formatted string `json:"formatted,omitempty"`
	Country   string `json:"country,omitempty"`
	Flag      string `json:"flag,omitempty"`
	Carrier   string `json:"carrier,omitempty"`
	LineType  string `json:"line_type,omitempty"`
	Location  string `json:"location,omitempty"`
	Valid     bool   `json:"valid"`
	Timestamp string `json:"timestamp"` // ISO-8601
}
