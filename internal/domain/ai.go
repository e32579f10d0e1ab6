package domain

// RiskLevel buckets a risk score for display (badge color, wording).
type RiskLevel string

const (
	LevelLow      RiskLevel = "Low"      // score 0-24
	LevelMedium   RiskLevel = "Medium"   // score 25-44
	LevelHigh     RiskLevel = "High"     // score 45-69
	LevelCritical RiskLevel = "Critical" // score 70-100
)

// LevelForScore maps a 0-100 risk score onto its RiskLevel band.
func LevelForScore(score int) RiskLevel {
	switch {
	case score >= 70:
		return LevelCritical
	case score >= 45:
		return LevelHigh
	case score >= 25:
		return LevelMedium
	default:
		return LevelLow
	}
}

// AISource tells which engine produced an answer: a local LLM or the
// rule-based fallback.
type AISource string

const (
	SourceLLM       AISource = "llm"
	SourceRuleBased AISource = "rule-based"
)

// AIAnalysis is the one-shot threat assessment for a traced number.
// Computed once per results-page visit, never persisted client-side.
type AIAnalysis struct {
	RiskScore      int       `json:"risk_score"` // 0-100
	RiskLevel      RiskLevel `json:"risk_level"`
	ThreatType     string    `json:"threat_type"`
	Factors        []string  `json:"factors"`
	Analysis       string    `json:"analysis"`
	Recommendation string    `json:"recommendation"`
	AISource       AISource  `json:"ai_source"`
	Model          string    `json:"model,omitempty"`
	AnalyzedAt     string    `json:"analyzed_at"` // ISO-8601
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleUser ChatRole = "user"
	RoleAI   ChatRole = "ai"
)

// ChatMessage is one turn of the safety-assistant conversation. The
// full sequence-so-far is resent as context with every new message; no
// server-side session exists.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ChatReply is the assistant's answer to one chat message.
type ChatReply struct {
	Response   string   `json:"response"`
	Confidence float64  `json:"confidence"`
	AISource   AISource `json:"ai_source"`
	Model      string   `json:"model,omitempty"`
	Timestamp  string   `json:"timestamp"` // ISO-8601
}

// AIStatus describes the state of the analysis engine.
type AIStatus struct {
	State     string `json:"state"` // not_loaded, loading, ready, error
	Error     string `json:"error,omitempty"`
	ModelName string `json:"model_name,omitempty"`
}
