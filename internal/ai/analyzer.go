// Package ai implements the rule-based threat analysis and safety-chat
// engines behind the /api/ai endpoints of the local dev backend. The
// production service fronts these with a local LLM; this package is the
// heuristic fallback, and answers mark themselves as such via ai_source.
package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

// Country tiers follow known telecom-fraud hotspot lists.
var highRiskCountries = map[string]bool{
	"NG": true, "GH": true, "CI": true, "CM": true, "SN": true,
	"PK": true, "BD": true, "IN": true,
	"RU": true, "UA": true,
	"PH": true, "ID": true,
}

var mediumRiskCountries = map[string]bool{
	"CN": true, "BR": true, "MX": true, "CO": true, "VE": true,
	"EG": true, "DZ": true, "MA": true, "TN": true,
	"TR": true, "IR": true, "IQ": true,
	"RO": true, "BG": true, "AL": true,
}

var severeKeywords = []string{
	"bank", "account", "password", "ssn", "social security", "irs", "fbi",
	"arrest", "warrant", "court", "wire transfer", "bitcoin", "crypto",
	"gift card", "western union", "moneygram", "ransom", "blackmail",
	"threaten", "kidnap", "extort",
}

var moderateKeywords = []string{
	"spam", "robot", "automated", "recording", "press 1", "free",
	"winner", "congratulations", "prize", "vacation", "offer",
	"insurance", "warranty", "extend", "solar", "energy",
	"debt", "loan", "credit", "rate", "lower",
}

// reportSeverity weights each report category when summing evidence.
var reportSeverity = map[domain.ReportType]int{
	domain.ReportFraud:        30,
	domain.ReportScam:         28,
	domain.ReportPhishing:     25,
	domain.ReportHarassment:   20,
	domain.ReportRobocall:     12,
	domain.ReportTelemarketer: 10,
	domain.ReportSpam:         8,
	domain.ReportOther:        5,
}

const maxFactors = 6

// Analyze produces the threat assessment for a traced number given the
// community reports filed against it.
func Analyze(trace domain.TraceResult, reports []domain.SpamReport) domain.AIAnalysis {
	score := 0
	var factors []string

	// Factor 1: community reports (0-35 points) plus severity/keywords.
	volumePts, volumeFactors := scoreReportVolume(trace.SpamReports)
	score += volumePts
	factors = append(factors, volumeFactors...)

	typePts := 0
	for _, r := range reports {
		sev, ok := reportSeverity[domain.ReportType(strings.ToLower(string(r.Type)))]
		if !ok {
			sev = 5
		}
		typePts += sev

		desc := strings.ToLower(r.Description)
		for _, kw := range severeKeywords {
			if strings.Contains(desc, kw) {
				score += 5
				factors = append(factors, fmt.Sprintf("Severe keyword detected: '%s' in report", kw))
				break
			}
		}
		for _, kw := range moderateKeywords {
			if strings.Contains(desc, kw) {
				score += 2
				break
			}
		}
	}
	if typePts > 0 {
		score += min(typePts, 20)
	}

	// Factor 2: number validity (0-15 points).
	if !trace.Valid {
		score += 15
		factors = append(factors, "Number flagged as invalid/not active")
	} else if !trace.Possible {
		score += 10
		factors = append(factors, "Number format is not possible for this region")
	}

	// Factor 3: line type (0-15 points).
	linePts, lineFactor := scoreLineType(trace.LineType)
	score += linePts
	if lineFactor != "" {
		factors = append(factors, lineFactor)
	}

	// Factor 4: country risk (0-15 points).
	countryName := trace.CountryName
	if countryName == "" {
		countryName = "Unknown"
	}
	switch {
	case highRiskCountries[trace.CountryCode]:
		score += 15
		factors = append(factors, fmt.Sprintf("Originates from high-risk telecom fraud region (%s)", countryName))
	case mediumRiskCountries[trace.CountryCode]:
		score += 8
		factors = append(factors, fmt.Sprintf("Originates from medium-risk region (%s)", countryName))
	default:
		factors = append(factors, fmt.Sprintf("Country risk: normal (%s)", countryName))
	}

	// Factor 5: carrier heuristics (0-10 points).
	carrier := strings.ToLower(trace.Carrier)
	switch {
	case carrier == "" || carrier == "unknown":
		score += 10
		factors = append(factors, "Carrier is unknown - may indicate a virtual or disposable number")
	case strings.Contains(carrier, "virtual") || strings.Contains(carrier, "voip") || strings.Contains(carrier, "internet"):
		score += 8
		factors = append(factors, fmt.Sprintf("Virtual/internet-based carrier detected: %s", trace.Carrier))
	}

	// Factor 6: number porting (0-5 points).
	if trace.OriginalCarrier != "" && trace.Carrier != "" &&
		trace.OriginalCarrier != trace.Carrier &&
		!strings.EqualFold(trace.Carrier, "unknown") {
		score += 5
		factors = append(factors, fmt.Sprintf("Number was ported from %s to %s", trace.OriginalCarrier, trace.Carrier))
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	level := domain.LevelForScore(score)
	threat := threatType(trace, reports, score)

	if len(factors) > maxFactors {
		factors = factors[:maxFactors]
	}

	return domain.AIAnalysis{
		RiskScore:      score,
		RiskLevel:      level,
		ThreatType:     threat,
		Factors:        factors,
		Analysis:       buildAnalysis(trace, factors, level),
		Recommendation: buildRecommendation(level),
		AISource:       domain.SourceRuleBased,
		AnalyzedAt:     time.Now().UTC().Format(time.RFC3339),
	}
}

// scoreReportVolume converts the community report count into points.
func scoreReportVolume(count int) (int, []string) {
	switch {
	case count >= 10:
		return 35, []string{fmt.Sprintf("Extremely high report volume (%d reports)", count)}
	case count >= 5:
		return 25, []string{fmt.Sprintf("High number of community reports (%d)", count)}
	case count >= 2:
		return 15, []string{fmt.Sprintf("Multiple community reports (%d)", count)}
	case count == 1:
		return 8, []string{"1 community report filed"}
	default:
		return 0, nil
	}
}

// scoreLineType scores the parsed line type. Landlines subtract points.
func scoreLineType(lineType string) (int, string) {
	lt := strings.ToLower(lineType)
	switch {
	case lt == "voip":
		return 15, "VoIP number - commonly used for spoofing and scam calls"
	case lt == "premium rate":
		return 12, "Premium rate number - may incur unexpected charges"
	case lt == "toll-free":
		return 5, "Toll-free number - sometimes used by telemarketers"
	case strings.Contains(lt, "landline"):
		return -3, "Landline number - generally lower risk"
	default:
		return 0, ""
	}
}

// threatType picks the dominant threat label. Filed report categories
// take precedence over line-type and score heuristics.
func threatType(trace domain.TraceResult, reports []domain.SpamReport, score int) string {
	seen := map[domain.ReportType]bool{}
	for _, r := range reports {
		seen[domain.ReportType(strings.ToLower(string(r.Type)))] = true
	}

	switch {
	case seen[domain.ReportFraud] || seen[domain.ReportPhishing]:
		return "Fraud / Phishing"
	case seen[domain.ReportScam]:
		return "Scam"
	case seen[domain.ReportHarassment]:
		return "Harassment"
	case seen[domain.ReportRobocall] || seen[domain.ReportTelemarketer]:
		return "Telemarketing"
	case seen[domain.ReportSpam]:
		return "Spam"
	}

	lt := strings.ToLower(trace.LineType)
	if lt == "voip" && score >= 30 {
		return "Suspicious VoIP"
	}
	if lt == "premium rate" {
		return "Premium Rate"
	}
	if score >= 45 {
		return "Suspicious"
	}
	if score >= 25 {
		return "Potentially Unwanted"
	}
	return "Clean"
}

func buildAnalysis(trace domain.TraceResult, factors []string, level domain.RiskLevel) string {
	number := trace.FormattedInternational
	if number == "" {
		number = trace.Number
	}
	country := trace.CountryName
	if country == "" {
		country = "Unknown"
	}
	lineType := trace.LineType
	if lineType == "" {
		lineType = "Unknown"
	}

	var opener string
	switch level {
	case domain.LevelCritical:
		opener = fmt.Sprintf("⚠️ This number (%s) shows strong indicators of malicious activity.", number)
	case domain.LevelHigh:
		opener = fmt.Sprintf("This number (%s) has several concerning risk factors.", number)
	case domain.LevelMedium:
		opener = fmt.Sprintf("This number (%s) has some risk indicators worth noting.", number)
	default:
		opener = fmt.Sprintf("This number (%s) appears to be relatively safe.", number)
	}

	details := fmt.Sprintf("It is a %s number from %s", lineType, country)
	if trace.Carrier != "" && !strings.EqualFold(trace.Carrier, "unknown") {
		details += fmt.Sprintf(", operated by %s", trace.Carrier)
	}
	details += "."

	keyFactors := " No significant risk factors detected."
	if len(factors) > 0 {
		top := factors
		if len(top) > 3 {
			top = top[:3]
		}
		keyFactors = " Key findings: " + strings.Join(top, "; ") + "."
	}

	return opener + " " + details + keyFactors
}

func buildRecommendation(level domain.RiskLevel) string {
	switch level {
	case domain.LevelCritical:
		return "🚫 Do NOT answer or return calls from this number. " +
			"Block it immediately on your device. If you've shared any personal information, " +
			"contact your bank and monitor your accounts. Consider filing a report with local authorities."
	case domain.LevelHigh:
		return "⚠️ Exercise extreme caution with this number. " +
			"Do not share personal information if they contact you. " +
			"Block the number and report it if you receive suspicious calls."
	case domain.LevelMedium:
		return "⚡ Be cautious when interacting with this number. " +
			"Verify the caller's identity before sharing any information. " +
			"If unsolicited, consider blocking and reporting."
	default:
		return "✅ This number appears safe based on available data. " +
			"As always, never share sensitive personal information over the phone " +
			"unless you initiated the call to a verified number."
	}
}
