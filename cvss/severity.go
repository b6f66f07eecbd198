package cvss

// Severity is the qualitative rating derived from a base score.
type Severity string

// Severity ratings, lowest to highest.
const (
	SeverityNone     Severity = "NONE"
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

var severityRank = map[Severity]int{
	SeverityNone:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Ordinal returns the position of the severity in the total order, NONE=0
// through CRITICAL=4.
func (s Severity) Ordinal() int {
	return severityRank[s]
}

// SeverityFromScore maps a base score to its qualitative rating.
// Boundaries are inclusive on the lower end: 4.0 is MEDIUM, 7.0 is HIGH,
// 9.0 is CRITICAL. Only an exact 0 is NONE.
func SeverityFromScore(score float64) Severity {
	switch {
	case score == 0:
		return SeverityNone
	case score < 4.0:
		return SeverityLow
	case score < 7.0:
		return SeverityMedium
	case score < 9.0:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}
