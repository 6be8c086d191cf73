package entity

import "strings"

type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// Rank orders severities for display emphasis. Unknown values sort last.
func (s Severity) Rank() int {
	switch ParseSeverity(string(s)) {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	}
	return 3
}

// ParseSeverity normalizes a severity word from the backend. The
// classifier is prompted to answer with exactly one of High, Medium or
// Low, but model output occasionally carries casing or punctuation.
func ParseSeverity(raw string) Severity {
	word := strings.Trim(strings.TrimSpace(raw), ".,!")
	for _, known := range []Severity{SeverityHigh, SeverityMedium, SeverityLow} {
		if strings.EqualFold(word, string(known)) {
			return known
		}
	}
	return Severity(raw)
}
