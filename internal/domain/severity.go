package domain

// Severity is the five-tier classification derived from magnitude.
type Severity string

const (
	SeverityMajor    Severity = "major"
	SeverityStrong   Severity = "strong"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
	SeverityMicro    Severity = "micro"
)

// SeverityFor maps a magnitude to its severity tier. Thresholds are
// inclusive at the upper tier: 7.0 is major, 6.9 is strong.
func SeverityFor(magnitude float64) Severity {
	switch {
	case magnitude >= 7:
		return SeverityMajor
	case magnitude >= 5.5:
		return SeverityStrong
	case magnitude >= 4:
		return SeverityModerate
	case magnitude >= 2.5:
		return SeverityMinor
	default:
		return SeverityMicro
	}
}

// Color returns the fixed display color token for the tier. Marker visuals
// and list badges use the same five tokens.
func (s Severity) Color() string {
	switch s {
	case SeverityMajor:
		return "#b71c1c"
	case SeverityStrong:
		return "#e64a19"
	case SeverityModerate:
		return "#f9a825"
	case SeverityMinor:
		return "#2e7d32"
	default:
		return "#78909c"
	}
}

// Label returns the human-readable tier name.
func (s Severity) Label() string {
	switch s {
	case SeverityMajor:
		return "Major"
	case SeverityStrong:
		return "Strong"
	case SeverityModerate:
		return "Moderate"
	case SeverityMinor:
		return "Minor"
	default:
		return "Micro"
	}
}
