package models

import "strings"

// Strength is the estimated strength of an entry's secret.
type Strength int

const (
	// StrengthWeak is the zero value and the safe default for entries
	// whose strength was never recorded.
	StrengthWeak Strength = iota
	StrengthMedium
	StrengthStrong
)

// String returns the lower-case name of the strength level.
func (s Strength) String() string {
	switch s {
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	default:
		return "weak"
	}
}

// ParseStrength converts a name produced by [Strength.String] back into a
// Strength. Unknown names map to StrengthWeak and ok is false.
func ParseStrength(name string) (s Strength, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "weak":
		return StrengthWeak, true
	case "medium":
		return StrengthMedium, true
	case "strong":
		return StrengthStrong, true
	default:
		return StrengthWeak, false
	}
}
