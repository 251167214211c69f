package vocab

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity classifies a dictionary word. The low bits carry categories and
// the high bits carry strength, so a single word may be tagged, for example,
// Profane|Severe. Values combine with bitwise-or and are tested with Is.
type Severity uint16

const (
	Profane Severity = 1 << iota
	Offensive
	Sexual
	Mean
	Evasive
	Spam
	Mild
	Moderate
	Severe
)

const (
	// Safe carries no category at all and never crosses a threshold.
	Safe Severity = 0
	// Inappropriate unions the categories most callers filter on.
	Inappropriate = Profane | Offensive | Sexual | Mean
	// MildOrHigher unions every strength.
	MildOrHigher = Mild | Moderate | Severe
	// ModerateOrHigher matches all but the mildest words.
	ModerateOrHigher = Moderate | Severe
	// Any matches every category and strength.
	Any = ^Severity(0)
)

// severityNames keeps String output in declaration order.
var severityNames = []struct {
	severity Severity
	name     string
}{
	{Profane, "profane"},
	{Offensive, "offensive"},
	{Sexual, "sexual"},
	{Mean, "mean"},
	{Evasive, "evasive"},
	{Spam, "spam"},
	{Mild, "mild"},
	{Moderate, "moderate"},
	{Severe, "severe"},
}

// Is reports whether s and test share at least one bit.
func (s Severity) Is(test Severity) bool {
	return s&test != 0
}

// String renders s as a '|'-joined list of flag names, or "safe" for the
// zero value.
func (s Severity) String() string {
	if s == Safe {
		return "safe"
	}
	var parts []string
	for _, n := range severityNames {
		if s.Is(n.severity) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// MarshalJSON renders the severity in its String form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts a flag-name string such as "profane|mild", or a
// bare number for callers that work with raw bits.
func (s *Severity) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		var n uint16
		if numErr := json.Unmarshal(b, &n); numErr == nil {
			*s = Severity(n)
			return nil
		}
		return err
	}
	parsed, err := ParseSeverity(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity reads one flag name or a '|'-joined union, e.g. "profane"
// or "sexual|severe". Names are case-insensitive and may carry surrounding
// whitespace. The unions "inappropriate" and "any" and the zero value
// "safe" parse too. Unknown names produce an error.
func ParseSeverity(raw string) (Severity, error) {
	var s Severity
	for _, part := range strings.Split(raw, "|") {
		part = strings.TrimSpace(strings.ToLower(part))
		switch part {
		case "safe":
			// no bits
		case "inappropriate":
			s |= Inappropriate
		case "any":
			s |= Any
		default:
			var match bool
			for _, n := range severityNames {
				if part == n.name {
					s |= n.severity
					match = true
					break
				}
			}
			if !match {
				return Safe, fmt.Errorf("unknown severity %q", part)
			}
		}
	}
	return s, nil
}
