package domain

import "strconv"

// Severity is the ordinal 1-5 danger rating of an incident.
type Severity int

const (
	SeverityMinor    Severity = 1
	SeverityModerate Severity = 2
	SeveritySerious  Severity = 3
	SeveritySevere   Severity = 4
	SeverityFatal    Severity = 5
)

// Severities lists every valid severity in ascending order.
var Severities = [...]Severity{SeverityMinor, SeverityModerate, SeveritySerious, SeveritySevere, SeverityFatal}

// Valid reports whether s is within 1..5.
func (s Severity) Valid() bool {
	return s >= SeverityMinor && s <= SeverityFatal
}

// Index returns the zero-based position of s in [Severities].
func (s Severity) Index() int {
	return int(s) - 1
}

// Level returns the reference metadata for s. Invalid severities get an
// empty level.
func (s Severity) Level() SeverityLevel {
	if !s.Valid() {
		return SeverityLevel{}
	}
	return severityLevels[s.Index()]
}

func (s Severity) String() string {
	if !s.Valid() {
		return "severity(" + strconv.Itoa(int(s)) + ")"
	}
	return severityLevels[s.Index()].Label
}

// SeverityLevel is the display metadata for one severity.
type SeverityLevel struct {
	Severity    Severity `json:"severity"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
}

var severityLevels = [...]SeverityLevel{
	{SeverityMinor, "Minor", "Theft without confrontation, failed attempts, ATM/equipment theft", "#22c55e"},
	{SeverityModerate, "Moderate", "Robbery with some violence/assault, drugging, extortion", "#eab308"},
	{SeveritySerious, "Serious", "Armed robbery, kidnapping, home invasion at gunpoint/knifepoint", "#f97316"},
	{SeveritySevere, "Severe", "Kidnapping with torture, severed body parts, severe beatings, gunshot wounds", "#ef4444"},
	{SeverityFatal, "Fatal", "Victim was killed", "#7c3aed"},
}

// SeverityLevels returns the severity reference table in ascending order.
func SeverityLevels() []SeverityLevel {
	out := make([]SeverityLevel, len(severityLevels))
	copy(out, severityLevels[:])
	return out
}

// AttackRecord is one documented incident.
type AttackRecord struct {
	Date        string   `json:"date"`
	Severity    Severity `json:"severity"`
	Location    string   `json:"location"`
	Victim      string   `json:"victim"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	URL         string   `json:"url,omitempty"`
}

// YearKey returns the "YYYY" bucket key. The date must be validated first.
func (r AttackRecord) YearKey() string {
	return r.Date[:4]
}

// MonthKey returns the "YYYY-MM" bucket key. The date must be validated first.
func (r AttackRecord) MonthKey() string {
	return r.Date[:7]
}

// Region classifies the record's location.
func (r AttackRecord) Region() Region {
	return Classify(r.Location)
}
