package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity(t *testing.T) {
	tests := []struct {
		severity Severity
		valid    bool
		label    string
		color    string
	}{
		{SeverityMinor, true, "Minor", "#22c55e"},
		{SeverityModerate, true, "Moderate", "#eab308"},
		{SeveritySerious, true, "Serious", "#f97316"},
		{SeveritySevere, true, "Severe", "#ef4444"},
		{SeverityFatal, true, "Fatal", "#7c3aed"},
		{0, false, "", ""},
		{6, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.severity.Valid())
			level := tt.severity.Level()
			assert.Equal(t, tt.label, level.Label)
			assert.Equal(t, tt.color, level.Color)
			if tt.valid {
				assert.Equal(t, tt.severity, level.Severity)
				assert.Equal(t, tt.label, tt.severity.String())
				assert.Equal(t, int(tt.severity)-1, tt.severity.Index())
			}
		})
	}

	assert.Equal(t, "severity(9)", Severity(9).String())
}

func TestSeverityLevels(t *testing.T) {
	levels := SeverityLevels()
	assert.Len(t, levels, 5)
	for i, l := range levels {
		assert.Equal(t, Severities[i], l.Severity)
		assert.NotEmpty(t, l.Description)
	}
}

func TestAttackRecordKeys(t *testing.T) {
	r := AttackRecord{Date: "2021-04-09", Location: "Hong Kong"}
	assert.Equal(t, "2021", r.YearKey())
	assert.Equal(t, "2021-04", r.MonthKey())
	assert.Equal(t, RegionAsiaPacific, r.Region())
}
