package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
)

func TestChronologyBreaks(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"oldest first", []string{"2019-01-01", "2020-05-01", "2020-05-01", "2021-02-03"}, 0},
		{"one step back", []string{"2019-01-01", "2021-02-03", "2020-05-01"}, 1},
		{"newest first", []string{"2021-02-03", "2020-05-01", "2019-01-01"}, 2},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]domain.AttackRecord, len(tt.dates))
			for i, d := range tt.dates {
				records[i] = domain.AttackRecord{Date: d}
			}
			assert.Equal(t, tt.want, chronologyBreaks(records))
		})
	}
}

func TestValidateRecords_CompiledDataset(t *testing.T) {
	p := validateRecords(domain.Attacks())
	assert.True(t, p.passed(), p.errors)
	assert.Equal(t, []string{"7 records are older than their predecessor"}, p.notes)
}
