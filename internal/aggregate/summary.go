package aggregate

import "github.com/couchcryptid/wrench-attack-stats/internal/domain"

// Summary is the headline view of the whole dataset.
type Summary struct {
	Total            int                    `json:"total"`
	Counts           Bucket                 `json:"counts"`
	Percentages      PercentageRow          `json:"percentages"`
	AvgSevereOrWorse int                    `json:"avgSevereOrWorse"`
	Levels           []domain.SeverityLevel `json:"levels"`
}

// Summarize counts every record by severity. AvgSevereOrWorse is
// round(100*(n4+n5)/N) over the whole dataset.
func Summarize(records []domain.AttackRecord) (Summary, error) {
	totals, err := Totals(records)
	if err != nil {
		return Summary{}, err
	}
	row := PercentageRowFor(totals)
	return Summary{
		Total:            totals.Total,
		Counts:           totals,
		Percentages:      row,
		AvgSevereOrWorse: row.SevereOrWorse,
		Levels:           domain.SeverityLevels(),
	}, nil
}
