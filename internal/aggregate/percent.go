package aggregate

import (
	"math"
	"sort"
)

// Normalize converts counts to integer percentages that sum to exactly 100
// whenever the total is positive. A zero total yields all zeros.
//
// Each share is rounded half away from zero first. The remaining difference
// from 100 is spread one point at a time over categories with a non-zero
// count: when points are missing, the largest rounding errors gain first;
// when there are too many, the smallest lose first. Equal errors are broken
// by category index ascending. Results are clamped at zero.
func Normalize(counts []int) []int {
	out := make([]int, len(counts))
	total := 0
	for _, c := range counts {
		total += c
	}
	if total <= 0 {
		return out
	}

	errs := make([]float64, len(counts))
	sum := 0
	for i, c := range counts {
		raw := 100 * float64(c) / float64(total)
		rounded := math.Round(raw)
		out[i] = int(rounded)
		errs[i] = raw - rounded
		sum += out[i]
	}

	diff := 100 - sum
	if diff != 0 {
		eligible := make([]int, 0, len(counts))
		for i, c := range counts {
			if c > 0 {
				eligible = append(eligible, i)
			}
		}
		sort.SliceStable(eligible, func(a, b int) bool {
			if diff > 0 {
				return errs[eligible[a]] > errs[eligible[b]]
			}
			return errs[eligible[a]] < errs[eligible[b]]
		})

		step := 1
		n := diff
		if diff < 0 {
			step = -1
			n = -diff
		}
		for k := 0; k < n && k < len(eligible); k++ {
			out[eligible[k]] += step
		}
	}

	for i := range out {
		if out[i] < 0 {
			out[i] = 0
		}
	}
	return out
}

// Percent returns round(100*part/total), or 0 when total is not positive.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// PercentageRow is a severity bucket expressed as normalized percentages,
// with the raw counts kept alongside for tooltips.
type PercentageRow struct {
	Key           string `json:"key"`
	P1            int    `json:"p1"`
	P2            int    `json:"p2"`
	P3            int    `json:"p3"`
	P4            int    `json:"p4"`
	P5            int    `json:"p5"`
	C1            int    `json:"c1"`
	C2            int    `json:"c2"`
	C3            int    `json:"c3"`
	C4            int    `json:"c4"`
	C5            int    `json:"c5"`
	Total         int    `json:"total"`
	SevereOrWorse int    `json:"severeOrWorse"`
}

// Percentages returns the normalized p1..p5 of the row.
func (r PercentageRow) Percentages() [5]int {
	return [5]int{r.P1, r.P2, r.P3, r.P4, r.P5}
}

// PercentageRowFor normalizes one bucket. SevereOrWorse is the rounded share
// of severity 4 and 5 records, computed independently of p4 and p5.
func PercentageRowFor(b Bucket) PercentageRow {
	counts := b.Counts()
	p := Normalize(counts[:])
	return PercentageRow{
		Key:           b.Key,
		P1:            p[0],
		P2:            p[1],
		P3:            p[2],
		P4:            p[3],
		P5:            p[4],
		C1:            b.S1,
		C2:            b.S2,
		C3:            b.S3,
		C4:            b.S4,
		C5:            b.S5,
		Total:         b.Total,
		SevereOrWorse: Percent(b.SevereOrWorse(), b.Total),
	}
}

// PercentageRows normalizes every bucket, preserving order.
func PercentageRows(buckets []Bucket) []PercentageRow {
	out := make([]PercentageRow, len(buckets))
	for i, b := range buckets {
		out[i] = PercentageRowFor(b)
	}
	return out
}
