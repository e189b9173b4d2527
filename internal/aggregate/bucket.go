package aggregate

import "github.com/couchcryptid/wrench-attack-stats/internal/domain"

// Bucket holds per-severity counts for one year, one month, or the whole
// dataset. Total always equals S1+S2+S3+S4+S5.
type Bucket struct {
	Key   string `json:"key"`
	S1    int    `json:"s1"`
	S2    int    `json:"s2"`
	S3    int    `json:"s3"`
	S4    int    `json:"s4"`
	S5    int    `json:"s5"`
	Total int    `json:"total"`
}

// Counts returns the severity counts in ascending severity order.
func (b Bucket) Counts() [5]int {
	return [5]int{b.S1, b.S2, b.S3, b.S4, b.S5}
}

// Count returns the count for one severity, or 0 for an invalid severity.
func (b Bucket) Count(s domain.Severity) int {
	if !s.Valid() {
		return 0
	}
	return b.Counts()[s.Index()]
}

// SevereOrWorse returns S4+S5.
func (b Bucket) SevereOrWorse() int {
	return b.S4 + b.S5
}

// add counts one record of severity s. The caller validates s.
func (b *Bucket) add(s domain.Severity) {
	switch s {
	case domain.SeverityMinor:
		b.S1++
	case domain.SeverityModerate:
		b.S2++
	case domain.SeveritySerious:
		b.S3++
	case domain.SeveritySevere:
		b.S4++
	case domain.SeverityFatal:
		b.S5++
	}
	b.Total++
}

// plus returns the element-wise sum of b and o, keyed as b.
func (b Bucket) plus(o Bucket) Bucket {
	return Bucket{
		Key:   b.Key,
		S1:    b.S1 + o.S1,
		S2:    b.S2 + o.S2,
		S3:    b.S3 + o.S3,
		S4:    b.S4 + o.S4,
		S5:    b.S5 + o.S5,
		Total: b.Total + o.Total,
	}
}
