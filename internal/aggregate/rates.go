package aggregate

import (
	"math"

	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
)

// YearRate normalizes one year's attack count against market size.
type YearRate struct {
	Year              string  `json:"year"`
	Attacks           int     `json:"attacks"`
	AvgMarketCap      float64 `json:"avgMarketCap"`
	Users             float64 `json:"users"`
	PerHundredBillion float64 `json:"perHundredBillion"`
	PerMillionUsers   float64 `json:"perMillionUsers"`
}

// YearlyRates computes attacks per $100B of average market cap and per
// million users for each yearly bucket. A rate whose denominator is missing
// or zero is 0. Values are rounded to two decimals.
func YearlyRates(years []Bucket, marketCap map[string]float64, users []domain.UserCount) []YearRate {
	usersByYear := make(map[string]float64, len(users))
	for _, u := range users {
		usersByYear[u.Year] = u.Users
	}

	out := make([]YearRate, len(years))
	for i, b := range years {
		mc := marketCap[b.Key]
		u := usersByYear[b.Key]
		rate := YearRate{
			Year:         b.Key,
			Attacks:      b.Total,
			AvgMarketCap: round2(mc),
			Users:        round2(u),
		}
		if mc > 0 {
			rate.PerHundredBillion = round2(float64(b.Total) / mc * 100)
		}
		if u > 0 {
			rate.PerMillionUsers = round2(float64(b.Total) / u)
		}
		out[i] = rate
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
