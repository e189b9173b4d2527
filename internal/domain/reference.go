package domain

// MarketCapPoint is the total crypto market capitalization, in billions of
// USD, at a quarter-end date.
type MarketCapPoint struct {
	Date      string  `json:"date"`
	MarketCap float64 `json:"marketCap"`
}

// UserCount is the approximate number of crypto owners, in millions, for a
// calendar year.
type UserCount struct {
	Year  string  `json:"year"`
	Users float64 `json:"users"`
}

// QuarterlyMarketCap returns a copy of the quarterly market cap table,
// ascending by date.
func QuarterlyMarketCap() []MarketCapPoint {
	out := make([]MarketCapPoint, len(quarterlyMarketCap))
	copy(out, quarterlyMarketCap)
	return out
}

// AnnualUsers returns a copy of the annual user table, ascending by year.
func AnnualUsers() []UserCount {
	out := make([]UserCount, len(annualUsers))
	copy(out, annualUsers)
	return out
}

// Sources: CoinMarketCap, CoinGecko and Statista quarter-end snapshots.
var quarterlyMarketCap = []MarketCapPoint{
	{Date: "2014-03-31", MarketCap: 7.5},
	{Date: "2014-06-30", MarketCap: 8.0},
	{Date: "2014-09-30", MarketCap: 5.5},
	{Date: "2014-12-31", MarketCap: 5.5},

	{Date: "2015-03-31", MarketCap: 4.0},
	{Date: "2015-06-30", MarketCap: 4.5},
	{Date: "2015-09-30", MarketCap: 4.0},
	{Date: "2015-12-31", MarketCap: 7.0},

	{Date: "2016-03-31", MarketCap: 8.5},
	{Date: "2016-06-30", MarketCap: 13.0},
	{Date: "2016-09-30", MarketCap: 12.0},
	{Date: "2016-12-31", MarketCap: 17.7},

	{Date: "2017-03-31", MarketCap: 25.0},
	{Date: "2017-06-30", MarketCap: 100.0},
	{Date: "2017-09-30", MarketCap: 145.0},
	{Date: "2017-12-31", MarketCap: 613.0},

	{Date: "2018-03-31", MarketCap: 265.0},
	{Date: "2018-06-30", MarketCap: 255.0},
	{Date: "2018-09-30", MarketCap: 220.0},
	{Date: "2018-12-31", MarketCap: 130.0},

	{Date: "2019-03-31", MarketCap: 143.0},
	{Date: "2019-06-30", MarketCap: 290.0},
	{Date: "2019-09-30", MarketCap: 220.0},
	{Date: "2019-12-31", MarketCap: 193.0},

	{Date: "2020-03-31", MarketCap: 182.0},
	{Date: "2020-06-30", MarketCap: 263.0},
	{Date: "2020-09-30", MarketCap: 345.0},
	{Date: "2020-12-31", MarketCap: 760.0},

	{Date: "2021-03-31", MarketCap: 1950.0},
	{Date: "2021-06-30", MarketCap: 1400.0},
	{Date: "2021-09-30", MarketCap: 1900.0},
	{Date: "2021-12-31", MarketCap: 2200.0},

	{Date: "2022-03-31", MarketCap: 2050.0},
	{Date: "2022-06-30", MarketCap: 900.0},
	{Date: "2022-09-30", MarketCap: 950.0},
	{Date: "2022-12-31", MarketCap: 830.0},

	{Date: "2023-03-31", MarketCap: 1200.0},
	{Date: "2023-06-30", MarketCap: 1180.0},
	{Date: "2023-09-30", MarketCap: 1080.0},
	{Date: "2023-12-31", MarketCap: 1700.0},

	{Date: "2024-03-31", MarketCap: 2700.0},
	{Date: "2024-06-30", MarketCap: 2350.0},
	{Date: "2024-09-30", MarketCap: 2200.0},
	{Date: "2024-12-31", MarketCap: 3300.0},

	{Date: "2025-03-31", MarketCap: 2800.0},
	{Date: "2025-06-30", MarketCap: 3100.0},
	{Date: "2025-09-30", MarketCap: 3500.0},
	{Date: "2025-12-31", MarketCap: 3100.0},
}

// Approximate crypto owners worldwide in millions, compiled from public
// exchange and wallet user reports. Early years are coarse.
var annualUsers = []UserCount{
	{Year: "2014", Users: 2},
	{Year: "2015", Users: 5},
	{Year: "2016", Users: 10},
	{Year: "2017", Users: 35},
	{Year: "2018", Users: 45},
	{Year: "2019", Users: 55},
	{Year: "2020", Users: 106},
	{Year: "2021", Users: 295},
	{Year: "2022", Users: 425},
	{Year: "2023", Users: 580},
	{Year: "2024", Users: 659},
	{Year: "2025", Users: 720},
}
