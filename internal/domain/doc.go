// Package domain models the curated dataset of physical attacks on
// cryptocurrency holders ("wrench attacks") and its reference tables.
//
// # Data Source
//
// Incidents are compiled from https://github.com/jlopp/physical-bitcoin-attacks
// and carried in this package as a literal, append-only table. New incidents
// are appended; existing entries change only to correct documented errors.
// A record's identity is its position in the table.
//
// # Record Conventions
//
// Date format:
//
//	"YYYY-MM-DD", e.g. "2025-11-26". The string is the sole temporal key and is
//	sliced, never parsed, for bucketing: date[0:4] is the year key and
//	date[0:7] the month key. Parsing is used only to validate the format.
//
// Location format:
//
//	"City, [Region/State,] Country", e.g. "Atlanta, Georgia, United States".
//	Some entries are a single token ("Hong Kong", "Singapore").
//
// Severity scale:
//
//	5 Fatal     victim was killed
//	4 Severe    kidnapping with torture, severed body parts, severe beatings,
//	            gunshot wounds, prolonged captivity, permanent injury
//	3 Serious   armed robbery, kidnapping without severe torture, armed home invasion
//	2 Moderate  robbery with some violence, drugging, extortion with threats
//	1 Minor     theft without confrontation, failed attempts, ATM/equipment theft,
//	            swatting without physical harm
//
// # Region Classification
//
// A location is assigned to one of eight macro regions by case-sensitive
// substring matching against an ordered pattern table. The first region with
// a matching pattern wins, so the order resolves ambiguous tokens: "Atlanta,
// Georgia, United States" matches "United States" (North America) before
// "Georgia" (Eastern Europe) is ever tested. Locations that match nothing
// classify as [RegionUnknown], a regular displayable category.
//
// # Market Cap and Users
//
// Total crypto market capitalization is a quarterly table (quarter-end dates,
// billions of USD, 2014Q1 through 2025Q4). The annual user table is an
// approximate count of crypto owners in millions, used as a denominator for
// per-user attack rates.
//
// # Validation
//
// [LoadDataset] validates every table before any aggregation runs. Severity
// outside 1..5, a malformed date or a missing required field is a
// data-integrity error reported as a [*RecordError].
package domain
