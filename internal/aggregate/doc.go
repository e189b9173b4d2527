// Package aggregate turns the flat attack record list into chart-ready
// series: yearly and monthly severity buckets, cumulative totals,
// percentage rows, region breakdowns, pie slices and record lookups.
//
// Every function is a pure transform of its input. Outputs never alias the
// input slices, so callers may cache results freely.
//
// # Bucket Keys
//
// Keys are sliced from the record date, never parsed: "YYYY" for years and
// "YYYY-MM" for months. Lexicographic order of the keys is chronological
// order.
//
// # Percentage Rounding
//
// Percentages use the largest-remainder method so that a row with a non-zero
// total sums to exactly 100. See [Normalize] for the tie-break rule.
package aggregate
