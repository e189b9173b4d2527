package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidSeverity = errors.New("severity out of range 1..5")
	ErrInvalidDate     = errors.New("date is not YYYY-MM-DD")
	ErrMissingField    = errors.New("required field is empty")
)

const dateLayout = "2006-01-02"

// RecordError reports a data-integrity problem with one attack record.
type RecordError struct {
	Index int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// ValidateRecord checks one record. index is the record's position and is
// only used for error reporting.
func ValidateRecord(index int, r AttackRecord) error {
	if !r.Severity.Valid() {
		return &RecordError{Index: index, Field: "severity", Err: fmt.Errorf("%w: %d", ErrInvalidSeverity, int(r.Severity))}
	}
	if err := ValidateDate(r.Date); err != nil {
		return &RecordError{Index: index, Field: "date", Err: err}
	}

	required := []struct {
		name  string
		value string
	}{
		{"location", r.Location},
		{"victim", r.Victim},
		{"type", r.Type},
		{"description", r.Description},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &RecordError{Index: index, Field: f.name, Err: ErrMissingField}
		}
	}
	return nil
}

// ValidateDate checks that s is a real calendar date in YYYY-MM-DD form.
// The length check rejects forms time.Parse would otherwise accept.
func ValidateDate(s string) error {
	if len(s) != len(dateLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}

// ValidateRecords checks every record and joins all failures.
func ValidateRecords(records []AttackRecord) error {
	var errs []error
	for i, r := range records {
		if err := ValidateRecord(i, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ValidateMarketCap checks that points have valid dates, strictly ascending,
// with non-negative values.
func ValidateMarketCap(points []MarketCapPoint) error {
	if len(points) == 0 {
		return errors.New("market cap table is empty")
	}
	for i, p := range points {
		if err := ValidateDate(p.Date); err != nil {
			return fmt.Errorf("market cap point %d: %w", i, err)
		}
		if p.MarketCap < 0 {
			return fmt.Errorf("market cap point %d: negative value %v", i, p.MarketCap)
		}
		if i > 0 && points[i-1].Date >= p.Date {
			return fmt.Errorf("market cap point %d: %s is not after %s", i, p.Date, points[i-1].Date)
		}
	}
	return nil
}

// ValidateUsers checks that years are four-digit, strictly ascending and
// counts are positive.
func ValidateUsers(users []UserCount) error {
	for i, u := range users {
		if len(u.Year) != 4 {
			return fmt.Errorf("user count %d: invalid year %q", i, u.Year)
		}
		if u.Users <= 0 {
			return fmt.Errorf("user count %d: non-positive users %v", i, u.Users)
		}
		if i > 0 && users[i-1].Year >= u.Year {
			return fmt.Errorf("user count %d: %s is not after %s", i, u.Year, users[i-1].Year)
		}
	}
	return nil
}
