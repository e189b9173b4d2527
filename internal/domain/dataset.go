package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Dataset bundles the attack records with the reference tables the
// aggregations need. A Dataset returned by NewDataset or LoadDataset has
// passed validation.
type Dataset struct {
	Records   []AttackRecord
	MarketCap []MarketCapPoint
	Users     []UserCount
}

// NewDataset validates the given tables and returns them as a Dataset.
func NewDataset(records []AttackRecord, marketCap []MarketCapPoint, users []UserCount) (Dataset, error) {
	d := Dataset{Records: records, MarketCap: marketCap, Users: users}
	if err := ValidateDataset(d); err != nil {
		return Dataset{}, err
	}
	return d, nil
}

// ValidateDataset checks every table of d and joins all failures.
func ValidateDataset(d Dataset) error {
	var errs []error
	if err := ValidateRecords(d.Records); err != nil {
		errs = append(errs, fmt.Errorf("validate records: %w", err))
	}
	if err := ValidateMarketCap(d.MarketCap); err != nil {
		errs = append(errs, fmt.Errorf("validate market cap: %w", err))
	}
	if err := ValidateUsers(d.Users); err != nil {
		errs = append(errs, fmt.Errorf("validate users: %w", err))
	}
	return errors.Join(errs...)
}

// LoadDataset returns the compiled-in dataset.
func LoadDataset() (Dataset, error) {
	return NewDataset(Attacks(), QuarterlyMarketCap(), AnnualUsers())
}

// Fingerprint is a deterministic digest of the records. Any appended or
// corrected incident changes it, so it serves as the dataset version.
func (d Dataset) Fingerprint() string {
	return Fingerprint(d.Records)
}

// Fingerprint hashes every field of every record in order.
func Fingerprint(records []AttackRecord) string {
	h := sha256.New()
	for _, r := range records {
		fields := []string{r.Date, fmt.Sprint(int(r.Severity)), r.Location, r.Victim, r.Type, r.Description, r.URL}
		fmt.Fprintf(h, "%s\n", strings.Join(fields, "|"))
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
