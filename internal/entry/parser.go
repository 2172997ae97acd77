package entry

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxHoursPerDay is the maximum number of hours a single entry may carry.
const MaxHoursPerDay = 24

// InvalidHoursError reports an hours value that is unparseable,
// non-positive, or beyond a single day.
type InvalidHoursError struct {
	Input string
}

func (e *InvalidHoursError) Error() string {
	return fmt.Sprintf("invalid hours %q (must be a positive number up to %d)", e.Input, MaxHoursPerDay)
}

// ParseHours parses a user-supplied hours token into a decimal value.
// Valid inputs: "8", "7.5", "0.25". Zero, negative, non-numeric, and
// values above MaxHoursPerDay fail with *InvalidHoursError.
func ParseHours(input string) (decimal.Decimal, error) {
	hours, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, &InvalidHoursError{Input: input}
	}
	if err := ValidateHours(hours); err != nil {
		return decimal.Zero, &InvalidHoursError{Input: input}
	}
	return hours, nil
}

// ValidateHours checks that an hours value is positive and at most
// MaxHoursPerDay.
func ValidateHours(hours decimal.Decimal) error {
	if hours.LessThanOrEqual(decimal.Zero) || hours.GreaterThan(decimal.NewFromInt(MaxHoursPerDay)) {
		return &InvalidHoursError{Input: hours.String()}
	}
	return nil
}
