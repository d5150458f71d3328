// Package billing contains the pure pricing math for subscriptions.
// Prices are expressed in whole TRY per head per month.
package billing

import (
	"fmt"

	"github.com/digitalcoban/coban/internal/shared/errors"
)

// AnimalType tags a head-count bucket. Large covers cattle,
// small covers sheep and goats.
type AnimalType string

const (
	AnimalTypeLarge AnimalType = "large"
	AnimalTypeSmall AnimalType = "small"
)

func (t AnimalType) String() string {
	return string(t)
}

// Valid reports whether the tag is one of the known animal types.
func (t AnimalType) Valid() bool {
	return t == AnimalTypeLarge || t == AnimalTypeSmall
}

// Counts maps an animal type to its head count.
type Counts map[AnimalType]int

// Default per-head monthly unit prices.
const (
	DefaultLargeUnitPrice int64 = 1200
	DefaultSmallUnitPrice int64 = 700
)

// Calculator computes subscription amounts from head counts.
// It is deterministic and has no side effects.
type Calculator struct {
	unitPrices map[AnimalType]int64
}

// NewCalculator creates a calculator with the given per-head prices.
// Non-positive prices fall back to the defaults.
func NewCalculator(largeUnitPrice, smallUnitPrice int64) *Calculator {
	if largeUnitPrice <= 0 {
		largeUnitPrice = DefaultLargeUnitPrice
	}
	if smallUnitPrice <= 0 {
		smallUnitPrice = DefaultSmallUnitPrice
	}
	return &Calculator{
		unitPrices: map[AnimalType]int64{
			AnimalTypeLarge: largeUnitPrice,
			AnimalTypeSmall: smallUnitPrice,
		},
	}
}

// NewDefaultCalculator creates a calculator with the default unit prices.
func NewDefaultCalculator() *Calculator {
	return NewCalculator(DefaultLargeUnitPrice, DefaultSmallUnitPrice)
}

// UnitPrice returns the per-head monthly price for the given animal type.
func (c *Calculator) UnitPrice(t AnimalType) int64 {
	return c.unitPrices[t]
}

// MonthlyPrice computes the monthly amount for the given head counts.
// It fails with a validation error when any count is negative, when a
// count is keyed by an unknown animal type, or when all counts are zero.
func (c *Calculator) MonthlyPrice(counts Counts) (int64, error) {
	if len(counts) == 0 {
		return 0, errors.NewValidationError("at least one animal count is required")
	}

	var total int64
	var anyPositive bool
	for animalType, count := range counts {
		if !animalType.Valid() {
			return 0, errors.NewValidationError(fmt.Sprintf("unknown animal type: %s", animalType))
		}
		if count < 0 {
			return 0, errors.NewValidationError(fmt.Sprintf("animal count cannot be negative for type %s", animalType))
		}
		if count > 0 {
			anyPositive = true
		}
		total += int64(count) * c.unitPrices[animalType]
	}

	if !anyPositive {
		return 0, errors.NewValidationError("at least one animal count must be greater than zero")
	}

	return total, nil
}

// YearlyEstimate returns the yearly amount for a monthly price.
func (c *Calculator) YearlyEstimate(monthly int64) int64 {
	return monthly * 12
}
