package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const (
	// maxPriceWholeDigits bounds the integral part of a price, matching a
	// NUMERIC(14,2) storage column.
	maxPriceWholeDigits = 12

	// maxPriceCents is the NUMERIC(14,2) bound expressed in cents:
	// 999999999999.99.
	maxPriceCents int64 = 99999999999999
)

// ErrPriceIsNotConstructed indicates that a Price was not initialized
// through one of the constructor functions.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"Price must be created via NewPriceFromCents, PriceFromString, or ZeroPrice")

// Price is a non-negative monetary amount with exactly two fractional
// digits. The amount is held as integer cents, so arithmetic over item
// prices and order totals is exact.
//
// Price is immutable; Add and MultiplyQuantity return new values.
//
// Example:
//
//	unit, _ := kernel.PriceFromString("49.99")
//	line, _ := unit.MultiplyQuantity(3)
//	fmt.Println(line) // 149.97
type Price struct {
	cents int64

	guard guard.ConstructorGuard
}

// NewPriceFromCents creates a Price from an amount in cents.
// Negative amounts and amounts exceeding the storage bound are rejected.
func NewPriceFromCents(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%d cents is negative", cents))
	}
	if cents > maxPriceCents {
		return Price{}, errs.NewValueIsOutOfRangeError("price", cents, 0, maxPriceCents)
	}
	return Price{cents: cents, guard: guard.NewConstructorGuard()}, nil
}

// PriceFromString parses a decimal amount such as "999", "49.9" or "49.99".
// At most two fractional digits are accepted; negative and malformed
// amounts are rejected.
func PriceFromString(s string) (Price, error) {
	invalid := func() (Price, error) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%q is not a valid decimal amount", s))
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "+") {
		return invalid()
	}

	whole, frac, hasFrac := strings.Cut(trimmed, ".")
	if whole == "" || len(whole) > maxPriceWholeDigits {
		return invalid()
	}

	wholeValue, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return invalid()
	}

	var fracValue int64
	if hasFrac {
		if frac == "" || len(frac) > 2 {
			return invalid()
		}
		fracValue, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return invalid()
		}
		if len(frac) == 1 {
			fracValue *= 10
		}
	}

	return NewPriceFromCents(wholeValue*100 + fracValue)
}

// ZeroPrice returns a valid Price of 0.00, the total of an order with no items.
func ZeroPrice() Price {
	return Price{guard: guard.NewConstructorGuard()}
}

// Cents returns the amount in cents.
func (p Price) Cents() int64 {
	return p.cents
}

// Add returns the sum of two prices. Sums that do not fit in int64 cents
// are rejected with a ValueIsOutOfRangeError, so a derived total can never
// silently wrap negative.
func (p Price) Add(other Price) (Price, error) {
	if p.cents > math.MaxInt64-other.cents {
		return Price{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"price", other.cents, 0, math.MaxInt64-p.cents,
			fmt.Errorf("sum of %d and %d cents overflows", p.cents, other.cents))
	}
	return Price{cents: p.cents + other.cents, guard: guard.NewConstructorGuard()}, nil
}

// MultiplyQuantity returns the price scaled by an item quantity.
// Negative quantities and products that do not fit in int64 cents are
// rejected with a ValueIsOutOfRangeError.
func (p Price) MultiplyQuantity(quantity int) (Price, error) {
	if quantity < 0 {
		return Price{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt64)
	}
	if p.cents > 0 && int64(quantity) > math.MaxInt64/p.cents {
		return Price{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"quantity", quantity, 0, math.MaxInt64/p.cents,
			fmt.Errorf("%d cents times %d overflows", p.cents, quantity))
	}
	return Price{cents: p.cents * int64(quantity), guard: guard.NewConstructorGuard()}, nil
}

// IsEqual reports whether two prices represent the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.cents == other.cents
}

// String formats the amount with two fractional digits, e.g. "1049.98".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}

// Validate returns ErrPriceIsNotConstructed for the zero value, nil otherwise.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
