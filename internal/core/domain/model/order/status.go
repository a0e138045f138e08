package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The recognized flow is
//
//	PENDING ──> SHIPPED ──> DELIVERED
//	    │           │
//	    └───────────┴──> CANCELED
//
// with PENDING as the sole initial state. Unrecognized values are rejected,
// but transitions between recognized values are not constrained: any valid
// status may replace any other. Tightening the transition graph is a
// business decision deliberately left open.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly created order.
	Pending

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	Delivered

	// Canceled indicates the order was withdrawn.
	Canceled
)

// getStatusStrings returns the wire names for all Status values,
// including Unknown, to support string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Canceled:  "CANCELED",
	}
}

// getValidStatusStrings returns only the recognized Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Canceled:  "CANCELED",
	}
}

// StatusFromString parses a wire-format status name such as "PENDING".
// Unrecognized names are rejected with a validation error, so bogus values
// can never be stored.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a recognized status", s))
}

// Validate checks that the Status is one of the four recognized values.
// Unknown (0) and any other value fail validation.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
