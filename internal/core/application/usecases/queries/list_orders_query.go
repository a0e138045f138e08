package queries

import (
	"errors"
	"fmt"

	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves orders matching an optional set of filters.
// All filters combine with AND semantics; an empty filter returns every
// order. An impossible combination, such as a minimum total above the
// maximum, yields an empty result rather than an error.
type ListOrdersQuery struct {
	filter ports.OrderFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. Filter fields are
// checked individually: a present customer id must be positive, a present
// status must be a recognized value and present price bounds must be
// constructed values.
func NewListOrdersQuery(filter ports.OrderFilter) (ListOrdersQuery, error) {
	if err := validateFilter(filter); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Filter returns the filter criteria, possibly empty.
func (q ListOrdersQuery) Filter() ports.OrderFilter {
	return q.filter
}

func validateFilter(filter ports.OrderFilter) error {
	if filter.CustomerID != nil && *filter.CustomerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer_id", fmt.Errorf("%d is not a valid customer reference", *filter.CustomerID))
	}

	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return err
		}
	}

	if filter.MinTotal != nil {
		if err := filter.MinTotal.Validate(); err != nil {
			return err
		}
	}

	if filter.MaxTotal != nil {
		if err := filter.MaxTotal.Validate(); err != nil {
			return err
		}
	}

	return nil
}
