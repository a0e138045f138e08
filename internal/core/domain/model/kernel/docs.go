// Package kernel contains the shared value objects of the domain model.
//
// UUID wraps github.com/google/uuid to give entities and aggregates an
// immutable, validated identifier. Price represents money with a fixed
// precision of two fractional digits, stored as integer cents so that
// totals never accumulate floating point drift.
//
// Both types are immutable: every operation returns a new value, and the
// zero value of each is invalid until created through a constructor.
package kernel
