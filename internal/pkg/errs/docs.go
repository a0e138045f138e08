// Package errs provides the standardized error types of the orders service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Error kinds map to the failure classes of the core:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures a caller can fix by correcting input
//   - ObjectNotFoundError: a referenced order or item does not exist;
//     ParamName distinguishes which lookup failed
//   - ConflictError: a concurrent mutation invalidated an in-flight change;
//     retryable after re-reading the aggregate
//   - VersionIsInvalidError: an aggregate version is unusable
//
// Each error type follows the same shape: a sentinel error variable, a
// struct with detail fields, constructors with and without cause, an
// Error() formatter and an Unwrap() to the sentinel. Transport adapters
// classify errors with errors.Is against the sentinels and never need to
// inspect message text.
package errs
