// Package errs defines the error types shared across layers.
//
// Two families live here:
//   - domain sentinels (ErrInvalidArgument, ErrConstraintViolation) that the
//     repositories surface and callers test with errors.Is
//   - HTTPError, the JSON error shape the API returns to clients
package errs
