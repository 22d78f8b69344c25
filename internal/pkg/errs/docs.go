// Package errs provides the standardized error types used across the
// application. Each failure kind pairs a sentinel error (for errors.Is
// classification, e.g. by the HTTP error handler) with a struct type carrying
// the failure details.
//
// Kinds:
//   - ValueIsRequiredError: a mandatory value was absent
//   - ValueIsInvalidError: a value was malformed or an operation was illegal
//     for the current state
//   - ValueIsOutOfRangeError: a numeric value fell outside its bounds
//   - ObjectNotFoundError: the referenced entity does not exist
//   - ObjectAlreadyExistsError: a uniqueness conflict
//   - AccessForbiddenError: role or ownership mismatch
//   - UnauthorizedError: missing or invalid credentials
//
// Each type follows the same pattern: a sentinel variable, a struct with
// detail fields, constructors with and without a cause, Error() formatting,
// and Unwrap() returning the sentinel so callers classify with errors.Is.
package errs
