// Package errs provides standardized error types for the case tracking
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ValueIsOutOfRangeError: a value lies outside its allowed range
//   - ObjectNotFoundError: an object cannot be found
//   - ObjectAlreadyExistsError: a uniqueness constraint rejected an object
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so callers can classify with errors.Is
//
// All failures in the core are value-returned outcomes built from these
// types; the core itself never logs or formats user-facing messages.
package errs
