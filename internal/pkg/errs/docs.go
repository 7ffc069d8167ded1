// Package errs provides standardized error types for the locker fleet
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when an object cannot be found
//   - ValueIsOutOfRangeError and VersionIsInvalidError for specific
//     validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach enables error classification with errors.Is
// across layer boundaries: repositories translate persistence failures into
// ObjectNotFoundError, domain constructors report missing or invalid fields,
// and handlers branch on the sentinels without depending on concrete types.
package errs
