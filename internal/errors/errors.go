package errors

import "errors"

// Sentinel errors shared by the service and API layers. Services wrap them with
// context (`fmt.Errorf("%w: ...", ErrValidation)`) and the API layer maps them to
// HTTP status codes with errors.Is.

var (
	// ErrNotFound signifies that a requested conversation could not be located.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input failed a business rule (empty message text,
	// unparsable import file, a file that is not a PDF).
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an exchange or upload is already in flight.
	// Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrUpstream signifies that the remote analysis service could not be reached
	// or answered with a failure. Mapped to 502 Bad Gateway.
	ErrUpstream = errors.New("upstream service error")

	// ErrInternal signifies an unexpected failure, typically persistence.
	// Mapped to 500 Internal Server Error.
	ErrInternal = errors.New("internal server error")
)
