package usecase

import "errors"

var (
	// ErrUnauthenticated is returned when a request carries no known credentials.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when authenticated credentials lack the required role.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrNotFound is returned when no book exists under the requested id.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateID is returned by the store when inserting an id that is taken.
	ErrDuplicateID = errors.New("book id already exists")
	// ErrAlreadyReported signals an identical re-submission of a prior create.
	// It is an acknowledgment, not a failure: the handler maps it to 208 and
	// returns the stored book.
	ErrAlreadyReported = errors.New("book already reported")
)

// ValidationError is a payload rejection with a field-level reason. The
// message is user-facing; clients assert on substrings of it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func errMissingTitle() *ValidationError {
	return &ValidationError{Field: "title", Message: "Book title is required and must be a non-empty string"}
}

func errMissingAuthor() *ValidationError {
	return &ValidationError{Field: "author", Message: "Book author is required and must be a non-empty string"}
}

func errInvalidID() *ValidationError {
	return &ValidationError{Field: "id", Message: "Book id must be a non-negative integer"}
}

// errIDMismatch reports a path/payload id disagreement on update. The exact
// wording is part of the API contract.
func errIDMismatch() *ValidationError {
	return &ValidationError{Field: "id", Message: "Book id is not matched with request body id"}
}
