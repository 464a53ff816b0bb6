package domain

import "errors"

var (
	// ErrStudentNotFound is returned when no student exists for the given email
	ErrStudentNotFound = errors.New("student not found")

	// ErrDuplicateEmail is returned when registering an email that already has an account
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned when a password does not match the stored hash
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNameRequired is returned when a new registration is missing a name
	ErrNameRequired = errors.New("name is required for new users")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrStoreUnavailable is returned when the persistence store cannot be reached
	ErrStoreUnavailable = errors.New("store unavailable")
)
