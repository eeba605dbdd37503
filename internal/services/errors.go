package services

import "errors"

// Domain sentinels. Handlers translate the not-found group to 404 responses
// and ErrValidation to 400; anything else is a 500.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrMovieNotFound  = errors.New("movie not found")
	ErrReviewNotFound = errors.New("review not found")

	// ErrValidation marks malformed input rejected by a service. Wrap it
	// with the field-specific message: fmt.Errorf("%w: ...", ErrValidation).
	ErrValidation = errors.New("validation failed")
)
