package domain

import "errors"

// Domain errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrAuthRequired     = errors.New("authentication required")
	ErrActionInProgress = errors.New("another action is already in progress")
)
