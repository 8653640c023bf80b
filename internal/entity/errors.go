package entity

import "errors"

// Domain errors
var (
	// Chat errors
	ErrEmptyMessage = errors.New("message is empty")

	// Conversation errors
	ErrConversationNotFound = errors.New("conversation not found")

	// Job errors
	ErrJobNotFound = errors.New("job not found")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
)
