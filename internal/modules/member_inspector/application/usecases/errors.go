package usecases

import "errors"

// Errors for the member inspector module.
var (
	// ErrInvalidUserID is returned when a user identifier is not a positive integer.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrGuildNotFound is returned when the community guild is not visible to the bot.
	ErrGuildNotFound = errors.New("community server not found")
)
