package errorvalues

import "errors"

var (
	ErrValidation       = errors.New("validation failed")
	ErrEmailTaken       = errors.New("email already registered")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrUserNotFound     = errors.New("user doesn't exist")
	ErrWrongCredentials = errors.New("invalid credentials")
	ErrInvalidToken     = errors.New("invalid token")

	ErrChallengeNotFound = errors.New("challenge doesn't exist")
	ErrPrivateChallenge  = errors.New("challenge is private")
	ErrChallengeStarted  = errors.New("challenge already started")
	ErrAlreadyJoined     = errors.New("user already joined this challenge")

	ErrParticipationNotFound = errors.New("participation doesn't exist")
	ErrPaymentRequired       = errors.New("entry fee hasn't been paid")
	ErrAlreadyPaid           = errors.New("entry fee already paid")
	ErrDateOutOfRange        = errors.New("date outside challenge period")

	ErrInsufficientFunds = errors.New("insufficient wallet balance")

	ErrEntryNotFound = errors.New("leaderboard entry doesn't exist")
)
