package service

import "errors"

// Failure kinds surfaced by the round-up core. Handlers map these to HTTP
// statuses; anything else is a storage failure and has been rolled back.
var (
	ErrTransactionNotFound = errors.New("transaction not found")       // Unknown or unowned transaction
	ErrNonPositiveRoundup  = errors.New("round-up must be positive")   // Zero or negative round-up amount
	ErrRoundupExists       = errors.New("round-up already applied")    // Transaction already rounded up for this user
	ErrGoalNotFound        = errors.New("goal not found")              // Unknown or unowned goal (goal CRUD only)
)
