package models

import "errors"

// Domain-specific errors shared across layers
var (
	// ErrCardClosed indicates a lifecycle change on a card that is already closed
	ErrCardClosed = errors.New("card is already closed")

	// ErrCardPostponed indicates a postponement of a card that is already postponed
	ErrCardPostponed = errors.New("card is already postponed")
)
