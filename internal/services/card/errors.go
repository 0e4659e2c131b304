package card

import "errors"

// Domain errors for card service
var (
	ErrInvalidNumber     = errors.New("card number must be >= 0")
	ErrPrincipalNotFound = errors.New("principal not found")
	ErrCardNotFound      = errors.New("card not found")
)
