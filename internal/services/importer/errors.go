package importer

import "errors"

var (
	// ErrMissingArgument is returned when the archive path or principal is empty
	ErrMissingArgument = errors.New("missing required argument")
	// ErrUnknownPrincipal is returned when no user has the given email
	ErrUnknownPrincipal = errors.New("unknown principal")

	// errCardExists aborts an entry's transaction when the card number is taken
	errCardExists = errors.New("card already exists")
)
