package archive

import "errors"

var (
	// ErrArchiveNotFound is returned when the archive path does not exist
	ErrArchiveNotFound = errors.New("archive not found")
	// ErrInvalidArchive is returned when the file is not a readable ZIP
	ErrInvalidArchive = errors.New("invalid archive")
	// ErrNotCardEntry is returned when decoding an entry whose name is not a card number
	ErrNotCardEntry = errors.New("entry name is not a card number")
	// ErrMissingField is returned when a record lacks a required field
	ErrMissingField = errors.New("missing required field")
	// ErrBadTimestamp is returned for timestamps that are not ISO-8601
	ErrBadTimestamp = errors.New("invalid timestamp")
)
