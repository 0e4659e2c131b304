package models

import "time"

// Attachment is a binary file attached to a card.
// The payload lives in the blob store under BlobKey.
type Attachment struct {
	ID          int
	CardID      int
	Filename    string
	ContentType string
	ByteSize    int64
	Checksum    string // hex SHA-256 of the payload
	BlobKey     string
	CreatedAt   time.Time
}
