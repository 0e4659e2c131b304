package database

import (
	"context"
	"fmt"
	"time"

	"github.com/thenoetrevino/cardport/internal/models"
)

// AttachmentRepo handles attachment metadata. Payloads live in the blob store.
type AttachmentRepo struct {
	*conn
}

// CreateAttachmentParams describes a stored blob to attach to a card
type CreateAttachmentParams struct {
	CardID      int
	Filename    string
	ContentType string
	ByteSize    int64
	Checksum    string
	BlobKey     string
}

// CreateAttachment records an attachment for a card
func (r *AttachmentRepo) CreateAttachment(ctx context.Context, p CreateAttachmentParams) (*models.Attachment, error) {
	now := time.Now().UTC()
	id, err := r.insertID(ctx,
		`INSERT INTO attachments (card_id, filename, content_type, byte_size, checksum, blob_key, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.CardID, p.Filename, p.ContentType, p.ByteSize, p.Checksum, p.BlobKey, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert attachment '%s' for card %d: %w", p.Filename, p.CardID, err)
	}
	return &models.Attachment{
		ID:          id,
		CardID:      p.CardID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		ByteSize:    p.ByteSize,
		Checksum:    p.Checksum,
		BlobKey:     p.BlobKey,
		CreatedAt:   now,
	}, nil
}

// GetAttachmentsForCard retrieves a card's attachments in insertion order
func (r *AttachmentRepo) GetAttachmentsForCard(ctx context.Context, cardID int) ([]*models.Attachment, error) {
	rows, err := r.query(ctx,
		`SELECT id, card_id, filename, content_type, byte_size, checksum, blob_key, created_at
		 FROM attachments WHERE card_id = ? ORDER BY id`,
		cardID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments for card %d: %w", cardID, err)
	}
	defer rows.Close()

	var attachments []*models.Attachment
	for rows.Next() {
		a := &models.Attachment{}
		if err := rows.Scan(&a.ID, &a.CardID, &a.Filename, &a.ContentType, &a.ByteSize, &a.Checksum, &a.BlobKey, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}
