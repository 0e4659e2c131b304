package importer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/thenoetrevino/cardport/internal/archive"
	"github.com/thenoetrevino/cardport/internal/database"
	"github.com/thenoetrevino/cardport/internal/models"
)

// importAttachments stores every payload under the card's directory.
// Failures are logged and counted; they never undo the card.
func (r *run) importAttachments(ctx context.Context, log *slog.Logger, card *models.Card) (imported, failed int) {
	for _, att := range r.archive.AttachmentsFor(card.Number) {
		if err := r.importAttachment(ctx, card, att); err != nil {
			log.Warn("failed to import attachment", "attachment", att.Name, "error", err)
			failed++
			continue
		}
		imported++
	}
	return imported, failed
}

func (r *run) importAttachment(ctx context.Context, card *models.Card, att archive.AttachmentEntry) error {
	src, err := att.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	tmp, err := os.CreateTemp(r.im.opts.Import.TempDir, "cardport-attachment-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		if err := os.Remove(tmp.Name()); err != nil && !os.IsNotExist(err) {
			r.log.Warn("failed to remove temp file", "path", tmp.Name(), "error", err)
		}
	}()

	sum := sha256.New()
	size, err := io.Copy(io.MultiWriter(tmp, sum), src)
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", att.Name, err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind staged file: %w", err)
	}

	key := uuid.NewString()
	contentType := att.ContentType()
	if err := r.im.blobs.Put(ctx, key, tmp, size, contentType); err != nil {
		return err
	}

	_, err = r.im.repo.CreateAttachment(ctx, database.CreateAttachmentParams{
		CardID:      card.ID,
		Filename:    att.Filename(),
		ContentType: contentType,
		ByteSize:    size,
		Checksum:    hex.EncodeToString(sum.Sum(nil)),
		BlobKey:     key,
	})
	if err != nil {
		if delErr := r.im.blobs.Delete(ctx, key); delErr != nil {
			r.log.Warn("failed to delete orphaned blob", "key", key, "error", delErr)
		}
		return err
	}
	return nil
}
