// Package importer loads a card export archive into the store
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/cardport/internal/archive"
	"github.com/thenoetrevino/cardport/internal/config"
	"github.com/thenoetrevino/cardport/internal/database"
	"github.com/thenoetrevino/cardport/internal/logging"
	"github.com/thenoetrevino/cardport/internal/models"
	"github.com/thenoetrevino/cardport/internal/richtext"
	"github.com/thenoetrevino/cardport/internal/storage"
)

// Service runs imports
type Service interface {
	Run(ctx context.Context, archivePath, email string) (*Summary, error)
}

// ProgressReporter is told how many entries have been handled so far
type ProgressReporter interface {
	Progress(current, total int)
}

// ProgressFunc adapts a function to ProgressReporter
type ProgressFunc func(current, total int)

// Progress calls f
func (f ProgressFunc) Progress(current, total int) {
	f(current, total)
}

// Options tune a run
type Options struct {
	Import   config.Import
	Progress ProgressReporter
	Logger   *slog.Logger
	Now      func() time.Time
}

// Importer loads archives into a DataStore and a blob Store
type Importer struct {
	repo  database.DataStore
	blobs storage.Store
	opts  Options
}

var _ Service = (*Importer)(nil)

// New creates an importer. Zero-valued options get defaults.
func New(repo database.DataStore, blobs storage.Store, opts Options) *Importer {
	if len(opts.Import.TerminalStatuses) == 0 {
		opts.Import.TerminalStatuses = append([]string(nil), models.DefaultTerminalStatuses...)
	}
	if opts.Import.ClosedStatus == "" {
		opts.Import.ClosedStatus = models.StatusDone
	}
	if opts.Import.PostponedStatus == "" {
		opts.Import.PostponedStatus = models.StatusNotNow
	}
	if opts.Progress == nil {
		opts.Progress = ProgressFunc(func(int, int) {})
	}
	if opts.Logger == nil {
		opts.Logger = logging.Logger
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Importer{repo: repo, blobs: blobs, opts: opts}
}

// Run imports every card entry of the archive on behalf of the user with
// the given email. Entries that fail are skipped and listed in the summary;
// only precondition failures and cancellation return an error.
func (im *Importer) Run(ctx context.Context, archivePath, email string) (*Summary, error) {
	archivePath = strings.TrimSpace(archivePath)
	email = strings.TrimSpace(email)
	if archivePath == "" {
		return nil, fmt.Errorf("%w: archive path", ErrMissingArgument)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: principal email", ErrMissingArgument)
	}

	a, err := archive.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := a.Close(); err != nil {
			im.opts.Logger.Warn("failed to close archive", "path", archivePath, "error", err)
		}
	}()

	user, err := im.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPrincipal, email)
		}
		return nil, fmt.Errorf("failed to resolve principal: %w", err)
	}

	r := newRun(im, a, user)
	return r.execute(ctx)
}

// run holds the state of one Run call. The board and column caches only
// ever hold rows from committed transactions.
type run struct {
	im      *Importer
	archive *archive.Archive
	user    *models.User
	log     *slog.Logger
	summary *Summary

	boards  map[string]*models.Board
	columns map[columnKey]*models.Column
}

type columnKey struct {
	boardID int
	name    string
}

func newRun(im *Importer, a *archive.Archive, user *models.User) *run {
	id := uuid.NewString()
	return &run{
		im:      im,
		archive: a,
		user:    user,
		log:     im.opts.Logger.With("run_id", id),
		summary: &Summary{
			RunID:       id,
			ArchivePath: a.Path(),
			StartedAt:   im.opts.Now().UTC(),
		},
		boards:  make(map[string]*models.Board),
		columns: make(map[columnKey]*models.Column),
	}
}

func (r *run) execute(ctx context.Context) (*Summary, error) {
	entries := r.archive.Entries()
	r.summary.Total = len(entries)
	r.log.Info("import started", "archive", r.summary.ArchivePath, "entries", len(entries), "principal", r.user.Email)

	var runErr error
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			runErr = fmt.Errorf("import interrupted after %d of %d entries: %w", i, len(entries), err)
			break
		}

		res := r.importEntry(ctx, entry)
		r.summary.add(res)
		if res.outcome == outcomeFailed {
			r.log.Warn("skipped entry", "entry", entry.Name, "error", res.err)
		}
		r.im.opts.Progress.Progress(i+1, len(entries))
	}

	r.summary.FinishedAt = r.im.opts.Now().UTC()
	r.record(ctx)

	r.log.Info("import finished",
		"boards", r.summary.Boards,
		"cards", r.summary.Cards,
		"comments", r.summary.Comments,
		"attachments", r.summary.Attachments,
		"skipped", r.summary.Skipped,
		"elapsed", r.summary.Elapsed(),
	)
	return r.summary, runErr
}

// record persists the run. A failure here does not fail the import.
func (r *run) record(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	if err := r.im.repo.CreateImportRun(ctx, r.summary.toRun(r.user.AccountID, r.user.ID)); err != nil {
		r.log.Error("failed to record import run", "error", err)
	}
}

// pending collects rows created inside an entry's transaction. They join
// the run caches only once the transaction commits.
type pending struct {
	boards  map[string]*models.Board
	columns map[columnKey]*models.Column
}

func (r *run) importEntry(ctx context.Context, entry archive.Entry) entryResult {
	res := entryResult{entry: entry.Name}
	log := r.log.With("entry", entry.Name)

	rec, err := entry.Decode()
	if err != nil {
		res.outcome, res.err = outcomeFailed, err
		return res
	}

	p := &pending{
		boards:  make(map[string]*models.Board),
		columns: make(map[columnKey]*models.Column),
	}
	var card *models.Card

	err = r.im.repo.WithTx(ctx, func(tx database.DataStore) error {
		exists, err := tx.CardNumberExists(ctx, r.user.AccountID, entry.Number)
		if err != nil {
			return err
		}
		if exists {
			return errCardExists
		}

		board, err := r.resolveBoard(ctx, tx, p, rec)
		if err != nil {
			return err
		}

		var columnID *int
		if rec.Status != "" && !r.im.opts.Import.IsTerminal(rec.Status) {
			column, err := r.resolveColumn(ctx, tx, p, board.ID, rec.Status)
			if err != nil {
				return err
			}
			columnID = &column.ID
		}

		card, err = createCard(ctx, tx, r.user, board.ID, columnID, entry.Number, rec)
		if err != nil {
			return err
		}

		if err := r.applyLifecycle(ctx, tx, card, rec); err != nil {
			return err
		}

		for _, c := range rec.Comments {
			if _, err := tx.CreateComment(ctx, card.ID, r.user.ID, richtext.Sanitize(c.Body), c.CreatedAt); err != nil {
				return err
			}
			res.comments++
		}
		return nil
	})

	switch {
	case errors.Is(err, errCardExists):
		log.Debug("card already exists", "number", entry.Number)
		res.outcome, res.comments = outcomeExisting, 0
		return res
	case err != nil:
		res.outcome, res.comments, res.err = outcomeFailed, 0, err
		return res
	}

	for name, b := range p.boards {
		r.boards[name] = b
	}
	for k, c := range p.columns {
		r.columns[k] = c
	}
	res.boardsCreated = len(p.boards)
	res.outcome = outcomeImported

	res.attachments, res.attachmentErrors = r.importAttachments(ctx, log, card)
	log.Debug("imported card", "number", card.Number, "comments", res.comments, "attachments", res.attachments)
	return res
}

func (r *run) resolveBoard(ctx context.Context, tx database.DataStore, p *pending, rec *archive.Record) (*models.Board, error) {
	if b, ok := r.boards[rec.Board]; ok {
		return b, nil
	}
	if b, ok := p.boards[rec.Board]; ok {
		return b, nil
	}

	b, err := tx.GetBoardByName(ctx, r.user.AccountID, rec.Board)
	if err == nil {
		// Boards from earlier runs are cached without counting them as created.
		r.boards[rec.Board] = b
		return b, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	b, err = tx.CreateBoard(ctx, r.user.AccountID, r.user.ID, rec.Board, rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.boards[rec.Board] = b
	return b, nil
}

func (r *run) resolveColumn(ctx context.Context, tx database.DataStore, p *pending, boardID int, name string) (*models.Column, error) {
	key := columnKey{boardID: boardID, name: name}
	if c, ok := r.columns[key]; ok {
		return c, nil
	}
	if c, ok := p.columns[key]; ok {
		return c, nil
	}

	c, err := tx.GetColumnByName(ctx, boardID, name)
	if err == nil {
		r.columns[key] = c
		return c, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	c, err = tx.CreateColumn(ctx, boardID, name)
	if err != nil {
		return nil, err
	}
	p.columns[key] = c
	return c, nil
}

func createCard(ctx context.Context, tx database.DataStore, user *models.User, boardID int, columnID *int, number int, rec *archive.Record) (*models.Card, error) {
	return tx.CreateCard(ctx, database.CreateCardParams{
		AccountID:   user.AccountID,
		BoardID:     boardID,
		ColumnID:    columnID,
		Number:      number,
		Title:       rec.Title,
		Description: richtext.Sanitize(rec.Description),
		Status:      models.CardStatusPublished,
		CreatorID:   user.ID,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	})
}

// applyLifecycle closes or postpones the card. Transitions are stamped
// with the record's last update.
func (r *run) applyLifecycle(ctx context.Context, tx database.DataStore, card *models.Card, rec *archive.Record) error {
	switch rec.Status {
	case r.im.opts.Import.ClosedStatus:
		if err := tx.CloseCard(ctx, card.ID, r.user.ID, rec.UpdatedAt); err != nil {
			return err
		}
		card.ClosedAt, card.ClosedBy = &rec.UpdatedAt, &r.user.ID
	case r.im.opts.Import.PostponedStatus:
		if err := tx.PostponeCard(ctx, card.ID, r.user.ID, rec.UpdatedAt); err != nil {
			return err
		}
		card.PostponedAt, card.PostponedBy = &rec.UpdatedAt, &r.user.ID
	}
	return nil
}
