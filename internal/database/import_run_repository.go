package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/cardport/internal/models"
)

// ImportRunRepo persists the history of importer invocations.
type ImportRunRepo struct {
	*conn
}

// CreateImportRun stores a finished run
func (r *ImportRunRepo) CreateImportRun(ctx context.Context, run *models.ImportRun) error {
	_, err := r.exec(ctx,
		`INSERT INTO import_runs (id, account_id, user_id, archive_path, started_at, finished_at,
			boards, cards, comments, attachments, skipped)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.AccountID, run.UserID, run.ArchivePath, run.StartedAt, run.FinishedAt,
		run.Boards, run.Cards, run.Comments, run.Attachments, run.Skipped,
	)
	if err != nil {
		return fmt.Errorf("failed to insert import run %s: %w", run.ID, err)
	}
	return nil
}

// GetRecentImportRuns returns up to limit runs, newest first
func (r *ImportRunRepo) GetRecentImportRuns(ctx context.Context, limit int) ([]*models.ImportRun, error) {
	rows, err := r.query(ctx,
		`SELECT id, account_id, user_id, archive_path, started_at, finished_at,
			boards, cards, comments, attachments, skipped
		 FROM import_runs ORDER BY started_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query import runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.ImportRun
	for rows.Next() {
		run := &models.ImportRun{}
		if err := rows.Scan(&run.ID, &run.AccountID, &run.UserID, &run.ArchivePath, &run.StartedAt, &run.FinishedAt,
			&run.Boards, &run.Cards, &run.Comments, &run.Attachments, &run.Skipped); err != nil {
			return nil, fmt.Errorf("failed to scan import run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
