package models

import "time"

// ImportRun records one invocation of the archive importer and its counters
type ImportRun struct {
	ID          string    `json:"id"`
	AccountID   int       `json:"account_id"`
	UserID      int       `json:"user_id"`
	ArchivePath string    `json:"archive_path"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Boards      int       `json:"boards"`
	Cards       int       `json:"cards"`
	Comments    int       `json:"comments"`
	Attachments int       `json:"attachments"`
	Skipped     int       `json:"skipped"`
}
