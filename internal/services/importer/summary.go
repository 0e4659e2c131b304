package importer

import (
	"time"

	"github.com/thenoetrevino/cardport/internal/models"
)

// Summary reports what a run did
type Summary struct {
	RunID            string    `json:"run_id"`
	ArchivePath      string    `json:"archive"`
	Total            int       `json:"total"`
	Boards           int       `json:"boards"`
	Cards            int       `json:"cards"`
	Comments         int       `json:"comments"`
	Attachments      int       `json:"attachments"`
	Skipped          int       `json:"skipped"`
	AttachmentErrors int       `json:"attachment_errors"`
	Failures         []Failure `json:"failures,omitempty"`
	StartedAt        time.Time `json:"started_at"`
	FinishedAt       time.Time `json:"finished_at"`
}

// Failure is an entry that could not be imported
type Failure struct {
	Entry  string `json:"entry"`
	Reason string `json:"reason"`
}

// Elapsed is the wall-clock duration of the run
func (s *Summary) Elapsed() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}

// GetID returns the number of imported cards (used by quiet output mode)
func (s *Summary) GetID() int {
	return s.Cards
}

func (s *Summary) toRun(accountID, userID int) *models.ImportRun {
	return &models.ImportRun{
		ID:          s.RunID,
		AccountID:   accountID,
		UserID:      userID,
		ArchivePath: s.ArchivePath,
		StartedAt:   s.StartedAt,
		FinishedAt:  s.FinishedAt,
		Boards:      s.Boards,
		Cards:       s.Cards,
		Comments:    s.Comments,
		Attachments: s.Attachments,
		Skipped:     s.Skipped,
	}
}

type outcome int

const (
	outcomeImported outcome = iota
	outcomeExisting
	outcomeFailed
)

// entryResult is what processing one archive entry produced
type entryResult struct {
	entry            string
	outcome          outcome
	boardsCreated    int
	comments         int
	attachments      int
	attachmentErrors int
	err              error
}

func (s *Summary) add(res entryResult) {
	switch res.outcome {
	case outcomeImported:
		s.Cards++
		s.Boards += res.boardsCreated
		s.Comments += res.comments
		s.Attachments += res.attachments
		s.AttachmentErrors += res.attachmentErrors
	case outcomeExisting:
		s.Skipped++
	case outcomeFailed:
		s.Skipped++
		s.Failures = append(s.Failures, Failure{Entry: res.entry, Reason: res.err.Error()})
	}
}
