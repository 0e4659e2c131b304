package archive

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Record is one decoded card export
type Record struct {
	Board       string
	Status      string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Comments    []CommentRecord
}

// CommentRecord is a comment as exported. The author is not carried.
type CommentRecord struct {
	Body      string
	CreatedAt time.Time
}

type rawRecord struct {
	Board       string       `json:"board"`
	Status      string       `json:"status"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	Comments    []rawComment `json:"comments"`
}

type rawComment struct {
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// ISO-8601 layouts seen in exports, most specific first
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999 -0700",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Decode reads and validates the entry's JSON payload
func (e Entry) Decode() (*Record, error) {
	if e.Number < 0 {
		return nil, fmt.Errorf("%s: %w", e.Name, ErrNotCardEntry)
	}
	rc, err := e.file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", e.Name, err)
	}
	defer rc.Close()
	return DecodeRecord(rc)
}

// DecodeRecord parses a card export from r
func DecodeRecord(r io.Reader) (*Record, error) {
	var raw rawRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}

	if strings.TrimSpace(raw.Board) == "" {
		return nil, fmt.Errorf("%w: board", ErrMissingField)
	}
	if strings.TrimSpace(raw.Title) == "" {
		return nil, fmt.Errorf("%w: title", ErrMissingField)
	}
	if raw.CreatedAt == "" {
		return nil, fmt.Errorf("%w: created_at", ErrMissingField)
	}

	rec := &Record{
		Board:  strings.TrimSpace(raw.Board),
		Status: strings.TrimSpace(raw.Status),
		Title:  raw.Title,
	}
	if raw.Description != nil {
		rec.Description = *raw.Description
	}

	var err error
	if rec.CreatedAt, err = parseTime("created_at", raw.CreatedAt); err != nil {
		return nil, err
	}
	rec.UpdatedAt = rec.CreatedAt
	if raw.UpdatedAt != "" {
		if rec.UpdatedAt, err = parseTime("updated_at", raw.UpdatedAt); err != nil {
			return nil, err
		}
	}

	for i, c := range raw.Comments {
		created := rec.CreatedAt
		if c.CreatedAt != "" {
			if created, err = parseTime(fmt.Sprintf("comments[%d].created_at", i), c.CreatedAt); err != nil {
				return nil, err
			}
		}
		rec.Comments = append(rec.Comments, CommentRecord{Body: c.Body, CreatedAt: created})
	}
	return rec, nil
}

func parseTime(field, value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s %q", ErrBadTimestamp, field, value)
}
