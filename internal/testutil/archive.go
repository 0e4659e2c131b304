package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

// ArchiveFile is one file placed into a test archive. A Name ending in "/"
// adds a directory entry.
type ArchiveFile struct {
	Name string
	Body string
}

// BuildArchive writes the files, in order, into a ZIP under t.TempDir()
// and returns its path
func BuildArchive(t *testing.T, files ...ArchiveFile) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "export.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create archive: %v", err)
	}

	zw := zip.NewWriter(f)
	for _, file := range files {
		w, err := zw.Create(file.Name)
		if err != nil {
			t.Fatalf("Failed to add %s: %v", file.Name, err)
		}
		if strings.HasSuffix(file.Name, "/") {
			continue
		}
		if _, err := w.Write([]byte(file.Body)); err != nil {
			t.Fatalf("Failed to write %s: %v", file.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to finish archive: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Failed to close archive: %v", err)
	}
	return path
}

// CardJSON renders a minimal card export. Comments are body strings stamped
// one hour after creation.
func CardJSON(board, status, title string, comments ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `{"board":%q,"status":%q,"title":%q,`, board, status, title)
	b.WriteString(`"description":"<p>Imported</p>",`)
	b.WriteString(`"created_at":"2024-01-15T09:30:00Z","updated_at":"2024-02-01T17:00:00.250Z","comments":[`)
	for i, body := range comments {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"body":%q,"created_at":"2024-01-15T10:30:00Z"}`, body)
	}
	b.WriteString("]}")
	return b.String()
}
