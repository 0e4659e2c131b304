// Package archive reads card export bundles: a ZIP holding one N.json file
// per card plus attachment payloads under N/.
package archive

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zip"
)

const defaultContentType = "application/octet-stream"

// Archive is an open export bundle
type Archive struct {
	path   string
	zr     *zip.ReadCloser
	byName map[string]*zip.File
}

// Open opens the ZIP at path. The caller must Close it.
func Open(path string) (*Archive, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrArchiveNotFound)
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArchiveNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrArchiveNotFound, path)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArchive, path, err)
	}

	byName := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		byName[f.Name] = f
	}
	return &Archive{path: path, zr: zr, byName: byName}, nil
}

// Path returns the path the archive was opened from
func (a *Archive) Path() string {
	return a.path
}

// Close releases the underlying file
func (a *Archive) Close() error {
	return a.zr.Close()
}

// Entry is a top-level JSON record in the archive
type Entry struct {
	Name   string
	Number int // -1 when the base name is not a card number
	file   *zip.File
}

// Entries lists the top-level JSON entries ordered by card number. Entries
// whose name is not a non-negative integer come last, ordered by name.
func (a *Archive) Entries() []Entry {
	var entries []Entry
	for _, f := range a.zr.File {
		if f.FileInfo().IsDir() || strings.Contains(f.Name, "/") {
			continue
		}
		if !strings.EqualFold(path.Ext(f.Name), ".json") {
			continue
		}
		entries = append(entries, Entry{
			Name:   f.Name,
			Number: parseNumber(strings.TrimSuffix(f.Name, path.Ext(f.Name))),
			file:   f,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.Number < 0 && b.Number < 0:
			return a.Name < b.Name
		case a.Number < 0:
			return false
		case b.Number < 0:
			return true
		default:
			return a.Number < b.Number
		}
	})
	return entries
}

func parseNumber(base string) int {
	if base == "" {
		return -1
	}
	for _, r := range base {
		if r < '0' || r > '9' {
			return -1
		}
	}
	n, err := strconv.Atoi(base)
	if err != nil {
		return -1
	}
	return n
}

// AttachmentEntry is a binary payload stored under N/
type AttachmentEntry struct {
	Name string
	file *zip.File
}

// AttachmentsFor lists the files stored below N/ in archive order
func (a *Archive) AttachmentsFor(number int) []AttachmentEntry {
	prefix := strconv.Itoa(number) + "/"
	var out []AttachmentEntry
	for _, f := range a.zr.File {
		if !strings.HasPrefix(f.Name, prefix) || f.FileInfo().IsDir() {
			continue
		}
		out = append(out, AttachmentEntry{Name: f.Name, file: f})
	}
	return out
}

// Filename is the original upload name: the base name with its leading
// "<key>_" segment removed. Names without an underscore are kept as is.
func (e AttachmentEntry) Filename() string {
	base := path.Base(e.Name)
	_, rest, found := strings.Cut(base, "_")
	if !found || rest == "" {
		return base
	}
	return rest
}

// ContentType infers the MIME type from the file extension
func (e AttachmentEntry) ContentType() string {
	ext := strings.ToLower(path.Ext(e.Filename()))
	if ext == "" {
		return defaultContentType
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return defaultContentType
}

// Size is the uncompressed payload size
func (e AttachmentEntry) Size() int64 {
	return int64(e.file.UncompressedSize64)
}

// Open returns a reader over the uncompressed payload
func (e AttachmentEntry) Open() (io.ReadCloser, error) {
	rc, err := e.file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", e.Name, err)
	}
	return rc, nil
}
