// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

/*
Package upload provides local filesystem storage for media files.

It is the infrastructure half of the media library: the domain layer decides
WHAT may be stored (extensions, link targets), this package decides WHERE and
HOW bytes land on disk.

Stored filenames are prefixed with a random hex UUID so that two uploads of
"party.jpg" never collide, and the original name survives for download UX.
*/
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// unsafeChars matches everything that is not a safe filename character.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Store persists uploaded files under a single root directory.
type Store struct {
	root string
}

// NewStore creates the upload root (if missing) and returns a [Store].
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("upload: failed to create directory %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Root returns the filesystem path files are stored under.
func (store *Store) Root() string {
	return store.root
}

/*
Save streams the reader to disk under a collision-free name.

Parameters:
  - originalName: The client-provided filename (sanitized before use).
  - reader: The file contents.

Returns:
  - string: The stored filename (uuid-hex prefix + sanitized original).
  - error: Filesystem failures.
*/
func (store *Store) Save(originalName string, reader io.Reader) (string, error) {
	filename := fmt.Sprintf("%s_%s", hexID(), SanitizeFilename(originalName))
	path := filepath.Join(store.root, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("upload: failed to create %s: %w", path, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		// Remove the partial file so the directory never holds torn writes.
		_ = os.Remove(path)
		return "", fmt.Errorf("upload: failed to write %s: %w", path, err)
	}

	return filename, nil
}

/*
Delete removes a stored file by its stored filename.

Description: Missing files are not an error; the database row is the source
of truth and the file may already be gone.
*/
func (store *Store) Delete(filename string) error {
	path := filepath.Join(store.root, SanitizeFilename(filename))

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("upload: failed to remove %s: %w", path, err)
	}

	return nil
}

// SanitizeFilename reduces a client-provided filename to a safe basename.
//
// Path separators are stripped first so "../../etc/passwd" cannot escape the
// upload root, then remaining unsafe characters collapse to underscores.
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	clean := unsafeChars.ReplaceAllString(base, "_")
	clean = strings.Trim(clean, "._")
	if clean == "" {
		return "file"
	}
	return clean
}

// hexID returns a compact hex form of a fresh UUID for filename prefixes.
func hexID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
