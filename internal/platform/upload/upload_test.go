// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package upload_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duongnk/eventide/internal/platform/upload"
)

/*
TestSanitizeFilename checks path-traversal stripping and character
replacement.
*/
func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "photo.png", "photo.png"},
		{"traversal_stripped", "../../etc/passwd", "passwd"},
		{"windows_separators", `..\..\boot.ini`, "boot.ini"},
		{"spaces_collapsed", "my photo (1).png", "my_photo_1_.png"},
		{"unicode_replaced", "ảnh đẹp.jpg", "nh_p.jpg"},
		{"empty_falls_back", "", "file"},
		{"dots_only_falls_back", "...", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, upload.SanitizeFilename(tt.input))
		})
	}
}

/*
TestStore_SaveAndDelete round-trips a file through the store.
*/
func TestStore_SaveAndDelete(t *testing.T) {
	store, err := upload.NewStore(t.TempDir())
	require.NoError(t, err)

	stored, err := store.Save("banner.png", bytes.NewReader([]byte("png-bytes")))
	require.NoError(t, err)

	// Stored name keeps the sanitized original, prefixed for uniqueness.
	assert.True(t, strings.HasSuffix(stored, "banner.png"))

	content, err := os.ReadFile(filepath.Join(store.Root(), stored))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), content)

	require.NoError(t, store.Delete(stored))
	_, err = os.Stat(filepath.Join(store.Root(), stored))
	assert.True(t, os.IsNotExist(err))
}
