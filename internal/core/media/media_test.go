// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package media_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duongnk/eventide/internal/core/media"
)

/*
TestClassify checks the extension whitelist and type mapping.
*/
func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantType string
		wantOK   bool
	}{
		{"png_image", "photo.png", media.TypeImage, true},
		{"uppercase_extension", "PHOTO.JPG", media.TypeImage, true},
		{"webp_image", "banner.webp", media.TypeImage, true},
		{"mp4_video", "clip.mp4", media.TypeVideo, true},
		{"mov_video", "clip.MOV", media.TypeVideo, true},
		{"executable_rejected", "malware.exe", "", false},
		{"no_extension_rejected", "README", "", false},
		{"double_extension_uses_last", "archive.tar.gz", "", false},
		{"svg_rejected", "vector.svg", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, ok := media.Classify(tt.filename)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantType, gotType)
		})
	}
}

/*
TestPublicURL checks the serving path derivation.
*/
func TestPublicURL(t *testing.T) {
	assert.Equal(t, "/uploads/photo.png", media.PublicURL("photo.png"))
}
