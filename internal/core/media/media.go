// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package media

import (
	"path/filepath"
	"strings"
	"time"
)

// Media represents an uploaded gallery asset, optionally linked to an event
// or post.
type Media struct {
	ID         int       `json:"id"`
	Filename   string    `json:"filename"`
	MediaType  string    `json:"media_type"`
	LinkedType *string   `json:"linked_type"`
	LinkedID   *int      `json:"linked_id"`
	UploadedAt time.Time `json:"uploaded_at"`

	// URL is the public path the file is served from. Derived, not stored.
	URL string `json:"url"`
}

// Filter holds the parameters for a media listing.
type Filter struct {
	MediaType string // "image" or "video"; empty = any
}

const (
	TypeImage = "image"
	TypeVideo = "video"
)

// URLPrefix is the public mount point of the upload directory.
const URLPrefix = "/uploads/"

const (
	FieldFile       = "file"
	FieldLinkedType = "linked_type"
)

// extensionTypes maps allowed upload extensions to their media type.
// Anything absent from this table is rejected.
var extensionTypes = map[string]string{
	".png":  TypeImage,
	".jpg":  TypeImage,
	".jpeg": TypeImage,
	".gif":  TypeImage,
	".webp": TypeImage,
	".mp4":  TypeVideo,
	".mov":  TypeVideo,
	".webm": TypeVideo,
}

// Classify derives the media type from a filename extension. The second
// return value is false for disallowed extensions.
func Classify(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	mediaType, ok := extensionTypes[ext]
	return mediaType, ok
}

// PublicURL computes the serving path for a stored filename.
func PublicURL(filename string) string {
	return URLPrefix + filename
}
