package schema

// ContentMediaTable represents the 'content.media' table
type ContentMediaTable struct {
	Table      string
	ID         string
	Filename   string
	MediaType  string
	LinkedType string
	LinkedID   string
	UploadedAt string
}

// ContentMedia is the schema definition for content.media
var ContentMedia = ContentMediaTable{
	Table:      "content.media",
	ID:         "id",
	Filename:   "filename",
	MediaType:  "media_type",
	LinkedType: "linked_type",
	LinkedID:   "linked_id",
	UploadedAt: "uploaded_at",
}

func (t ContentMediaTable) Columns() []string {
	return []string{
		t.ID, t.Filename, t.MediaType, t.LinkedType, t.LinkedID, t.UploadedAt,
	}
}
