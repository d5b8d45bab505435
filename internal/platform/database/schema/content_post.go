package schema

// ContentPostTable represents the 'content.post' table
type ContentPostTable struct {
	Table       string
	ID          string
	Title       string
	Body        string
	Tags        string
	Language    string
	PublishedAt string
	CreatedAt   string
}

// ContentPost is the schema definition for content.post
var ContentPost = ContentPostTable{
	Table:       "content.post",
	ID:          "id",
	Title:       "title",
	Body:        "body",
	Tags:        "tags",
	Language:    "language",
	PublishedAt: "published_at",
	CreatedAt:   "created_at",
}

func (t ContentPostTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Body, t.Tags, t.Language, t.PublishedAt, t.CreatedAt,
	}
}
