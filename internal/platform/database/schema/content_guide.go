package schema

// ContentGuideTable represents the 'content.guide' table
type ContentGuideTable struct {
	Table     string
	ID        string
	Title     string
	Slug      string
	Body      string
	Language  string
	CreatedAt string
}

// ContentGuide is the schema definition for content.guide
var ContentGuide = ContentGuideTable{
	Table:     "content.guide",
	ID:        "id",
	Title:     "title",
	Slug:      "slug",
	Body:      "body",
	Language:  "language",
	CreatedAt: "created_at",
}
