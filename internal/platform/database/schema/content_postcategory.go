package schema

// ContentPostCategoryTable represents the 'content.post_category' junction table.
type ContentPostCategoryTable struct {
	Table      string
	ID         string
	PostID     string
	CategoryID string
}

// ContentPostCategory is the schema definition for content.post_category
var ContentPostCategory = ContentPostCategoryTable{
	Table:      "content.post_category",
	ID:         "id",
	PostID:     "post_id",
	CategoryID: "category_id",
}
