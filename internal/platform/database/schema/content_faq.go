package schema

// ContentFAQTable represents the 'content.faq' table
type ContentFAQTable struct {
	Table     string
	ID        string
	Question  string
	Answer    string
	Language  string
	SortOrder string
	CreatedAt string
}

// ContentFAQ is the schema definition for content.faq
var ContentFAQ = ContentFAQTable{
	Table:     "content.faq",
	ID:        "id",
	Question:  "question",
	Answer:    "answer",
	Language:  "language",
	SortOrder: "sort_order",
	CreatedAt: "created_at",
}
