package schema

// ContentSponsorTable represents the 'content.sponsor' table
type ContentSponsorTable struct {
	Table     string
	ID        string
	Name      string
	Website   string
	Tier      string
	Language  string
	CreatedAt string
}

// ContentSponsor is the schema definition for content.sponsor
var ContentSponsor = ContentSponsorTable{
	Table:     "content.sponsor",
	ID:        "id",
	Name:      "name",
	Website:   "website",
	Tier:      "tier",
	Language:  "language",
	CreatedAt: "created_at",
}
