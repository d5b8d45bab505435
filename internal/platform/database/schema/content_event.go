package schema

// ContentEventTable represents the 'content.event' table
type ContentEventTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	Location    string
	Tags        string
	Language    string
	EventDate   string
	CreatedAt   string
}

// ContentEvent is the schema definition for content.event
var ContentEvent = ContentEventTable{
	Table:       "content.event",
	ID:          "id",
	Title:       "title",
	Description: "description",
	Location:    "location",
	Tags:        "tags",
	Language:    "language",
	EventDate:   "event_date",
	CreatedAt:   "created_at",
}

func (t ContentEventTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.Location, t.Tags, t.Language, t.EventDate, t.CreatedAt,
	}
}
