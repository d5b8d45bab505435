package schema

// ContentEventCategoryTable represents the 'content.event_category' junction table.
//
// The serial id doubles as the association order: the event's display category
// is the row with the lowest id.
type ContentEventCategoryTable struct {
	Table      string
	ID         string
	EventID    string
	CategoryID string
}

// ContentEventCategory is the schema definition for content.event_category
var ContentEventCategory = ContentEventCategoryTable{
	Table:      "content.event_category",
	ID:         "id",
	EventID:    "event_id",
	CategoryID: "category_id",
}
