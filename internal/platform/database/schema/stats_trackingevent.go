package schema

// StatsTrackingEventTable represents the 'stats.tracking_event' table
type StatsTrackingEventTable struct {
	Table          string
	ID             string
	VisitorID      string
	ContentType    string
	ContentID      string
	ContentTitle   string
	Category       string
	Interaction    string
	ReferrerDomain string
	CreatedAt      string
}

// StatsTrackingEvent is the schema definition for stats.tracking_event
var StatsTrackingEvent = StatsTrackingEventTable{
	Table:          "stats.tracking_event",
	ID:             "id",
	VisitorID:      "visitor_id",
	ContentType:    "content_type",
	ContentID:      "content_id",
	ContentTitle:   "content_title",
	Category:       "category",
	Interaction:    "interaction",
	ReferrerDomain: "referrer_domain",
	CreatedAt:      "created_at",
}

func (t StatsTrackingEventTable) Columns() []string {
	return []string{
		t.ID, t.VisitorID, t.ContentType, t.ContentID, t.ContentTitle,
		t.Category, t.Interaction, t.ReferrerDomain, t.CreatedAt,
	}
}
