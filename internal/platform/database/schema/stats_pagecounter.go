package schema

// StatsPageCounterTable represents the 'stats.page_counter' table
type StatsPageCounterTable struct {
	Table           string
	ID              string
	Page            string
	Views           string
	PopularityScore string
	UpdatedAt       string
}

// StatsPageCounter is the schema definition for stats.page_counter
var StatsPageCounter = StatsPageCounterTable{
	Table:           "stats.page_counter",
	ID:              "id",
	Page:            "page",
	Views:           "views",
	PopularityScore: "popularity_score",
	UpdatedAt:       "updated_at",
}
