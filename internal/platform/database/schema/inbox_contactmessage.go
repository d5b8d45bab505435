package schema

// InboxContactMessageTable represents the 'inbox.contact_message' table
type InboxContactMessageTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt string
}

// InboxContactMessage is the schema definition for inbox.contact_message
var InboxContactMessage = InboxContactMessageTable{
	Table:     "inbox.contact_message",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Message:   "message",
	CreatedAt: "created_at",
}
