package schema

// UsersAdminAccountTable represents the 'users.admin_account' table
type UsersAdminAccountTable struct {
	Table        string
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    string
}

// UsersAdminAccount is the schema definition for users.admin_account
var UsersAdminAccount = UsersAdminAccountTable{
	Table:        "users.admin_account",
	ID:           "id",
	Username:     "username",
	PasswordHash: "password_hash",
	Role:         "role",
	CreatedAt:    "created_at",
}
