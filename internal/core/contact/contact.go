// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package contact

import "time"

// Message is one submission from the public contact form.
type Message struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)
