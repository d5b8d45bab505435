// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package contact

import "context"

// Repository defines the data access contract for the inbox.
type Repository interface {
	CreateMessage(context context.Context, m *Message) error
	ListMessages(context context.Context, limit, offset int) ([]*Message, int, error)
	DeleteMessage(context context.Context, id int) error
}
