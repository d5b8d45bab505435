// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package event

import "context"

/*
Repository defines the data access contract.

Parameters:
  - Filter: listing constraints; all set fields apply together.
  - categoryIDs: the full desired junction set. Create and Update replace
    the stored assignment with exactly this set, in the given order.

Returns:
  - ListEvents returns the page of events plus the total matching count.
*/
type Repository interface {
	ListEvents(context context.Context, f Filter, limit, offset int) ([]*Event, int, error)
	GetEvent(context context.Context, id int) (*Event, error)
	CreateEvent(context context.Context, e *Event, categoryIDs []int) error
	UpdateEvent(context context.Context, e *Event, categoryIDs []int) error
	DeleteEvent(context context.Context, id int) error
}
