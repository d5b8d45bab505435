// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package post

import "context"

// Repository defines the data access contract. Create and Update replace the
// stored category assignment with exactly categoryIDs, in the given order.
type Repository interface {
	ListPosts(context context.Context, f Filter, limit, offset int) ([]*Post, int, error)
	GetPost(context context.Context, id int) (*Post, error)
	CreatePost(context context.Context, p *Post, categoryIDs []int) error
	UpdatePost(context context.Context, p *Post, categoryIDs []int) error
	DeletePost(context context.Context, id int) error
}
