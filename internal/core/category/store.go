// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package category

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListCategories(context context.Context, contentType string) ([]*Category, error)
	GetCategory(context context.Context, id int) (*Category, error)
	CreateCategory(context context.Context, c *Category) error
	DeleteCategory(context context.Context, id int) error
}
