// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package media

import "context"

/*
Repository defines the data access contract.

Parameters:
  - language: ListGallery resolves each asset's language through its linked
    event or post; unlinked assets count as the platform default language.

Returns:
  - List operations return the page plus the total matching count.
*/
type Repository interface {
	ListMedia(context context.Context, f Filter, limit, offset int) ([]*Media, int, error)
	ListGallery(context context.Context, language string, limit, offset int) ([]*Media, int, error)
	GetMedia(context context.Context, id int) (*Media, error)
	CreateMedia(context context.Context, m *Media) error
	DeleteMedia(context context.Context, id int) error
}
