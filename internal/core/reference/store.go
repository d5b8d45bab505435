// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package reference

import "context"

// Repository defines the data access contract for supporting content.
// List operations with a non-empty language return rows for that language
// only; an empty language returns everything (admin views).
type Repository interface {
	// Sponsors
	ListSponsors(context context.Context, language string) ([]*Sponsor, error)
	CreateSponsor(context context.Context, s *Sponsor) error
	DeleteSponsor(context context.Context, id int) error

	// Guides
	ListGuides(context context.Context, language string) ([]*Guide, error)
	GetGuideBySlug(context context.Context, slug string) (*Guide, error)
	CreateGuide(context context.Context, g *Guide) error
	DeleteGuide(context context.Context, id int) error

	// FAQs
	ListFAQs(context context.Context, language string) ([]*FAQ, error)
	CreateFAQ(context context.Context, f *FAQ) error
	DeleteFAQ(context context.Context, id int) error
}
