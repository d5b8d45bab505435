// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search

import (
	"github.com/duongnk/eventide/internal/core/category"
	"github.com/duongnk/eventide/pkg/query"
)

// excerptRunes is the cut-off length of a post card's body excerpt.
const excerptRunes = 160

// Card is the flattened, render-ready projection of an event or post.
type Card struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Date       string   `json:"date"`
	Category   string   `json:"category"`
	CategoryID int      `json:"category_id"`
	Image      string   `json:"image,omitempty"`
	Tags       []string `json:"tags"`

	// Event-only fields
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`

	// Post-only field
	Excerpt string `json:"excerpt,omitempty"`
}

// EventCard flattens an event source into a card. An event with no category
// gets the "General"/0 sentinel.
func EventCard(source EventSource) Card {
	card := Card{
		ID:          source.ID,
		Title:       source.Title,
		Date:        source.Date.Format(DateLayout),
		Category:    source.CategoryName,
		CategoryID:  source.CategoryID,
		Image:       source.Image,
		Tags:        query.StringSlice(source.Tags),
		Description: source.Description,
		Location:    source.Location,
	}
	if card.Category == "" {
		card.Category = category.FallbackName
		card.CategoryID = category.FallbackID
	}
	if card.Tags == nil {
		card.Tags = []string{}
	}
	return card
}

// PostCard flattens a post source into a card, truncating the body to the
// excerpt length.
func PostCard(source PostSource) Card {
	card := Card{
		ID:         source.ID,
		Title:      source.Title,
		Date:       source.Date.Format(DateLayout),
		Category:   source.CategoryName,
		CategoryID: source.CategoryID,
		Image:      source.Image,
		Tags:       query.StringSlice(source.Tags),
		Excerpt:    excerpt(source.Body),
	}
	if card.Category == "" {
		card.Category = category.FallbackName
		card.CategoryID = category.FallbackID
	}
	if card.Tags == nil {
		card.Tags = []string{}
	}
	return card
}

// excerpt returns the first excerptRunes runes of body, with an ellipsis
// marker only when something was cut. Shorter bodies pass through unchanged.
func excerpt(body string) string {
	runes := []rune(body)
	if len(runes) <= excerptRunes {
		return body
	}
	return string(runes[:excerptRunes]) + "..."
}
