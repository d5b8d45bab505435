// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search

import (
	"context"
	"fmt"

	"github.com/duongnk/eventide/internal/core/category"
	"github.com/duongnk/eventide/internal/core/media"
	"github.com/duongnk/eventide/internal/platform/constants"
	"github.com/duongnk/eventide/pkg/slice"
	"github.com/duongnk/eventide/pkg/slug"
)

// serialize flattens everything visible in the given display language into
// rows: events first, then posts, then media ordered newest upload first.
//
// Events and posts are language-scoped at the query. Media carries no
// language of its own, so every media row is resolved against its linked
// entity and kept only when the resolved language matches. The rows are
// rebuilt from the store on every call; nothing is cached.
func (service *Service) serialize(context context.Context, language string) ([]Row, error) {
	events, err := service.repo.EventsByLanguage(context, language)
	if err != nil {
		return nil, err
	}

	posts, err := service.repo.PostsByLanguage(context, language)
	if err != nil {
		return nil, err
	}

	assets, err := service.repo.AllMedia(context)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(events)+len(posts)+len(assets))
	rows = append(rows, slice.Map(events, eventRow)...)
	rows = append(rows, slice.Map(posts, postRow)...)

	for _, asset := range assets {
		if rowLanguage(asset) != language {
			continue
		}
		rows = append(rows, mediaRow(asset))
	}

	return rows, nil
}

func eventRow(source EventSource) Row {
	card := EventCard(source)
	return Row{
		ContentType: constants.ContentTypeEvent,
		ID:          card.ID,
		Title:       card.Title,
		Description: card.Description,
		Date:        card.Date,
		Category:    card.Category,
		Tags:        card.Tags,
		MediaType:   "",
		URL:         eventURL(card),
		Thumbnail:   "",
	}
}

func postRow(source PostSource) Row {
	card := PostCard(source)
	return Row{
		ContentType: constants.ContentTypePost,
		ID:          card.ID,
		Title:       card.Title,
		Description: card.Excerpt,
		Date:        card.Date,
		Category:    card.Category,
		Tags:        card.Tags,
		MediaType:   "",
		URL:         postURL(card),
		Thumbnail:   "",
	}
}

// mediaRow resolves a media asset against its linked entity. Missing or
// dangling links fall back to the "Unassigned"/"General" sentinels.
func mediaRow(asset MediaSource) Row {
	title := UnassignedTitle
	categoryName := category.FallbackName

	if asset.LinkedTitle != nil {
		title = *asset.LinkedTitle
	}
	if asset.LinkedCategory != nil && *asset.LinkedCategory != "" {
		categoryName = *asset.LinkedCategory
	}

	fileURL := media.PublicURL(asset.Filename)

	return Row{
		ContentType: constants.ContentTypeMedia,
		ID:          asset.ID,
		Title:       title,
		Description: "",
		Date:        asset.UploadedAt.Format(DateLayout),
		Category:    categoryName,
		Tags:        []string{},
		MediaType:   asset.MediaType,
		URL:         fileURL,
		Thumbnail:   fileURL,
	}
}

// rowLanguage is the display language a media asset belongs to: its linked
// entity's language, or the platform default for unassigned assets.
func rowLanguage(asset MediaSource) string {
	if asset.LinkedLanguage != nil && *asset.LinkedLanguage != "" {
		return *asset.LinkedLanguage
	}
	return constants.DefaultLanguage
}

func eventURL(card Card) string {
	return fmt.Sprintf("/events/%d-%s", card.ID, slug.From(card.Title))
}

func postURL(card Card) string {
	return fmt.Sprintf("/posts/%d-%s", card.ID, slug.From(card.Title))
}
