// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duongnk/eventide/internal/search"
)

// fakeRepository serves canned sources keyed by language.
type fakeRepository struct {
	events map[string][]search.EventSource
	posts  map[string][]search.PostSource
	media  []search.MediaSource
}

func (repo *fakeRepository) EventsByLanguage(_ context.Context, language string) ([]search.EventSource, error) {
	return repo.events[language], nil
}

func (repo *fakeRepository) PostsByLanguage(_ context.Context, language string) ([]search.PostSource, error) {
	return repo.posts[language], nil
}

func (repo *fakeRepository) AllMedia(_ context.Context) ([]search.MediaSource, error) {
	return repo.media, nil
}

func ptr(s string) *string { return &s }

func testRepository() *fakeRepository {
	return &fakeRepository{
		events: map[string][]search.EventSource{
			"en": {
				{ID: 1, Title: "Jazz Night", Description: "Live jazz", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), CategoryName: "Music", CategoryID: 7},
			},
			"vi": {
				{ID: 2, Title: "Đêm nhạc", Description: "Nhạc sống", Date: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)},
			},
		},
		posts: map[string][]search.PostSource{
			"en": {
				{ID: 10, Title: "Season Recap", Body: "A look back.", Date: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), CategoryName: "Culture", CategoryID: 3},
			},
		},
		media: []search.MediaSource{
			// Linked to the English event.
			{ID: 100, Filename: "stage.jpg", MediaType: "image", UploadedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
				LinkedTitle: ptr("Jazz Night"), LinkedCategory: ptr("Music"), LinkedLanguage: ptr("en")},
			// Linked to the Vietnamese event; hidden from the English view.
			{ID: 101, Filename: "dem.jpg", MediaType: "image", UploadedAt: time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC),
				LinkedTitle: ptr("Đêm nhạc"), LinkedCategory: nil, LinkedLanguage: ptr("vi")},
			// Dangling link resolves to the sentinels and the default language.
			{ID: 102, Filename: "orphan.mp4", MediaType: "video", UploadedAt: time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func newTestService() *search.Service {
	return search.NewService(testRepository(), slog.Default())
}

/*
TestService_Search_LanguageScoping verifies that the pipeline only
surfaces content of the requested display language, with media resolved
against its linked entity.
*/
func TestService_Search_LanguageScoping(t *testing.T) {
	service := newTestService()

	page, err := service.Search(context.Background(), "en", search.Params{}, 1, 12)
	require.NoError(t, err)

	// Event 1, post 10, media 100 (en link) and 102 (dangling, default).
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, []int{10, 102, 100, 1}, ids(page.Results))

	page, err = service.Search(context.Background(), "vi", search.Params{}, 1, 12)
	require.NoError(t, err)

	// Event 2 and media 101 only; the dangling asset belongs to "en".
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, []int{101, 2}, ids(page.Results))
}

/*
TestService_Search_RowShape checks the published row shape for each
variant, including the empty-not-absent media fields.
*/
func TestService_Search_RowShape(t *testing.T) {
	service := newTestService()

	page, err := service.Search(context.Background(), "en", search.Params{Sort: search.SortDateAsc}, 1, 12)
	require.NoError(t, err)
	require.Len(t, page.Results, 4)

	eventRow := page.Results[0]
	assert.Equal(t, "event", eventRow.ContentType)
	assert.Equal(t, "Jazz Night", eventRow.Title)
	assert.Equal(t, "Live jazz", eventRow.Description)
	assert.Equal(t, "2024-05-01", eventRow.Date)
	assert.Equal(t, "Music", eventRow.Category)
	assert.Equal(t, "/events/1-jazz-night", eventRow.URL)
	assert.Empty(t, eventRow.MediaType)
	assert.Empty(t, eventRow.Thumbnail)

	mediaRow := page.Results[1]
	assert.Equal(t, "media", mediaRow.ContentType)
	assert.Equal(t, "Jazz Night", mediaRow.Title)
	assert.Equal(t, "image", mediaRow.MediaType)
	assert.Equal(t, "/uploads/stage.jpg", mediaRow.URL)
	assert.Equal(t, mediaRow.URL, mediaRow.Thumbnail)
	assert.NotNil(t, mediaRow.Tags)

	postRow := page.Results[3]
	assert.Equal(t, "post", postRow.ContentType)
	assert.Equal(t, "A look back.", postRow.Description)
	assert.Equal(t, "/posts/10-season-recap", postRow.URL)
}

/*
TestService_Search_DanglingMedia checks the sentinel fallbacks for
unassigned assets.
*/
func TestService_Search_DanglingMedia(t *testing.T) {
	service := newTestService()

	page, err := service.Search(context.Background(), "en", search.Params{ContentType: "media", MediaType: "video"}, 1, 12)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)

	row := page.Results[0]
	assert.Equal(t, 102, row.ID)
	assert.Equal(t, search.UnassignedTitle, row.Title)
	assert.Equal(t, "General", row.Category)
}

/*
TestService_Autocomplete runs suggestions through the serializer so
media titles resolved from links participate.
*/
func TestService_Autocomplete(t *testing.T) {
	service := newTestService()

	suggestions, err := service.Autocomplete(context.Background(), "en", "jazz")
	require.NoError(t, err)

	// The event and its linked media share a title; distinct keeps one.
	assert.Equal(t, []string{"Jazz Night"}, suggestions)

	suggestions, err = service.Autocomplete(context.Background(), "en", "")
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}
