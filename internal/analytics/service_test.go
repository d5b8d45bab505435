// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package analytics_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duongnk/eventide/internal/analytics"
)

// recordingRepository captures writes and serves canned reads.
type recordingRepository struct {
	touchedPages  []string
	touchedWeight float64
	inserted      []*analytics.TrackingEvent

	allTracking []*analytics.TrackingEvent
	failTouch   error
}

func (repo *recordingRepository) TouchPage(_ context.Context, page string, scoreWeight float64) error {
	if repo.failTouch != nil {
		return repo.failTouch
	}
	repo.touchedPages = append(repo.touchedPages, page)
	repo.touchedWeight = scoreWeight
	return nil
}

func (repo *recordingRepository) ListCounters(_ context.Context) ([]*analytics.PageCounter, error) {
	return nil, nil
}

func (repo *recordingRepository) TopPages(_ context.Context, _ int) ([]*analytics.PageCounter, error) {
	return nil, nil
}

func (repo *recordingRepository) InsertTracking(_ context.Context, event *analytics.TrackingEvent) error {
	repo.inserted = append(repo.inserted, event)
	return nil
}

func (repo *recordingRepository) ListTracking(_ context.Context, _, _ int) ([]*analytics.TrackingEvent, int, error) {
	return nil, 0, nil
}

func (repo *recordingRepository) AllTracking(_ context.Context) ([]*analytics.TrackingEvent, error) {
	return repo.allTracking, nil
}

func (repo *recordingRepository) AggregateTracking(_ context.Context, _ string) ([]analytics.CountRow, error) {
	return nil, nil
}

func (repo *recordingRepository) TopContentByViews(_ context.Context, _ int) ([]analytics.TopContent, error) {
	return nil, nil
}

func (repo *recordingRepository) EntityCounts(_ context.Context) (int, int, int, int, int, error) {
	return 3, 2, 4, 5, 1, nil
}

func (repo *recordingRepository) TotalViews(_ context.Context) (int, error) {
	return 42, nil
}

/*
TestService_Track_Defaults checks the interaction default and that the
session identity always wins over the payload.
*/
func TestService_Track_Defaults(t *testing.T) {
	tests := []struct {
		name            string
		event           analytics.TrackingEvent
		referrer        string
		wantInteraction string
		wantReferrer    string
	}{
		{
			"defaults_to_view_and_direct",
			analytics.TrackingEvent{ContentType: "event", ContentID: 1, ContentTitle: "Jazz Night"},
			"",
			"view", "direct",
		},
		{
			"explicit_interaction_kept",
			analytics.TrackingEvent{ContentType: "post", Interaction: "share"},
			"https://social.example.com/feed?ref=1",
			"share", "social.example.com",
		},
		{
			"payload_visitor_id_overwritten",
			analytics.TrackingEvent{VisitorID: "spoofed", ReferrerDomain: "spoofed.example"},
			"",
			"view", "direct",
		},
		{
			"unparsable_referrer_is_direct",
			analytics.TrackingEvent{},
			"not a url",
			"view", "direct",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &recordingRepository{}
			service := analytics.NewService(repo, slog.Default())

			event := tt.event
			err := service.Track(context.Background(), &event, "visitor-1", tt.referrer)
			require.NoError(t, err)
			require.Len(t, repo.inserted, 1)

			got := repo.inserted[0]
			assert.Equal(t, tt.wantInteraction, got.Interaction)
			assert.Equal(t, tt.wantReferrer, got.ReferrerDomain)
			assert.Equal(t, "visitor-1", got.VisitorID)
		})
	}
}

/*
TestService_Track_Validation rejects oversized field values.
*/
func TestService_Track_Validation(t *testing.T) {
	repo := &recordingRepository{}
	service := analytics.NewService(repo, slog.Default())

	event := analytics.TrackingEvent{Interaction: strings.Repeat("x", 51)}
	err := service.Track(context.Background(), &event, "visitor-1", "")

	require.Error(t, err)
	assert.Empty(t, repo.inserted)
}

/*
TestService_RecordView checks the counter bump plus tracking row pair,
and that a counter failure never blocks the tracking insert.
*/
func TestService_RecordView(t *testing.T) {
	repo := &recordingRepository{}
	service := analytics.NewService(repo, slog.Default())

	service.RecordView(context.Background(), "event:7", "visitor-1", "event", 7, "Jazz Night", "Music", "https://news.example.org/daily")

	require.Equal(t, []string{"event:7"}, repo.touchedPages)
	assert.Equal(t, 1.0, repo.touchedWeight)

	require.Len(t, repo.inserted, 1)
	got := repo.inserted[0]
	assert.Equal(t, analytics.InteractionView, got.Interaction)
	assert.Equal(t, "news.example.org", got.ReferrerDomain)
	assert.Equal(t, "Jazz Night", got.ContentTitle)
	assert.Equal(t, "Music", got.Category)

	// The counter failing must not stop the tracking row.
	failing := &recordingRepository{failTouch: assert.AnError}
	service = analytics.NewService(failing, slog.Default())
	service.RecordView(context.Background(), "post:1", "visitor-2", "post", 1, "Recap", "", "")

	assert.Len(t, failing.inserted, 1)
}

/*
TestService_ExportCSV checks the header row and field ordering.
*/
func TestService_ExportCSV(t *testing.T) {
	repo := &recordingRepository{
		allTracking: []*analytics.TrackingEvent{
			{
				ID: 1, VisitorID: "v-1", ContentType: "event", ContentID: 7,
				ContentTitle: "Jazz Night", Category: "Music", Interaction: "view",
				ReferrerDomain: "direct",
				CreatedAt:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	service := analytics.NewService(repo, slog.Default())

	var buf bytes.Buffer
	require.NoError(t, service.ExportCSV(context.Background(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,visitor_id,content_type,content_id,content_title,category,interaction,referrer_domain,created_at", lines[0])
	assert.Equal(t, "1,v-1,event,7,Jazz Night,Music,view,direct,2024-05-01T12:00:00Z", lines[1])
}

/*
TestService_BuildDashboard checks the summary wiring and the non-nil
top pages guarantee.
*/
func TestService_BuildDashboard(t *testing.T) {
	service := analytics.NewService(&recordingRepository{}, slog.Default())

	dashboard, err := service.BuildDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.Events)
	assert.Equal(t, 2, dashboard.Posts)
	assert.Equal(t, 4, dashboard.Categories)
	assert.Equal(t, 5, dashboard.Media)
	assert.Equal(t, 1, dashboard.Messages)
	assert.Equal(t, 42, dashboard.TotalViews)
	assert.NotNil(t, dashboard.TopPages)
}
