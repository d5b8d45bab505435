// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package analytics

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/duongnk/eventide/internal/platform/database/schema"
	"github.com/duongnk/eventide/internal/platform/validate"
)

// viewScoreWeight is the popularity weight of a single detail-page view.
const viewScoreWeight = 1.0

// topContentLimit caps the most-viewed content report.
const topContentLimit = 10

// dashboardTopPages caps the dashboard's popular pages listing.
const dashboardTopPages = 5

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// RecordView logs a detail-page visit: one tracking row plus one counter
// bump. Failures are logged and swallowed so a broken analytics store can
// never take the content pages down with it.
func (service *Service) RecordView(context context.Context, page string, visitorID string, contentType string, contentID int, title string, categoryName string, referrer string) {
	if err := service.repo.TouchPage(context, page, viewScoreWeight); err != nil {
		service.logger.Error("page counter update failed", "error", err, "page", page)
	}

	event := &TrackingEvent{
		VisitorID:      visitorID,
		ContentType:    contentType,
		ContentID:      contentID,
		ContentTitle:   title,
		Category:       categoryName,
		Interaction:    InteractionView,
		ReferrerDomain: referrerDomain(referrer),
	}
	if err := service.repo.InsertTracking(context, event); err != nil {
		service.logger.Error("tracking insert failed", "error", err, "page", page)
	}
}

// Track stores an interaction reported by the public tracking endpoint.
// The visitor identity and referrer are taken from the session, never from
// the payload.
func (service *Service) Track(context context.Context, event *TrackingEvent, visitorID string, referrer string) error {
	if event.Interaction == "" {
		event.Interaction = InteractionView
	}

	validator := &validate.Validator{}
	validator.MaxLen("interaction", event.Interaction, 50)
	validator.MaxLen("content_type", event.ContentType, 50)
	validator.MaxLen("content_title", event.ContentTitle, 300)
	validator.MaxLen("category", event.Category, 100)

	if err := validator.Err(); err != nil {
		return err
	}

	event.VisitorID = visitorID
	event.ReferrerDomain = referrerDomain(referrer)

	return service.repo.InsertTracking(context, event)
}

func (service *Service) ListCounters(context context.Context) ([]*PageCounter, error) {
	return service.repo.ListCounters(context)
}

func (service *Service) ListTracking(context context.Context, limit, offset int) ([]*TrackingEvent, int, error) {
	return service.repo.ListTracking(context, limit, offset)
}

// BuildReport assembles the admin aggregate views of the tracking log.
func (service *Service) BuildReport(context context.Context) (*Report, error) {
	byInteraction, err := service.repo.AggregateTracking(context, schema.StatsTrackingEvent.Interaction)
	if err != nil {
		return nil, err
	}

	byContentType, err := service.repo.AggregateTracking(context, schema.StatsTrackingEvent.ContentType)
	if err != nil {
		return nil, err
	}

	byReferrer, err := service.repo.AggregateTracking(context, schema.StatsTrackingEvent.ReferrerDomain)
	if err != nil {
		return nil, err
	}

	topContent, err := service.repo.TopContentByViews(context, topContentLimit)
	if err != nil {
		return nil, err
	}

	return &Report{
		ByInteraction: byInteraction,
		ByContentType: byContentType,
		ByReferrer:    byReferrer,
		TopContent:    topContent,
	}, nil
}

// ExportCSV streams the full tracking log as CSV.
func (service *Service) ExportCSV(context context.Context, writer io.Writer) error {
	events, err := service.repo.AllTracking(context)
	if err != nil {
		return err
	}

	out := csv.NewWriter(writer)

	header := []string{"id", "visitor_id", "content_type", "content_id", "content_title", "category", "interaction", "referrer_domain", "created_at"}
	if err := out.Write(header); err != nil {
		return err
	}

	for _, event := range events {
		record := []string{
			strconv.Itoa(event.ID),
			event.VisitorID,
			event.ContentType,
			strconv.Itoa(event.ContentID),
			event.ContentTitle,
			event.Category,
			event.Interaction,
			event.ReferrerDomain,
			event.CreatedAt.Format(time.RFC3339),
		}
		if err := out.Write(record); err != nil {
			return err
		}
	}

	out.Flush()
	return out.Error()
}

// BuildDashboard assembles the admin landing summary.
func (service *Service) BuildDashboard(context context.Context) (*Dashboard, error) {
	events, posts, categories, media, messages, err := service.repo.EntityCounts(context)
	if err != nil {
		return nil, err
	}

	totalViews, err := service.repo.TotalViews(context)
	if err != nil {
		return nil, err
	}

	topPages, err := service.repo.TopPages(context, dashboardTopPages)
	if err != nil {
		return nil, err
	}
	if topPages == nil {
		topPages = []*PageCounter{}
	}

	return &Dashboard{
		Events:     events,
		Posts:      posts,
		Categories: categories,
		Media:      media,
		Messages:   messages,
		TotalViews: totalViews,
		TopPages:   topPages,
	}, nil
}

// referrerDomain reduces a raw Referer header to its host. Anything missing
// or unparsable counts as a direct visit.
func referrerDomain(referrer string) string {
	if referrer == "" {
		return ReferrerDirect
	}

	parsed, err := url.Parse(referrer)
	if err != nil || parsed.Hostname() == "" {
		return ReferrerDirect
	}

	return parsed.Hostname()
}
