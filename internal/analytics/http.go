// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package analytics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/duongnk/eventide/internal/platform/ctxutil"
	requestutil "github.com/duongnk/eventide/internal/platform/request"
	"github.com/duongnk/eventide/internal/platform/respond"
	"github.com/duongnk/eventide/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the tracking endpoint.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Post("/", handler.track)
}

// RegisterAdminRoutes mounts the role-guarded reporting surface.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/counters", handler.listCounters)
	router.Get("/tracking", handler.listTracking)
	router.Get("/report", handler.getReport)
	router.Get("/export", handler.exportCSV)
	router.Get("/dashboard", handler.getDashboard)
}

// trackPayload is the published tracking body. Note the "title" key, which
// differs from the stored column name.
type trackPayload struct {
	ContentType string `json:"content_type"`
	ContentID   int    `json:"content_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Interaction string `json:"interaction"`
}

// track acknowledges with the published bare {"ok": true} shape rather than
// the standard envelope.
func (handler *Handler) track(writer http.ResponseWriter, request *http.Request) {
	var payload trackPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := TrackingEvent{
		ContentType:  payload.ContentType,
		ContentID:    payload.ContentID,
		ContentTitle: payload.Title,
		Category:     payload.Category,
		Interaction:  payload.Interaction,
	}

	visitorID := ctxutil.GetVisitorID(request.Context())

	if err := handler.service.Track(request.Context(), &input, visitorID, request.Referer()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, map[string]bool{"ok": true})
}

func (handler *Handler) listCounters(writer http.ResponseWriter, request *http.Request) {
	counters, err := handler.service.ListCounters(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, counters)
}

func (handler *Handler) listTracking(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	events, total, err := handler.service.ListTracking(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getReport(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.BuildReport(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
}

func (handler *Handler) exportCSV(writer http.ResponseWriter, request *http.Request) {
	filename := "tracking-" + time.Now().Format("2006-01-02") + ".csv"

	writer.Header().Set("Content-Type", "text/csv; charset=utf-8")
	writer.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := handler.service.ExportCSV(request.Context(), writer); err != nil {
		// Headers are already out; all we can do is log through respond.
		respond.Error(writer, request, err)
	}
}

func (handler *Handler) getDashboard(writer http.ResponseWriter, request *http.Request) {
	dashboard, err := handler.service.BuildDashboard(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, dashboard)
}
