// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/duongnk/eventide/internal/platform/ctxutil"
	requestutil "github.com/duongnk/eventide/internal/platform/request"
	"github.com/duongnk/eventide/internal/platform/respond"
	"github.com/duongnk/eventide/pkg/convert"
	"github.com/duongnk/eventide/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the visitor-facing event surface. Listings are
// scoped to the session's display language.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listPublicEvents)
	router.Get("/{id}", handler.viewEvent)
}

// RegisterAdminRoutes mounts the role-guarded event surface.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listEvents)
	router.Get("/{id}", handler.getEvent)
	router.Post("/", handler.createEvent)
	router.Put("/{id}", handler.updateEvent)
	router.Delete("/{id}", handler.deleteEvent)
}

func (handler *Handler) listPublicEvents(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Language: ctxutil.GetLanguage(request.Context()),
	}

	events, total, err := handler.service.ListEvents(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) viewEvent(writer http.ResponseWriter, request *http.Request) {
	eventID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	visitorID := ctxutil.GetVisitorID(request.Context())

	found, err := handler.service.ViewEvent(request.Context(), eventID, visitorID, request.Referer())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	params := request.URL.Query()

	filter := Filter{
		Keyword:    params.Get("keyword"),
		CategoryID: convert.ToInt(params.Get("category")),
		Date:       params.Get("date"),
		Language:   params.Get("language"),
	}

	events, total, err := handler.service.ListEvents(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	eventID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.GetEvent(request.Context(), eventID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	var input Event
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateEvent(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateEvent(writer http.ResponseWriter, request *http.Request) {
	eventID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Event
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateEvent(request.Context(), eventID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteEvent(writer http.ResponseWriter, request *http.Request) {
	eventID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteEvent(request.Context(), eventID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
