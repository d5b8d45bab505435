// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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

// RegisterPublicRoutes mounts the contact form endpoint.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Post("/", handler.submitMessage)
}

// RegisterAdminRoutes mounts the role-guarded inbox.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listMessages)
	router.Delete("/{id}", handler.deleteMessage)
}

func (handler *Handler) submitMessage(writer http.ResponseWriter, request *http.Request) {
	var input Message
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Submit(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) listMessages(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	messages, total, err := handler.service.ListMessages(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, messages, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) deleteMessage(writer http.ResponseWriter, request *http.Request) {
	messageID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteMessage(request.Context(), messageID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
