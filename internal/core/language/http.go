// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/duongnk/eventide/internal/platform/ctxutil"
	requestutil "github.com/duongnk/eventide/internal/platform/request"
	"github.com/duongnk/eventide/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.getLanguage)
	router.Put("/", handler.setLanguage)
}

type languagePayload struct {
	Language string `json:"language"`
}

func (handler *Handler) getLanguage(writer http.ResponseWriter, request *http.Request) {
	visitorID := ctxutil.GetVisitorID(request.Context())

	respond.OK(writer, map[string]any{
		"language":  handler.service.Current(request.Context(), visitorID),
		"supported": Supported,
	})
}

func (handler *Handler) setLanguage(writer http.ResponseWriter, request *http.Request) {
	var payload languagePayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	visitorID := ctxutil.GetVisitorID(request.Context())

	code, err := handler.service.Choose(request.Context(), visitorID, payload.Language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"language": code})
}
