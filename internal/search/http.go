// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/duongnk/eventide/internal/platform/ctxutil"
	"github.com/duongnk/eventide/internal/platform/respond"
	"github.com/duongnk/eventide/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the search surface on the public router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/search", handler.search)
	router.Get("/autocomplete", handler.autocomplete)
}

// search serves the published search contract. The response shape
// {results, total, page, per_page, has_next} is written directly, not
// wrapped in the standard envelope. Malformed paging numbers fall back to
// the defaults rather than erroring.
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()

	params := Params{
		Query:         values.Get("q"),
		ContentType:   values.Get("content_type"),
		EventCategory: values.Get("event_category"),
		PostCategory:  values.Get("post_category"),
		PostTag:       values.Get("post_tag"),
		MediaType:     values.Get("media_type"),
		DateFrom:      values.Get("date_from"),
		DateTo:        values.Get("date_to"),
		Sort:          values.Get("sort"),
	}

	pageNumber := convert.ToIntD(values.Get("page"), DefaultPage)
	size := convert.ToIntD(values.Get("per_page"), DefaultPageSize)

	// Language is read from the visitor session here, once, and passed down
	// explicitly.
	language := ctxutil.GetLanguage(request.Context())

	page, err := handler.service.Search(request.Context(), language, params, pageNumber, size)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, page)
}

// autocomplete serves the published {suggestions} shape.
func (handler *Handler) autocomplete(writer http.ResponseWriter, request *http.Request) {
	keyword := request.URL.Query().Get("q")
	language := ctxutil.GetLanguage(request.Context())

	suggestions, err := handler.service.Autocomplete(request.Context(), language, keyword)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, map[string][]string{"suggestions": suggestions})
}
