// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/duongnk/eventide/internal/platform/apperr"
	"github.com/duongnk/eventide/internal/platform/ctxutil"
	requestutil "github.com/duongnk/eventide/internal/platform/request"
	"github.com/duongnk/eventide/internal/platform/respond"
	"github.com/duongnk/eventide/pkg/convert"
	"github.com/duongnk/eventide/pkg/pagination"
)

// maxUploadBytes caps a single multipart upload at 50 MiB.
const maxUploadBytes = 50 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the visitor-facing gallery, scoped to the
// session's display language.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listGallery)
}

// RegisterAdminRoutes mounts the role-guarded media surface.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listMedia)
	router.Post("/", handler.uploadMedia)
	router.Delete("/{id}", handler.deleteMedia)
}

func (handler *Handler) listGallery(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	language := ctxutil.GetLanguage(request.Context())

	assets, total, err := handler.service.ListGallery(request.Context(), language, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, assets, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listMedia(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		MediaType: request.URL.Query().Get("media_type"),
	}

	assets, total, err := handler.service.ListMedia(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, assets, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) uploadMedia(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxUploadBytes)

	file, header, err := request.FormFile(FieldFile)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Missing upload", apperr.FieldError{
			Field:   FieldFile,
			Message: "a multipart 'file' field is required",
		}))
		return
	}
	defer file.Close()

	var linkedType *string
	var linkedID *int
	if raw := request.FormValue("linked_type"); raw != "" {
		linkedType = &raw
		id := convert.ToInt(request.FormValue("linked_id"))
		linkedID = &id
	}

	asset, err := handler.service.Upload(request.Context(), header.Filename, file, linkedType, linkedID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, asset)
}

func (handler *Handler) deleteMedia(writer http.ResponseWriter, request *http.Request) {
	mediaID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), mediaID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
