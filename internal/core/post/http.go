// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package post

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

// RegisterPublicRoutes mounts the visitor-facing post surface. Listings are
// scoped to the session's display language.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listPublicPosts)
	router.Get("/{id}", handler.viewPost)
}

// RegisterAdminRoutes mounts the role-guarded post surface.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listPosts)
	router.Get("/{id}", handler.getPost)
	router.Post("/", handler.createPost)
	router.Put("/{id}", handler.updatePost)
	router.Delete("/{id}", handler.deletePost)
}

func (handler *Handler) listPublicPosts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Language: ctxutil.GetLanguage(request.Context()),
	}

	posts, total, err := handler.service.ListPosts(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) viewPost(writer http.ResponseWriter, request *http.Request) {
	postID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	visitorID := ctxutil.GetVisitorID(request.Context())

	found, err := handler.service.ViewPost(request.Context(), postID, visitorID, request.Referer())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	params := request.URL.Query()

	filter := Filter{
		Keyword:    params.Get("keyword"),
		CategoryID: convert.ToInt(params.Get("category")),
		Date:       params.Get("date"),
		Language:   params.Get("language"),
	}

	posts, total, err := handler.service.ListPosts(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	postID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.GetPost(request.Context(), postID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	var input Post
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePost(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
	postID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Post
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePost(request.Context(), postID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	postID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePost(request.Context(), postID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
