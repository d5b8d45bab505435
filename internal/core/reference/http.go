// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package reference

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

// RegisterPublicRoutes mounts the visitor-facing supporting content, scoped
// to the session's display language.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/sponsors", handler.listSponsors)
	router.Get("/guides", handler.listGuides)
	router.Get("/guides/{slug}", handler.getGuide)
	router.Get("/faqs", handler.listFAQs)
}

// RegisterAdminRoutes mounts the role-guarded supporting content surface.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Post("/sponsors", handler.createSponsor)
	router.Delete("/sponsors/{id}", handler.deleteSponsor)

	router.Post("/guides", handler.createGuide)
	router.Delete("/guides/{id}", handler.deleteGuide)

	router.Post("/faqs", handler.createFAQ)
	router.Delete("/faqs/{id}", handler.deleteFAQ)
}

// # Sponsors

func (handler *Handler) listSponsors(writer http.ResponseWriter, request *http.Request) {
	language := ctxutil.GetLanguage(request.Context())

	sponsors, err := handler.service.ListSponsors(request.Context(), language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sponsors)
}

func (handler *Handler) createSponsor(writer http.ResponseWriter, request *http.Request) {
	var input Sponsor
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateSponsor(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) deleteSponsor(writer http.ResponseWriter, request *http.Request) {
	sponsorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSponsor(request.Context(), sponsorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Guides

func (handler *Handler) listGuides(writer http.ResponseWriter, request *http.Request) {
	language := ctxutil.GetLanguage(request.Context())

	guides, err := handler.service.ListGuides(request.Context(), language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, guides)
}

func (handler *Handler) getGuide(writer http.ResponseWriter, request *http.Request) {
	guideSlug := requestutil.Param(request, "slug")

	guide, err := handler.service.GetGuide(request.Context(), guideSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, guide)
}

func (handler *Handler) createGuide(writer http.ResponseWriter, request *http.Request) {
	var input Guide
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateGuide(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) deleteGuide(writer http.ResponseWriter, request *http.Request) {
	guideID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteGuide(request.Context(), guideID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # FAQs

func (handler *Handler) listFAQs(writer http.ResponseWriter, request *http.Request) {
	language := ctxutil.GetLanguage(request.Context())

	faqs, err := handler.service.ListFAQs(request.Context(), language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, faqs)
}

func (handler *Handler) createFAQ(writer http.ResponseWriter, request *http.Request) {
	var input FAQ
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateFAQ(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) deleteFAQ(writer http.ResponseWriter, request *http.Request) {
	faqID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteFAQ(request.Context(), faqID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
