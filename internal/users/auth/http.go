// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package auth

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/duongnk/eventide/internal/platform/apperr"
	requestutil "github.com/duongnk/eventide/internal/platform/request"
	"github.com/duongnk/eventide/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the login endpoint. It sits on the public
// router; everything else in this package requires an authenticated admin.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Post("/login", handler.login)
}

// RegisterAdminRoutes mounts the authenticated account endpoints.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/me", handler.getProfile)
	router.Post("/change-password", handler.changePassword)
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	output, err := handler.service.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, output)
}

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	accountID, err := callerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.Profile(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	accountID, err := callerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input ChangePasswordInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ChangePassword(request.Context(), accountID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// callerID extracts the numeric account id from the verified token claims.
func callerID(request *http.Request) (int, error) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		return 0, err
	}

	accountID, err := strconv.Atoi(claims.UserID)
	if err != nil {
		return 0, apperr.Unauthorized("Malformed token subject")
	}

	return accountID, nil
}
