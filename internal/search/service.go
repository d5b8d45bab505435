// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search

import (
	"context"
	"log/slog"

	"github.com/duongnk/eventide/internal/platform/constants"
)

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

/*
Search runs the full pipeline for one display language.

Description: serialize -> filter/sort -> paginate. The language arrives as
an explicit argument; the service holds no session state.

Parameters:
  - language: the visitor's display language.
  - params: the filter/sort parameter bag.
  - pageNumber, size: 1-based paging, already defaulted by the caller.

Returns:
  - Page: the sliced results with paging echo.
  - error: storage failures only; empty results are not an error.
*/
func (service *Service) Search(context context.Context, language string, params Params, pageNumber, size int) (Page, error) {
	rows, err := service.serialize(context, language)
	if err != nil {
		return Page{}, err
	}

	filtered := Filter(rows, params)
	return Paginate(filtered, pageNumber, size), nil
}

// Autocomplete returns title suggestions for a keyword in the given display
// language.
func (service *Service) Autocomplete(context context.Context, language string, keyword string) ([]string, error) {
	rows, err := service.serialize(context, language)
	if err != nil {
		return nil, err
	}

	return Suggest(rows, keyword, constants.AutocompleteLimit), nil
}
