// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package reference

import (
	"context"
	"log/slog"

	"github.com/duongnk/eventide/internal/platform/constants"
	"github.com/duongnk/eventide/internal/platform/sanitize"
	"github.com/duongnk/eventide/internal/platform/validate"
	"github.com/duongnk/eventide/pkg/slug"
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

// # Sponsors

func (service *Service) ListSponsors(context context.Context, language string) ([]*Sponsor, error) {
	return service.repo.ListSponsors(context, language)
}

func (service *Service) CreateSponsor(context context.Context, sponsor *Sponsor) error {
	if sponsor.Language == "" {
		sponsor.Language = constants.DefaultLanguage
	}
	if sponsor.Tier == "" {
		sponsor.Tier = SponsorTiers[len(SponsorTiers)-1]
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, sponsor.Name).MaxLen(FieldName, sponsor.Name, 200)
	validator.OneOf(FieldTier, sponsor.Tier, SponsorTiers...)
	validator.OneOf(FieldLanguage, sponsor.Language, constants.DefaultLanguage, constants.SecondaryLanguage)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateSponsor(context, sponsor); err != nil {
		return err
	}

	service.logger.Info("sponsor_created", slog.String("name", sponsor.Name), slog.String("tier", sponsor.Tier))
	return nil
}

func (service *Service) DeleteSponsor(context context.Context, id int) error {
	if err := service.repo.DeleteSponsor(context, id); err != nil {
		return err
	}
	service.logger.Warn("sponsor_deleted", slog.Int("sponsor_id", id))
	return nil
}

// # Guides

func (service *Service) ListGuides(context context.Context, language string) ([]*Guide, error) {
	return service.repo.ListGuides(context, language)
}

func (service *Service) GetGuide(context context.Context, guideSlug string) (*Guide, error) {
	return service.repo.GetGuideBySlug(context, guideSlug)
}

func (service *Service) CreateGuide(context context.Context, guide *Guide) error {
	if guide.Language == "" {
		guide.Language = constants.DefaultLanguage
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, guide.Title).MaxLen(FieldTitle, guide.Title, 200)
	validator.Required(FieldBody, guide.Body)
	validator.OneOf(FieldLanguage, guide.Language, constants.DefaultLanguage, constants.SecondaryLanguage)

	if err := validator.Err(); err != nil {
		return err
	}

	guide.Slug = slug.From(guide.Title)
	guide.Body = sanitize.HTML(guide.Body)

	if err := service.repo.CreateGuide(context, guide); err != nil {
		return err
	}

	service.logger.Info("guide_created", slog.Int("guide_id", guide.ID), slog.String("slug", guide.Slug))
	return nil
}

func (service *Service) DeleteGuide(context context.Context, id int) error {
	if err := service.repo.DeleteGuide(context, id); err != nil {
		return err
	}
	service.logger.Warn("guide_deleted", slog.Int("guide_id", id))
	return nil
}

// # FAQs

func (service *Service) ListFAQs(context context.Context, language string) ([]*FAQ, error) {
	return service.repo.ListFAQs(context, language)
}

func (service *Service) CreateFAQ(context context.Context, faq *FAQ) error {
	if faq.Language == "" {
		faq.Language = constants.DefaultLanguage
	}

	validator := &validate.Validator{}
	validator.Required(FieldQuestion, faq.Question)
	validator.Required(FieldAnswer, faq.Answer)
	validator.OneOf(FieldLanguage, faq.Language, constants.DefaultLanguage, constants.SecondaryLanguage)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateFAQ(context, faq); err != nil {
		return err
	}

	service.logger.Info("faq_created", slog.Int("faq_id", faq.ID))
	return nil
}

func (service *Service) DeleteFAQ(context context.Context, id int) error {
	if err := service.repo.DeleteFAQ(context, id); err != nil {
		return err
	}
	service.logger.Warn("faq_deleted", slog.Int("faq_id", id))
	return nil
}
