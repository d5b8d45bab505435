// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package reference

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duongnk/eventide/internal/platform/database/schema"
	"github.com/duongnk/eventide/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Sponsors

func (repository *PostgresRepository) ListSponsors(context context.Context, language string) ([]*Sponsor, error) {
	// array_position orders tiers platinum-first, then newest within a tier
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.ContentSponsor.ID, schema.ContentSponsor.Name, schema.ContentSponsor.Website,
		schema.ContentSponsor.Tier, schema.ContentSponsor.Language, schema.ContentSponsor.CreatedAt,
		schema.ContentSponsor.Table,
	)

	args := []any{}
	if language != "" {
		args = append(args, language)
		query += fmt.Sprintf(" WHERE %s = $1", schema.ContentSponsor.Language)
	}
	query += fmt.Sprintf(
		" ORDER BY array_position(ARRAY['platinum','gold','silver','community'], %s), %s DESC",
		schema.ContentSponsor.Tier, schema.ContentSponsor.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sponsors")
	}
	defer rows.Close()

	var sponsors []*Sponsor
	for rows.Next() {
		s := &Sponsor{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Website, &s.Tier, &s.Language, &s.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_sponsor")
		}
		sponsors = append(sponsors, s)
	}

	return sponsors, nil
}

func (repository *PostgresRepository) CreateSponsor(context context.Context, s *Sponsor) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s, %s
	`,
		schema.ContentSponsor.Table,
		schema.ContentSponsor.Name, schema.ContentSponsor.Website,
		schema.ContentSponsor.Tier, schema.ContentSponsor.Language,
		schema.ContentSponsor.CreatedAt,
		schema.ContentSponsor.ID, schema.ContentSponsor.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, s.Name, s.Website, s.Tier, s.Language).Scan(&s.ID, &s.CreatedAt)
	return dberr.Wrap(err, "create_sponsor")
}

func (repository *PostgresRepository) DeleteSponsor(context context.Context, id int) error {
	return repository.deleteByID(context, schema.ContentSponsor.Table, schema.ContentSponsor.ID, id, "delete_sponsor")
}

// # Guides

func (repository *PostgresRepository) ListGuides(context context.Context, language string) ([]*Guide, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.ContentGuide.ID, schema.ContentGuide.Title, schema.ContentGuide.Slug,
		schema.ContentGuide.Body, schema.ContentGuide.Language, schema.ContentGuide.CreatedAt,
		schema.ContentGuide.Table,
	)

	args := []any{}
	if language != "" {
		args = append(args, language)
		query += fmt.Sprintf(" WHERE %s = $1", schema.ContentGuide.Language)
	}
	query += fmt.Sprintf(" ORDER BY %s DESC", schema.ContentGuide.CreatedAt)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_guides")
	}
	defer rows.Close()

	var guides []*Guide
	for rows.Next() {
		g := &Guide{}
		if err := rows.Scan(&g.ID, &g.Title, &g.Slug, &g.Body, &g.Language, &g.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_guide")
		}
		guides = append(guides, g)
	}

	return guides, nil
}

func (repository *PostgresRepository) GetGuideBySlug(context context.Context, slug string) (*Guide, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.ContentGuide.ID, schema.ContentGuide.Title, schema.ContentGuide.Slug,
		schema.ContentGuide.Body, schema.ContentGuide.Language, schema.ContentGuide.CreatedAt,
		schema.ContentGuide.Table, schema.ContentGuide.Slug,
	)

	g := &Guide{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&g.ID, &g.Title, &g.Slug, &g.Body, &g.Language, &g.CreatedAt,
	)
	return g, dberr.Wrap(err, "get_guide")
}

func (repository *PostgresRepository) CreateGuide(context context.Context, g *Guide) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s, %s
	`,
		schema.ContentGuide.Table,
		schema.ContentGuide.Title, schema.ContentGuide.Slug,
		schema.ContentGuide.Body, schema.ContentGuide.Language,
		schema.ContentGuide.CreatedAt,
		schema.ContentGuide.ID, schema.ContentGuide.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, g.Title, g.Slug, g.Body, g.Language).Scan(&g.ID, &g.CreatedAt)
	return dberr.Wrap(err, "create_guide")
}

func (repository *PostgresRepository) DeleteGuide(context context.Context, id int) error {
	return repository.deleteByID(context, schema.ContentGuide.Table, schema.ContentGuide.ID, id, "delete_guide")
}

// # FAQs

func (repository *PostgresRepository) ListFAQs(context context.Context, language string) ([]*FAQ, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.ContentFAQ.ID, schema.ContentFAQ.Question, schema.ContentFAQ.Answer,
		schema.ContentFAQ.Language, schema.ContentFAQ.SortOrder, schema.ContentFAQ.CreatedAt,
		schema.ContentFAQ.Table,
	)

	args := []any{}
	if language != "" {
		args = append(args, language)
		query += fmt.Sprintf(" WHERE %s = $1", schema.ContentFAQ.Language)
	}
	query += fmt.Sprintf(" ORDER BY %s ASC, %s ASC", schema.ContentFAQ.SortOrder, schema.ContentFAQ.ID)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_faqs")
	}
	defer rows.Close()

	var faqs []*FAQ
	for rows.Next() {
		f := &FAQ{}
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Language, &f.SortOrder, &f.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_faq")
		}
		faqs = append(faqs, f)
	}

	return faqs, nil
}

func (repository *PostgresRepository) CreateFAQ(context context.Context, f *FAQ) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s, %s
	`,
		schema.ContentFAQ.Table,
		schema.ContentFAQ.Question, schema.ContentFAQ.Answer,
		schema.ContentFAQ.Language, schema.ContentFAQ.SortOrder,
		schema.ContentFAQ.CreatedAt,
		schema.ContentFAQ.ID, schema.ContentFAQ.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, f.Question, f.Answer, f.Language, f.SortOrder).Scan(&f.ID, &f.CreatedAt)
	return dberr.Wrap(err, "create_faq")
}

func (repository *PostgresRepository) DeleteFAQ(context context.Context, id int) error {
	return repository.deleteByID(context, schema.ContentFAQ.Table, schema.ContentFAQ.ID, id, "delete_faq")
}

func (repository *PostgresRepository) deleteByID(context context.Context, table, idColumn string, id int, action string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, idColumn)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, action)
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
