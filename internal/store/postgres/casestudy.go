package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

type caseStudyRepo struct {
	db *pgxpool.Pool
}

const caseStudyCols = `id, title, summary, cover_image, thumbnail_image, published_date,
featured, published, tags, slug, created_at, updated_at`

func scanCaseStudy(row pgx.Row) (*domain.CaseStudy, error) {
	var c domain.CaseStudy
	err := row.Scan(
		&c.ID, &c.Title, &c.Summary, &c.CoverImage, &c.ThumbnailImage, &c.PublishedDate,
		&c.Featured, &c.Published, &c.Tags, &c.Slug, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caseStudyRepo) Create(ctx context.Context, cs *domain.CaseStudy) (string, error) {
	const q = `
insert into case_studies (title, summary, cover_image, thumbnail_image, published_date,
	featured, published, tags, slug, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
returning id;
`
	var id string
	err := r.db.QueryRow(ctx, q,
		cs.Title, cs.Summary, cs.CoverImage, cs.ThumbnailImage, cs.PublishedDate,
		cs.Featured, cs.Published, cs.Tags, cs.Slug, cs.CreatedAt, cs.UpdatedAt,
	).Scan(&id)
	if isUniqueViolation(err) {
		return "", store.ErrSlugTaken
	}
	if err != nil {
		return "", fmt.Errorf("insert case study: %w", err)
	}
	return id, nil
}

func (r *caseStudyRepo) Get(ctx context.Context, id string) (*domain.CaseStudy, error) {
	if !validID(id) {
		return nil, store.ErrNotFound
	}
	q := `select ` + caseStudyCols + ` from case_studies where id = $1::uuid;`
	return scanCaseStudy(r.db.QueryRow(ctx, q, id))
}

func (r *caseStudyRepo) GetBySlug(ctx context.Context, slug string) (*domain.CaseStudy, error) {
	q := `select ` + caseStudyCols + ` from case_studies where slug = $1;`
	return scanCaseStudy(r.db.QueryRow(ctx, q, slug))
}

func (r *caseStudyRepo) Update(ctx context.Context, cs *domain.CaseStudy) error {
	const q = `
update case_studies
set title = $2, summary = $3, cover_image = $4, thumbnail_image = $5, published_date = $6,
	featured = $7, published = $8, tags = $9, slug = $10, updated_at = $11
where id = $1::uuid;
`
	ct, err := r.db.Exec(ctx, q,
		cs.ID, cs.Title, cs.Summary, cs.CoverImage, cs.ThumbnailImage, cs.PublishedDate,
		cs.Featured, cs.Published, cs.Tags, cs.Slug, cs.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return store.ErrSlugTaken
	}
	if err != nil {
		return fmt.Errorf("update case study: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteCascade removes sections, metrics and the parent row inside one
// transaction.
func (r *caseStudyRepo) DeleteCascade(ctx context.Context, id string) error {
	if !validID(id) {
		return store.ErrNotFound
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin cascade delete: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `delete from case_study_sections where case_study_id = $1::uuid;`, id); err != nil {
		return fmt.Errorf("delete sections: %w", err)
	}
	if _, err := tx.Exec(ctx, `delete from case_study_metrics where case_study_id = $1::uuid;`, id); err != nil {
		return fmt.Errorf("delete metrics: %w", err)
	}
	ct, err := tx.Exec(ctx, `delete from case_studies where id = $1::uuid;`, id)
	if err != nil {
		return fmt.Errorf("delete case study: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *caseStudyRepo) List(ctx context.Context, publishedOnly bool) ([]domain.CaseStudy, error) {
	q := `select ` + caseStudyCols + ` from case_studies`
	if publishedOnly {
		q += ` where published`
	}
	q += ` order by created_at desc;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list case studies: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CaseStudy, 0, 16)
	for rows.Next() {
		var c domain.CaseStudy
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Summary, &c.CoverImage, &c.ThumbnailImage, &c.PublishedDate,
			&c.Featured, &c.Published, &c.Tags, &c.Slug, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *caseStudyRepo) AddSection(ctx context.Context, s *domain.CaseStudySection) (string, error) {
	const q = `
insert into case_study_sections (case_study_id, title, content, sort_order)
values ($1::uuid, $2, $3, $4)
returning id;
`
	var id string
	if err := r.db.QueryRow(ctx, q, s.CaseStudyID, s.Title, s.Content, s.Order).Scan(&id); err != nil {
		return "", fmt.Errorf("insert section: %w", err)
	}
	return id, nil
}

func (r *caseStudyRepo) AddMetric(ctx context.Context, m *domain.CaseStudyMetric) (string, error) {
	const q = `
insert into case_study_metrics (case_study_id, label, value, sort_order)
values ($1::uuid, $2, $3, $4)
returning id;
`
	var id string
	if err := r.db.QueryRow(ctx, q, m.CaseStudyID, m.Label, m.Value, m.Order).Scan(&id); err != nil {
		return "", fmt.Errorf("insert metric: %w", err)
	}
	return id, nil
}

func (r *caseStudyRepo) Sections(ctx context.Context, caseStudyID string) ([]domain.CaseStudySection, error) {
	const q = `
select id, case_study_id, title, content, sort_order
from case_study_sections
where case_study_id = $1::uuid
order by sort_order;
`
	rows, err := r.db.Query(ctx, q, caseStudyID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CaseStudySection, 0, 8)
	for rows.Next() {
		var s domain.CaseStudySection
		if err := rows.Scan(&s.ID, &s.CaseStudyID, &s.Title, &s.Content, &s.Order); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *caseStudyRepo) Metrics(ctx context.Context, caseStudyID string) ([]domain.CaseStudyMetric, error) {
	const q = `
select id, case_study_id, label, value, sort_order
from case_study_metrics
where case_study_id = $1::uuid
order by sort_order;
`
	rows, err := r.db.Query(ctx, q, caseStudyID)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CaseStudyMetric, 0, 8)
	for rows.Next() {
		var m domain.CaseStudyMetric
		if err := rows.Scan(&m.ID, &m.CaseStudyID, &m.Label, &m.Value, &m.Order); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
