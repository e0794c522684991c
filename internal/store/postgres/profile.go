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

type profileRepo struct {
	db *pgxpool.Pool
}

func (r *profileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	const q = `
select id, display_name, headline, bio, email, phone, location, website,
	linkedin, github, twitter, created_at, updated_at
from profiles
where id = $1;
`
	var p domain.Profile
	err := r.db.QueryRow(ctx, q, domain.ProfileID).Scan(
		&p.ID, &p.DisplayName, &p.Headline, &p.Bio, &p.Email, &p.Phone,
		&p.Location, &p.Website,
		&p.SocialLinks.LinkedIn, &p.SocialLinks.GitHub, &p.SocialLinks.Twitter,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	const q = `
insert into profiles (id, display_name, headline, bio, email, phone, location,
	website, linkedin, github, twitter, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
on conflict (id) do update set
	display_name = excluded.display_name,
	headline = excluded.headline,
	bio = excluded.bio,
	email = excluded.email,
	phone = excluded.phone,
	location = excluded.location,
	website = excluded.website,
	linkedin = excluded.linkedin,
	github = excluded.github,
	twitter = excluded.twitter,
	updated_at = excluded.updated_at;
`
	_, err := r.db.Exec(ctx, q,
		domain.ProfileID, p.DisplayName, p.Headline, p.Bio, p.Email, p.Phone,
		p.Location, p.Website,
		p.SocialLinks.LinkedIn, p.SocialLinks.GitHub, p.SocialLinks.Twitter,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (r *profileRepo) AddExperience(ctx context.Context, w *domain.WorkExperience) (string, error) {
	const q = `
insert into work_experiences (profile_id, company, position, description,
	start_date, end_date, current, sort_order, created_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
returning id;
`
	var id string
	err := r.db.QueryRow(ctx, q,
		w.ProfileID, w.Company, w.Position, w.Description,
		w.StartDate, w.EndDate, w.Current, w.Order, w.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert work experience: %w", err)
	}
	return id, nil
}

func (r *profileRepo) AddEducation(ctx context.Context, e *domain.Education) (string, error) {
	const q = `
insert into education (profile_id, institution, degree, field,
	start_date, end_date, sort_order, created_at)
values ($1, $2, $3, $4, $5, $6, $7, $8)
returning id;
`
	var id string
	err := r.db.QueryRow(ctx, q,
		e.ProfileID, e.Institution, e.Degree, e.Field,
		e.StartDate, e.EndDate, e.Order, e.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert education: %w", err)
	}
	return id, nil
}

func (r *profileRepo) AddSkill(ctx context.Context, s *domain.Skill) (string, error) {
	const q = `
insert into skills (profile_id, name, category, proficiency, sort_order, created_at)
values ($1, $2, $3, $4, $5, $6)
returning id;
`
	var id string
	err := r.db.QueryRow(ctx, q,
		s.ProfileID, s.Name, s.Category, s.Proficiency, s.Order, s.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert skill: %w", err)
	}
	return id, nil
}

func (r *profileRepo) MaxExperienceOrder(ctx context.Context) (int, error) {
	return r.maxOrder(ctx, "work_experiences")
}

func (r *profileRepo) MaxEducationOrder(ctx context.Context) (int, error) {
	return r.maxOrder(ctx, "education")
}

func (r *profileRepo) MaxSkillOrder(ctx context.Context) (int, error) {
	return r.maxOrder(ctx, "skills")
}

func (r *profileRepo) maxOrder(ctx context.Context, table string) (int, error) {
	var max int
	q := fmt.Sprintf(`select coalesce(max(sort_order), -1) from %s;`, table)
	if err := r.db.QueryRow(ctx, q).Scan(&max); err != nil {
		return 0, fmt.Errorf("max order for %s: %w", table, err)
	}
	return max, nil
}

func (r *profileRepo) Experiences(ctx context.Context) ([]domain.WorkExperience, error) {
	const q = `
select id, profile_id, company, position, description, start_date, end_date,
	current, sort_order, created_at
from work_experiences
order by sort_order;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list work experiences: %w", err)
	}
	defer rows.Close()

	out := make([]domain.WorkExperience, 0, 8)
	for rows.Next() {
		var w domain.WorkExperience
		if err := rows.Scan(
			&w.ID, &w.ProfileID, &w.Company, &w.Position, &w.Description,
			&w.StartDate, &w.EndDate, &w.Current, &w.Order, &w.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *profileRepo) EducationList(ctx context.Context) ([]domain.Education, error) {
	const q = `
select id, profile_id, institution, degree, field, start_date, end_date,
	sort_order, created_at
from education
order by sort_order;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list education: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Education, 0, 8)
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(
			&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.Field,
			&e.StartDate, &e.EndDate, &e.Order, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *profileRepo) Skills(ctx context.Context) ([]domain.Skill, error) {
	const q = `
select id, profile_id, name, category, proficiency, sort_order, created_at
from skills
order by sort_order;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Skill, 0, 8)
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(
			&s.ID, &s.ProfileID, &s.Name, &s.Category, &s.Proficiency,
			&s.Order, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
