package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables the driver expects. Idempotent; runs
// at startup. The unique slug indexes double as the backstop for the
// check-then-write uniqueness sequence.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	stmts := []string{
		`create table if not exists blog_posts (
			id uuid primary key default gen_random_uuid(),
			title text not null,
			summary text not null,
			content text not null,
			cover_image text not null default '',
			published_date timestamptz,
			featured boolean not null default false,
			published boolean not null default false,
			tags text[] not null default '{}',
			slug text not null,
			created_at timestamptz not null default now(),
			updated_at timestamptz not null default now()
		)`,
		`create unique index if not exists uq_blog_posts_slug on blog_posts(slug)`,
		`create table if not exists case_studies (
			id uuid primary key default gen_random_uuid(),
			title text not null,
			summary text not null,
			cover_image text not null default '',
			thumbnail_image text not null default '',
			published_date timestamptz,
			featured boolean not null default false,
			published boolean not null default false,
			tags text[] not null default '{}',
			slug text not null,
			created_at timestamptz not null default now(),
			updated_at timestamptz not null default now()
		)`,
		`create unique index if not exists uq_case_studies_slug on case_studies(slug)`,
		`create table if not exists case_study_sections (
			id uuid primary key default gen_random_uuid(),
			case_study_id uuid not null,
			title text not null,
			content text not null default '',
			sort_order int not null default 0
		)`,
		`create index if not exists ix_sections_case_study on case_study_sections(case_study_id)`,
		`create table if not exists case_study_metrics (
			id uuid primary key default gen_random_uuid(),
			case_study_id uuid not null,
			label text not null,
			value text not null default '',
			sort_order int not null default 0
		)`,
		`create index if not exists ix_metrics_case_study on case_study_metrics(case_study_id)`,
		`create table if not exists profiles (
			id text primary key,
			display_name text not null,
			headline text not null default '',
			bio text not null default '',
			email text not null,
			phone text not null default '',
			location text not null default '',
			website text not null default '',
			linkedin text not null default '',
			github text not null default '',
			twitter text not null default '',
			created_at timestamptz not null default now(),
			updated_at timestamptz not null default now()
		)`,
		`create table if not exists work_experiences (
			id uuid primary key default gen_random_uuid(),
			profile_id text not null,
			company text not null,
			position text not null,
			description text not null default '',
			start_date text not null,
			end_date text not null default '',
			current boolean not null default false,
			sort_order int not null default 0,
			created_at timestamptz not null default now()
		)`,
		`create table if not exists education (
			id uuid primary key default gen_random_uuid(),
			profile_id text not null,
			institution text not null,
			degree text not null,
			field text not null,
			start_date text not null,
			end_date text not null default '',
			sort_order int not null default 0,
			created_at timestamptz not null default now()
		)`,
		`create table if not exists skills (
			id uuid primary key default gen_random_uuid(),
			profile_id text not null,
			name text not null,
			category text not null,
			proficiency int not null default 3,
			sort_order int not null default 0,
			created_at timestamptz not null default now()
		)`,
		`create table if not exists contact_submissions (
			id uuid primary key default gen_random_uuid(),
			name text not null,
			email text not null,
			subject text not null default '',
			message text not null,
			read boolean not null default false,
			created_at timestamptz not null default now(),
			updated_at timestamptz not null default now()
		)`,
		`create table if not exists users (
			uid text primary key,
			email text not null,
			role text not null,
			created_at timestamptz not null default now(),
			created_by text not null default '',
			updated_at timestamptz,
			updated_by text not null default ''
		)`,
		`create table if not exists images (
			id uuid primary key default gen_random_uuid(),
			original_path text not null,
			optimized_path text not null default '',
			thumbnail_path text not null default '',
			content_type text not null default '',
			folder text not null default '',
			uploaded_by text not null default '',
			created_at timestamptz not null default now()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
