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

type contactRepo struct {
	db *pgxpool.Pool
}

func (r *contactRepo) Create(ctx context.Context, c *domain.ContactSubmission) (string, error) {
	const q = `
insert into contact_submissions (name, email, subject, message, read, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7)
returning id;
`
	var id string
	err := r.db.QueryRow(ctx, q,
		c.Name, c.Email, c.Subject, c.Message, c.Read, c.CreatedAt, c.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert contact submission: %w", err)
	}
	return id, nil
}

func (r *contactRepo) Get(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	if !validID(id) {
		return nil, store.ErrNotFound
	}
	const q = `
select id, name, email, subject, message, read, created_at, updated_at
from contact_submissions
where id = $1::uuid;
`
	var c domain.ContactSubmission
	err := r.db.QueryRow(ctx, q, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Read,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load contact submission: %w", err)
	}
	return &c, nil
}

func (r *contactRepo) MarkRead(ctx context.Context, id string) error {
	if !validID(id) {
		return store.ErrNotFound
	}
	const q = `
update contact_submissions
set read = true, updated_at = now()
where id = $1::uuid;
`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("mark contact submission read: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *contactRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return store.ErrNotFound
	}
	ct, err := r.db.Exec(ctx, `delete from contact_submissions where id = $1::uuid;`, id)
	if err != nil {
		return fmt.Errorf("delete contact submission: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *contactRepo) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	const q = `
select id, name, email, subject, message, read, created_at, updated_at
from contact_submissions
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ContactSubmission, 0, 16)
	for rows.Next() {
		var c domain.ContactSubmission
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Read,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
