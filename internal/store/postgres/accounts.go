package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

type accountRepo struct {
	db *pgxpool.Pool
}

func (r *accountRepo) Get(ctx context.Context, uid string) (*domain.AdminAccount, error) {
	const q = `
select uid, email, role, created_at, created_by, updated_at, updated_by
from users
where uid = $1;
`
	var (
		a         domain.AdminAccount
		updatedAt *time.Time
	)
	err := r.db.QueryRow(ctx, q, uid).Scan(
		&a.UID, &a.Email, &a.Role, &a.CreatedAt, &a.CreatedBy, &updatedAt, &a.UpdatedBy,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load account %s: %w", uid, err)
	}
	if updatedAt != nil {
		a.UpdatedAt = *updatedAt
	}
	return &a, nil
}

func (r *accountRepo) Create(ctx context.Context, a *domain.AdminAccount) error {
	const q = `
insert into users (uid, email, role, created_at, created_by)
values ($1, $2, $3, $4, $5);
`
	if _, err := r.db.Exec(ctx, q, a.UID, a.Email, a.Role, a.CreatedAt, a.CreatedBy); err != nil {
		return fmt.Errorf("insert account %s: %w", a.UID, err)
	}
	return nil
}

func (r *accountRepo) SetRole(ctx context.Context, uid, role, updatedBy string) error {
	const q = `
update users
set role = $2, updated_at = now(), updated_by = $3
where uid = $1;
`
	ct, err := r.db.Exec(ctx, q, uid, role, updatedBy)
	if err != nil {
		return fmt.Errorf("update role for %s: %w", uid, err)
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

type imageRepo struct {
	db *pgxpool.Pool
}

func (r *imageRepo) Record(ctx context.Context, img *domain.StoredImage) (string, error) {
	const q = `
insert into images (original_path, optimized_path, thumbnail_path, content_type,
	folder, uploaded_by, created_at)
values ($1, $2, $3, $4, $5, $6, $7)
returning id;
`
	var id string
	err := r.db.QueryRow(ctx, q,
		img.OriginalPath, img.OptimizedPath, img.ThumbnailPath, img.ContentType,
		img.Folder, img.UploadedBy, img.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("record image metadata: %w", err)
	}
	return id, nil
}
