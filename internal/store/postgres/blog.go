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

type blogRepo struct {
	db *pgxpool.Pool
}

const blogCols = `id, title, summary, content, cover_image, published_date,
featured, published, tags, slug, created_at, updated_at`

func scanBlogPost(row pgx.Row) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := row.Scan(
		&p.ID, &p.Title, &p.Summary, &p.Content, &p.CoverImage, &p.PublishedDate,
		&p.Featured, &p.Published, &p.Tags, &p.Slug, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *blogRepo) Create(ctx context.Context, post *domain.BlogPost) (string, error) {
	const q = `
insert into blog_posts (title, summary, content, cover_image, published_date,
	featured, published, tags, slug, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
returning id;
`
	var id string
	err := r.db.QueryRow(ctx, q,
		post.Title, post.Summary, post.Content, post.CoverImage, post.PublishedDate,
		post.Featured, post.Published, post.Tags, post.Slug, post.CreatedAt, post.UpdatedAt,
	).Scan(&id)
	if isUniqueViolation(err) {
		return "", store.ErrSlugTaken
	}
	if err != nil {
		return "", fmt.Errorf("insert blog post: %w", err)
	}
	return id, nil
}

func (r *blogRepo) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	if !validID(id) {
		return nil, store.ErrNotFound
	}
	q := `select ` + blogCols + ` from blog_posts where id = $1::uuid;`
	return scanBlogPost(r.db.QueryRow(ctx, q, id))
}

func (r *blogRepo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	q := `select ` + blogCols + ` from blog_posts where slug = $1;`
	return scanBlogPost(r.db.QueryRow(ctx, q, slug))
}

func (r *blogRepo) Update(ctx context.Context, post *domain.BlogPost) error {
	const q = `
update blog_posts
set title = $2, summary = $3, content = $4, cover_image = $5, published_date = $6,
	featured = $7, published = $8, tags = $9, slug = $10, updated_at = $11
where id = $1::uuid;
`
	ct, err := r.db.Exec(ctx, q,
		post.ID, post.Title, post.Summary, post.Content, post.CoverImage, post.PublishedDate,
		post.Featured, post.Published, post.Tags, post.Slug, post.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return store.ErrSlugTaken
	}
	if err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *blogRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return store.ErrNotFound
	}
	ct, err := r.db.Exec(ctx, `delete from blog_posts where id = $1::uuid;`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *blogRepo) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	q := `select ` + blogCols + ` from blog_posts`
	if publishedOnly {
		q += ` where published`
	}
	q += ` order by created_at desc;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	out := make([]domain.BlogPost, 0, 16)
	for rows.Next() {
		var p domain.BlogPost
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Summary, &p.Content, &p.CoverImage, &p.PublishedDate,
			&p.Featured, &p.Published, &p.Tags, &p.Slug, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
