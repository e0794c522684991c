// Package blog implements the blog post operations.
package blog

import (
	"context"
	"errors"
	"time"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/cache"
	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/slug"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

const cachePrefix = "blog:"

type Service struct {
	posts store.BlogPosts
	gate  *auth.Gate
	cache *cache.Cache
}

func NewService(posts store.BlogPosts, gate *auth.Gate, c *cache.Cache) *Service {
	return &Service{posts: posts, gate: gate, cache: c}
}

// Create validates the payload, derives the slug from the title and
// inserts the post after checking no other post holds that slug.
func (s *Service) Create(ctx context.Context, ident *auth.Identity, in validate.BlogPostInput) (*domain.BlogPost, error) {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return nil, err
	}
	in.ApplyDefaults()
	if err := validate.Check(&in); err != nil {
		return nil, err
	}

	sl := slug.Make(in.Title)
	if sl == "" {
		return nil, apperr.Invalid("Invalid blog post data", apperr.FieldError{
			Field: "title", Message: "title must contain at least one word character",
		})
	}
	if err := s.checkSlugFree(ctx, sl, ""); err != nil {
		return nil, err
	}

	publishedDate, err := validate.ParseDate(in.PublishedDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.BlogPost{
		Title:         in.Title,
		Summary:       in.Summary,
		Content:       in.Content,
		CoverImage:    in.CoverImage,
		PublishedDate: publishedDate,
		Featured:      in.Featured,
		Published:     in.Published,
		Tags:          in.Tags,
		Slug:          sl,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.posts.Create(ctx, post)
	if errors.Is(err, store.ErrSlugTaken) {
		return nil, apperr.E(apperr.AlreadyExists, "A blog post with this title already exists")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error creating blog post", err)
	}
	post.ID = id

	s.cache.Invalidate(ctx, cachePrefix)
	return post, nil
}

// Update loads the stored post, recomputes the slug only when the
// title changed and re-checks uniqueness excluding the post itself.
func (s *Service) Update(ctx context.Context, ident *auth.Identity, in validate.BlogPostInput) (*domain.BlogPost, error) {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return nil, err
	}
	if in.ID == "" {
		return nil, apperr.E(apperr.InvalidArgument, "Blog post ID is required")
	}
	in.ApplyDefaults()
	if err := validate.Check(&in); err != nil {
		return nil, err
	}

	existing, err := s.posts.Get(ctx, in.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.E(apperr.NotFound, "Blog post not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error updating blog post", err)
	}

	sl := existing.Slug
	if in.Title != existing.Title {
		sl = slug.Make(in.Title)
		if sl == "" {
			return nil, apperr.Invalid("Invalid blog post data", apperr.FieldError{
				Field: "title", Message: "title must contain at least one word character",
			})
		}
		if err := s.checkSlugFree(ctx, sl, in.ID); err != nil {
			return nil, err
		}
	}

	publishedDate, err := validate.ParseDate(in.PublishedDate)
	if err != nil {
		return nil, err
	}

	post := &domain.BlogPost{
		ID:            existing.ID,
		Title:         in.Title,
		Summary:       in.Summary,
		Content:       in.Content,
		CoverImage:    in.CoverImage,
		PublishedDate: publishedDate,
		Featured:      in.Featured,
		Published:     in.Published,
		Tags:          in.Tags,
		Slug:          sl,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}

	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, store.ErrSlugTaken) {
			return nil, apperr.E(apperr.AlreadyExists, "A blog post with this title already exists")
		}
		return nil, apperr.Wrap(apperr.Internal, "Error updating blog post", err)
	}

	s.cache.Invalidate(ctx, cachePrefix)
	return post, nil
}

func (s *Service) Delete(ctx context.Context, ident *auth.Identity, id string) error {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return err
	}
	if id == "" {
		return apperr.E(apperr.InvalidArgument, "Blog post ID is required")
	}

	if _, err := s.posts.Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.E(apperr.NotFound, "Blog post not found")
		}
		return apperr.Wrap(apperr.Internal, "Error deleting blog post", err)
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return apperr.Wrap(apperr.Internal, "Error deleting blog post", err)
	}

	s.cache.Invalidate(ctx, cachePrefix)
	return nil
}

// List returns published posts for anonymous callers; admins see
// everything when all is set.
func (s *Service) List(ctx context.Context, all bool) ([]domain.BlogPost, error) {
	key := cachePrefix + "list:published"
	if all {
		key = cachePrefix + "list:all"
	}

	var cached []domain.BlogPost
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	posts, err := s.posts.List(ctx, !all)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error listing blog posts", err)
	}
	s.cache.SetJSON(ctx, key, posts)
	return posts, nil
}

func (s *Service) GetBySlug(ctx context.Context, sl string) (*domain.BlogPost, error) {
	key := cachePrefix + "slug:" + sl

	var cached domain.BlogPost
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	post, err := s.posts.GetBySlug(ctx, sl)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.E(apperr.NotFound, "Blog post not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error loading blog post", err)
	}
	s.cache.SetJSON(ctx, key, post)
	return post, nil
}

// checkSlugFree queries for an existing post with the slug; a match on
// excludeID (updates) does not conflict. The check-then-write sequence
// is not atomic; the postgres driver's unique index catches the race.
func (s *Service) checkSlugFree(ctx context.Context, sl, excludeID string) error {
	existing, err := s.posts.GetBySlug(ctx, sl)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Error checking slug uniqueness", err)
	}
	if existing.ID == excludeID {
		return nil
	}
	return apperr.E(apperr.AlreadyExists, "A blog post with this title already exists")
}
