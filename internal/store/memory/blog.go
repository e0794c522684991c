package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

type blogRepo struct {
	s *Store
}

func (r *blogRepo) Create(ctx context.Context, post *domain.BlogPost) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := uuid.NewString()
	p := *post
	p.ID = id
	r.s.posts[id] = p
	return id, nil
}

func (r *blogRepo) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (r *blogRepo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.posts {
		if p.Slug == slug {
			out := p
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *blogRepo) Update(ctx context.Context, post *domain.BlogPost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[post.ID]; !ok {
		return store.ErrNotFound
	}
	r.s.posts[post.ID] = *post
	return nil
}

func (r *blogRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.posts, id)
	return nil
}

func (r *blogRepo) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.BlogPost, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		if publishedOnly && !p.Published {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
