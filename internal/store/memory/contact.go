package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

type contactRepo struct {
	s *Store
}

func (r *contactRepo) Create(ctx context.Context, c *domain.ContactSubmission) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := uuid.NewString()
	sub := *c
	sub.ID = id
	r.s.contacts[id] = sub
	return id, nil
}

func (r *contactRepo) Get(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.contacts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (r *contactRepo) MarkRead(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.contacts[id]
	if !ok {
		return store.ErrNotFound
	}
	c.Read = true
	c.UpdatedAt = time.Now().UTC()
	r.s.contacts[id] = c
	return nil
}

func (r *contactRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contacts[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.contacts, id)
	return nil
}

func (r *contactRepo) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.ContactSubmission, 0, len(r.s.contacts))
	for _, c := range r.s.contacts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
