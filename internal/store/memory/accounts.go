package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

type accountRepo struct {
	s *Store
}

func (r *accountRepo) Get(ctx context.Context, uid string) (*domain.AdminAccount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[uid]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &a, nil
}

func (r *accountRepo) Create(ctx context.Context, a *domain.AdminAccount) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.accounts[a.UID] = *a
	return nil
}

func (r *accountRepo) SetRole(ctx context.Context, uid, role, updatedBy string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[uid]
	if !ok {
		return store.ErrNotFound
	}
	a.Role = role
	a.UpdatedBy = updatedBy
	a.UpdatedAt = time.Now().UTC()
	r.s.accounts[uid] = a
	return nil
}

type imageRepo struct {
	s *Store
}

func (r *imageRepo) Record(ctx context.Context, img *domain.StoredImage) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := uuid.NewString()
	rec := *img
	rec.ID = id
	r.s.images[id] = rec
	return id, nil
}
