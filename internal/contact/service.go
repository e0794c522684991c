// Package contact implements the public contact form and the admin
// inbox operations on top of it.
package contact

import (
	"context"
	"errors"
	"time"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

type Service struct {
	contacts store.Contacts
	gate     *auth.Gate
}

func NewService(contacts store.Contacts, gate *auth.Gate) *Service {
	return &Service{contacts: contacts, gate: gate}
}

// Submit stores a contact form submission. No authentication is
// required; the HTTP layer rate limits by client IP instead.
func (s *Service) Submit(ctx context.Context, in validate.ContactInput) (*domain.ContactSubmission, error) {
	if err := validate.Check(&in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := &domain.ContactSubmission{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Read:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.contacts.Create(ctx, sub)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error submitting contact form", err)
	}
	sub.ID = id
	return sub, nil
}

func (s *Service) MarkAsRead(ctx context.Context, ident *auth.Identity, id string) error {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return err
	}
	if id == "" {
		return apperr.E(apperr.InvalidArgument, "Contact submission ID is required")
	}

	err := s.contacts.MarkRead(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.E(apperr.NotFound, "Contact submission not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Error updating contact submission", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, ident *auth.Identity, id string) error {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return err
	}
	if id == "" {
		return apperr.E(apperr.InvalidArgument, "Contact submission ID is required")
	}

	err := s.contacts.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.E(apperr.NotFound, "Contact submission not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Error deleting contact submission", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, ident *auth.Identity) ([]domain.ContactSubmission, error) {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return nil, err
	}

	subs, err := s.contacts.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error listing contact submissions", err)
	}
	return subs, nil
}
