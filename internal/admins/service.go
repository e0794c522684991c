// Package admins implements admin account management. Every operation
// here requires a super_admin caller.
package admins

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
	accounts  store.Accounts
	userAdmin auth.UserAdmin
	gate      *auth.Gate
}

func NewService(accounts store.Accounts, userAdmin auth.UserAdmin, gate *auth.Gate) *Service {
	return &Service{accounts: accounts, userAdmin: userAdmin, gate: gate}
}

// CreateAdmin provisions the user in the identity provider first and
// then records the account with the default admin role.
func (s *Service) CreateAdmin(ctx context.Context, ident *auth.Identity, in validate.CreateAdminInput) (*domain.AdminAccount, error) {
	if err := s.gate.RequireSuperAdmin(ctx, ident); err != nil {
		return nil, err
	}
	if err := validate.Check(&in); err != nil {
		return nil, err
	}

	uid, err := s.userAdmin.CreateUser(ctx, in.Email, in.Password, in.DisplayName)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error creating admin user", err)
	}

	account := &domain.AdminAccount{
		UID:       uid,
		Email:     in.Email,
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now().UTC(),
		CreatedBy: ident.UID,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error creating admin user", err)
	}
	return account, nil
}

// UpdateRole changes an existing account's role.
func (s *Service) UpdateRole(ctx context.Context, ident *auth.Identity, in validate.UpdateRoleInput) error {
	if err := s.gate.RequireSuperAdmin(ctx, ident); err != nil {
		return err
	}
	if err := validate.Check(&in); err != nil {
		return err
	}

	err := s.accounts.SetRole(ctx, in.UID, in.Role, ident.UID)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.E(apperr.NotFound, "Admin user not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Error updating admin role", err)
	}
	return nil
}
