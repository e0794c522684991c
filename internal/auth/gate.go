package auth

import (
	"context"
	"errors"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

// Gate checks caller roles against the account records. Roles are
// re-read on every call so a revocation takes effect on the next
// request.
type Gate struct {
	accounts store.Accounts
}

func NewGate(accounts store.Accounts) *Gate {
	return &Gate{accounts: accounts}
}

// RequireAdmin fails with Unauthenticated when no identity is attached,
// PermissionDenied when the account's role is not admin or super_admin,
// and Internal when the account record cannot be read at all.
func (g *Gate) RequireAdmin(ctx context.Context, id *Identity) error {
	return g.require(ctx, id, domain.RoleAdmin, domain.RoleSuperAdmin)
}

// RequireSuperAdmin allows only super_admin accounts through.
func (g *Gate) RequireSuperAdmin(ctx context.Context, id *Identity) error {
	return g.require(ctx, id, domain.RoleSuperAdmin)
}

func (g *Gate) require(ctx context.Context, id *Identity, roles ...string) error {
	if id == nil {
		return apperr.E(apperr.Unauthenticated, "User must be authenticated")
	}

	account, err := g.accounts.Get(ctx, id.UID)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.E(apperr.PermissionDenied, "User must be an admin")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Error verifying user permissions", err)
	}

	for _, role := range roles {
		if account.Role == role {
			return nil
		}
	}
	return apperr.E(apperr.PermissionDenied, "User must be an admin")
}
