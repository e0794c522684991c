package admins

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
	"github.com/tharindu-dev/portfolio-backend/internal/store/memory"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

var (
	superIdent = &auth.Identity{UID: "super-uid", Email: "super@example.com"}
	adminIdent = &auth.Identity{UID: "admin-uid", Email: "admin@example.com"}
)

func newTestService(t *testing.T) (*Service, store.Accounts) {
	t.Helper()

	stores := memory.New().Stores()
	ctx := context.Background()
	require.NoError(t, stores.Accounts.Create(ctx, &domain.AdminAccount{
		UID: superIdent.UID, Email: superIdent.Email, Role: domain.RoleSuperAdmin,
	}))
	require.NoError(t, stores.Accounts.Create(ctx, &domain.AdminAccount{
		UID: adminIdent.UID, Email: adminIdent.Email, Role: domain.RoleAdmin,
	}))

	svc := NewService(stores.Accounts, auth.StaticUserAdmin{}, auth.NewGate(stores.Accounts))
	return svc, stores.Accounts
}

func TestCreateAdmin(t *testing.T) {
	svc, accounts := newTestService(t)
	ctx := context.Background()

	account, err := svc.CreateAdmin(ctx, superIdent, validate.CreateAdminInput{
		Email: "new@example.com", Password: "supersecret", DisplayName: "New Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, account.Role)
	assert.Equal(t, superIdent.UID, account.CreatedBy)

	stored, err := accounts.Get(ctx, account.UID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", stored.Email)
}

func TestCreateAdminRequiresSuperAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	in := validate.CreateAdminInput{Email: "new@example.com", Password: "supersecret"}

	_, err := svc.CreateAdmin(ctx, adminIdent, in)
	assert.Equal(t, apperr.PermissionDenied, apperr.KindOf(err))

	_, err = svc.CreateAdmin(ctx, nil, in)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
}

func TestCreateAdminValidatesPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateAdmin(context.Background(), superIdent, validate.CreateAdminInput{
		Email: "new@example.com", Password: "short",
	})
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestUpdateRole(t *testing.T) {
	svc, accounts := newTestService(t)
	ctx := context.Background()

	err := svc.UpdateRole(ctx, superIdent, validate.UpdateRoleInput{
		UID: adminIdent.UID, Role: domain.RoleSuperAdmin,
	})
	require.NoError(t, err)

	stored, err := accounts.Get(ctx, adminIdent.UID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, stored.Role)
	assert.Equal(t, superIdent.UID, stored.UpdatedBy)
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.UpdateRole(context.Background(), superIdent, validate.UpdateRoleInput{
		UID: adminIdent.UID, Role: "owner",
	})
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestUpdateRoleMissingAccount(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.UpdateRole(context.Background(), superIdent, validate.UpdateRoleInput{
		UID: "ghost", Role: domain.RoleAdmin,
	})
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
