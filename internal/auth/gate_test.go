package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store/memory"
)

func newTestGate(t *testing.T) *Gate {
	t.Helper()

	stores := memory.New().Stores()
	ctx := context.Background()
	require.NoError(t, stores.Accounts.Create(ctx, &domain.AdminAccount{
		UID: "admin-uid", Role: domain.RoleAdmin,
	}))
	require.NoError(t, stores.Accounts.Create(ctx, &domain.AdminAccount{
		UID: "super-uid", Role: domain.RoleSuperAdmin,
	}))
	return NewGate(stores.Accounts)
}

func TestRequireAdmin(t *testing.T) {
	gate := newTestGate(t)
	ctx := context.Background()

	assert.NoError(t, gate.RequireAdmin(ctx, &Identity{UID: "admin-uid"}))
	assert.NoError(t, gate.RequireAdmin(ctx, &Identity{UID: "super-uid"}))

	err := gate.RequireAdmin(ctx, nil)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))

	err = gate.RequireAdmin(ctx, &Identity{UID: "unknown-uid"})
	assert.Equal(t, apperr.PermissionDenied, apperr.KindOf(err))
}

func TestRequireSuperAdmin(t *testing.T) {
	gate := newTestGate(t)
	ctx := context.Background()

	assert.NoError(t, gate.RequireSuperAdmin(ctx, &Identity{UID: "super-uid"}))

	err := gate.RequireSuperAdmin(ctx, &Identity{UID: "admin-uid"})
	assert.Equal(t, apperr.PermissionDenied, apperr.KindOf(err))
}

func TestStaticVerifier(t *testing.T) {
	v := &StaticVerifier{Tokens: map[string]Identity{
		"tok-1": {UID: "admin-uid", Email: "admin@example.com"},
	}}

	id, err := v.VerifyIDToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "admin-uid", id.UID)

	_, err = v.VerifyIDToken(context.Background(), "bogus")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
