package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store/memory"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

var admin = &auth.Identity{UID: "admin-uid", Email: "admin@example.com"}

func newTestService(t *testing.T) *Service {
	t.Helper()

	stores := memory.New().Stores()
	err := stores.Accounts.Create(context.Background(), &domain.AdminAccount{
		UID:  admin.UID,
		Role: domain.RoleAdmin,
	})
	require.NoError(t, err)

	return NewService(stores.Contacts, auth.NewGate(stores.Accounts))
}

func TestSubmitIsUnauthenticated(t *testing.T) {
	svc := newTestService(t)

	sub, err := svc.Submit(context.Background(), validate.ContactInput{
		Name: "Visitor", Email: "visitor@example.com", Message: "Hi there",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.False(t, sub.Read)
}

func TestSubmitValidates(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Submit(context.Background(), validate.ContactInput{Name: "Visitor"})
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestInboxOperationsRequireAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sub, err := svc.Submit(ctx, validate.ContactInput{
		Name: "Visitor", Email: "visitor@example.com", Message: "Hi",
	})
	require.NoError(t, err)

	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(svc.MarkAsRead(ctx, nil, sub.ID)))

	_, err = svc.List(ctx, nil)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))

	require.NoError(t, svc.MarkAsRead(ctx, admin, sub.ID))

	list, err := svc.List(ctx, admin)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Read)

	require.NoError(t, svc.Delete(ctx, admin, sub.ID))
	assert.Equal(t, apperr.NotFound, apperr.KindOf(svc.Delete(ctx, admin, sub.ID)))
}
