package blog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/cache"
	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store/memory"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

var (
	adminIdent  = &auth.Identity{UID: "admin-uid", Email: "admin@example.com"}
	nobodyIdent = &auth.Identity{UID: "random-uid", Email: "someone@example.com"}
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	stores := memory.New().Stores()
	err := stores.Accounts.Create(context.Background(), &domain.AdminAccount{
		UID:   adminIdent.UID,
		Email: adminIdent.Email,
		Role:  domain.RoleAdmin,
	})
	require.NoError(t, err)

	return NewService(stores.Blog, auth.NewGate(stores.Accounts), cache.New(nil))
}

func validInput() validate.BlogPostInput {
	return validate.BlogPostInput{
		Title:   "Hello World",
		Summary: "A greeting",
		Content: "Hello from the blog.",
	}
}

func TestCreateDerivesSlug(t *testing.T) {
	svc := newTestService(t)

	post, err := svc.Create(context.Background(), adminIdent, validInput())
	require.NoError(t, err)
	assert.Equal(t, "hello-world", post.Slug)
	assert.NotEmpty(t, post.ID)
	assert.NotNil(t, post.Tags)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestCreateRequiresAuth(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), nil, validInput())
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))

	_, err = svc.Create(context.Background(), nobodyIdent, validInput())
	assert.Equal(t, apperr.PermissionDenied, apperr.KindOf(err))
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), adminIdent, validate.BlogPostInput{Title: "t"})
	appErr := apperr.From(err)
	assert.Equal(t, apperr.InvalidArgument, appErr.Kind)
	assert.NotEmpty(t, appErr.Fields)
}

func TestCreateRejectsUnsluggableTitle(t *testing.T) {
	svc := newTestService(t)

	in := validInput()
	in.Title = "!!!"
	_, err := svc.Create(context.Background(), adminIdent, in)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestCreateDuplicateTitleConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, adminIdent, validInput())
	require.NoError(t, err)

	_, err = svc.Create(ctx, adminIdent, validInput())
	assert.Equal(t, apperr.AlreadyExists, apperr.KindOf(err))
}

func TestUpdateRecomputesSlugOnTitleChange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, adminIdent, validInput())
	require.NoError(t, err)

	in := validInput()
	in.ID = created.ID
	in.Title = "Hello World Again"

	updated, err := svc.Update(ctx, adminIdent, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "hello-world-again", updated.Slug)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateKeepsSlugWhenTitleUnchanged(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, adminIdent, validInput())
	require.NoError(t, err)

	in := validInput()
	in.ID = created.ID
	in.Summary = "A different summary"

	updated, err := svc.Update(ctx, adminIdent, in)
	require.NoError(t, err)
	assert.Equal(t, created.Slug, updated.Slug)
}

func TestUpdateRejectsSlugCollision(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, adminIdent, validInput())
	require.NoError(t, err)

	other := validInput()
	other.Title = "Second Post"
	created, err := svc.Create(ctx, adminIdent, other)
	require.NoError(t, err)

	other.ID = created.ID
	other.Title = "Hello World"
	_, err = svc.Update(ctx, adminIdent, other)
	assert.Equal(t, apperr.AlreadyExists, apperr.KindOf(err))
}

func TestUpdateMissingPost(t *testing.T) {
	svc := newTestService(t)

	in := validInput()
	in.ID = "no-such-id"
	_, err := svc.Update(context.Background(), adminIdent, in)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, adminIdent, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, adminIdent, created.ID))

	err = svc.Delete(ctx, adminIdent, created.ID)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestListFiltersUnpublished(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	published := validInput()
	published.Published = true
	_, err := svc.Create(ctx, adminIdent, published)
	require.NoError(t, err)

	draft := validInput()
	draft.Title = "Draft Post"
	_, err = svc.Create(ctx, adminIdent, draft)
	require.NoError(t, err)

	publicList, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, publicList, 1)

	adminList, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, adminList, 2)
}

func TestGetBySlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, adminIdent, validInput())
	require.NoError(t, err)

	got, err := svc.GetBySlug(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetBySlug(ctx, "missing")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
