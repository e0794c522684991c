package casestudy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/cache"
	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
	"github.com/tharindu-dev/portfolio-backend/internal/store/memory"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

var admin = &auth.Identity{UID: "admin-uid", Email: "admin@example.com"}

func newTestService(t *testing.T) (*Service, store.CaseStudies) {
	t.Helper()

	stores := memory.New().Stores()
	err := stores.Accounts.Create(context.Background(), &domain.AdminAccount{
		UID:  admin.UID,
		Role: domain.RoleAdmin,
	})
	require.NoError(t, err)

	return NewService(stores.CaseStudies, auth.NewGate(stores.Accounts), cache.New(nil)), stores.CaseStudies
}

func validInput() validate.CaseStudyInput {
	return validate.CaseStudyInput{
		Title:   "Checkout Redesign",
		Summary: "How we rebuilt checkout",
	}
}

func TestCreateAndSlug(t *testing.T) {
	svc, _ := newTestService(t)

	cs, err := svc.Create(context.Background(), admin, validInput())
	require.NoError(t, err)
	assert.Equal(t, "checkout-redesign", cs.Slug)

	_, err = svc.Create(context.Background(), admin, validInput())
	assert.Equal(t, apperr.AlreadyExists, apperr.KindOf(err))
}

func TestSectionsAndMetricsAutoOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cs, err := svc.Create(ctx, admin, validInput())
	require.NoError(t, err)

	first, err := svc.AddSection(ctx, admin, validate.SectionInput{
		CaseStudyID: cs.ID, Title: "Problem", Content: "Slow checkout",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Order)

	second, err := svc.AddSection(ctx, admin, validate.SectionInput{
		CaseStudyID: cs.ID, Title: "Solution", Content: "New flow",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Order)

	seven := 7
	explicit, err := svc.AddMetric(ctx, admin, validate.MetricInput{
		CaseStudyID: cs.ID, Label: "Conversion", Value: "+12%", Order: &seven,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, explicit.Order)
}

func TestAddSectionMissingStudy(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddSection(context.Background(), admin, validate.SectionInput{
		CaseStudyID: "missing", Title: "t", Content: "c",
	})
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestDeleteCascades(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	cs, err := svc.Create(ctx, admin, validInput())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := svc.AddSection(ctx, admin, validate.SectionInput{
			CaseStudyID: cs.ID, Title: "s", Content: "c",
		})
		require.NoError(t, err)
	}
	_, err = svc.AddMetric(ctx, admin, validate.MetricInput{
		CaseStudyID: cs.ID, Label: "l", Value: "v",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, admin, cs.ID))

	_, err = repo.Get(ctx, cs.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	sections, err := repo.Sections(ctx, cs.ID)
	require.NoError(t, err)
	assert.Empty(t, sections)

	metrics, err := repo.Metrics(ctx, cs.ID)
	require.NoError(t, err)
	assert.Empty(t, metrics)
}

func TestGetBySlugIncludesChildren(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cs, err := svc.Create(ctx, admin, validInput())
	require.NoError(t, err)

	_, err = svc.AddSection(ctx, admin, validate.SectionInput{
		CaseStudyID: cs.ID, Title: "Problem", Content: "Slow checkout",
	})
	require.NoError(t, err)

	detail, err := svc.GetBySlug(ctx, cs.Slug)
	require.NoError(t, err)
	assert.Equal(t, cs.ID, detail.ID)
	assert.Len(t, detail.Sections, 1)
	assert.Empty(t, detail.Metrics)
}
