package profilesite

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

var admin = &auth.Identity{UID: "admin-uid", Email: "admin@example.com"}

func newTestService(t *testing.T) *Service {
	t.Helper()

	stores := memory.New().Stores()
	err := stores.Accounts.Create(context.Background(), &domain.AdminAccount{
		UID:  admin.UID,
		Role: domain.RoleAdmin,
	})
	require.NoError(t, err)

	return NewService(stores.Profiles, auth.NewGate(stores.Accounts), cache.New(nil))
}

func profileInput() validate.ProfileInput {
	return validate.ProfileInput{
		DisplayName: "Jane Doe",
		Email:       "jane@example.com",
	}
}

func TestChildrenRequireProfile(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddWorkExperience(context.Background(), admin, validate.WorkExperienceInput{
		Company: "Acme", Position: "Engineer", StartDate: "2020-01",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Contains(t, apperr.From(err).Message, "create a profile first")
}

func TestUpdateProfileAndAddChildren(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	profile, err := svc.UpdateProfile(ctx, admin, profileInput())
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileID, profile.ID)

	first, err := svc.AddWorkExperience(ctx, admin, validate.WorkExperienceInput{
		Company: "Acme", Position: "Engineer", StartDate: "2020-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Order)

	second, err := svc.AddWorkExperience(ctx, admin, validate.WorkExperienceInput{
		Company: "Globex", Position: "Senior Engineer", StartDate: "2022-06",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Order)

	five := 5
	explicit, err := svc.AddEducation(ctx, admin, validate.EducationInput{
		Institution: "State U", Degree: "BSc", Field: "CS", StartDate: "2015-09", Order: &five,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, explicit.Order)
}

func TestAddSkillDefaultsProficiency(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, admin, profileInput())
	require.NoError(t, err)

	skill, err := svc.AddSkill(ctx, admin, validate.SkillInput{Name: "Go", Category: "backend"})
	require.NoError(t, err)
	assert.Equal(t, 3, skill.Proficiency)

	_, err = svc.AddSkill(ctx, admin, validate.SkillInput{Name: "Go", Category: "backend", Proficiency: 9})
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestGetAssemblesView(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	_, err = svc.UpdateProfile(ctx, admin, profileInput())
	require.NoError(t, err)

	_, err = svc.AddSkill(ctx, admin, validate.SkillInput{Name: "Go", Category: "backend"})
	require.NoError(t, err)

	view, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", view.DisplayName)
	assert.Len(t, view.Skills, 1)
	assert.Empty(t, view.WorkExperience)
	assert.Empty(t, view.Education)
}

func TestUpdateProfileRequiresAdmin(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateProfile(context.Background(), nil, profileInput())
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
}
