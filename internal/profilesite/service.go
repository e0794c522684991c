// Package profilesite implements the singleton site profile and its
// child collections: work experience, education and skills.
package profilesite

import (
	"context"
	"errors"
	"time"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/cache"
	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

const cachePrefix = "profile:"

type Service struct {
	profiles store.Profiles
	gate     *auth.Gate
	cache    *cache.Cache
}

func NewService(profiles store.Profiles, gate *auth.Gate, c *cache.Cache) *Service {
	return &Service{profiles: profiles, gate: gate, cache: c}
}

// View is the public read shape: the profile plus its ordered child
// collections.
type View struct {
	domain.Profile
	WorkExperience []domain.WorkExperience `json:"workExperience"`
	Education      []domain.Education      `json:"education"`
	Skills         []domain.Skill          `json:"skills"`
}

// UpdateProfile creates the singleton record on first call and updates
// it in place afterwards, keeping the original CreatedAt.
func (s *Service) UpdateProfile(ctx context.Context, ident *auth.Identity, in validate.ProfileInput) (*domain.Profile, error) {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return nil, err
	}
	if err := validate.Check(&in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &domain.Profile{
		ID:          domain.ProfileID,
		DisplayName: in.DisplayName,
		Headline:    in.Headline,
		Bio:         in.Bio,
		Email:       in.Email,
		Phone:       in.Phone,
		Location:    in.Location,
		Website:     in.Website,
		SocialLinks: domain.SocialLinks{
			LinkedIn: in.SocialLinks.LinkedIn,
			GitHub:   in.SocialLinks.GitHub,
			Twitter:  in.SocialLinks.Twitter,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error updating profile", err)
	}

	s.cache.Invalidate(ctx, cachePrefix)
	return profile, nil
}

func (s *Service) AddWorkExperience(ctx context.Context, ident *auth.Identity, in validate.WorkExperienceInput) (*domain.WorkExperience, error) {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return nil, err
	}
	if err := validate.Check(&in); err != nil {
		return nil, err
	}
	if err := s.requireProfile(ctx); err != nil {
		return nil, err
	}

	order, err := s.resolveOrder(ctx, in.Order, s.profiles.MaxExperienceOrder)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error adding work experience", err)
	}

	exp := &domain.WorkExperience{
		ProfileID:   domain.ProfileID,
		Company:     in.Company,
		Position:    in.Position,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Current:     in.Current,
		Order:       order,
		CreatedAt:   time.Now().UTC(),
	}
	id, err := s.profiles.AddExperience(ctx, exp)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error adding work experience", err)
	}
	exp.ID = id

	s.cache.Invalidate(ctx, cachePrefix)
	return exp, nil
}

func (s *Service) AddEducation(ctx context.Context, ident *auth.Identity, in validate.EducationInput) (*domain.Education, error) {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return nil, err
	}
	if err := validate.Check(&in); err != nil {
		return nil, err
	}
	if err := s.requireProfile(ctx); err != nil {
		return nil, err
	}

	order, err := s.resolveOrder(ctx, in.Order, s.profiles.MaxEducationOrder)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error adding education", err)
	}

	edu := &domain.Education{
		ProfileID:   domain.ProfileID,
		Institution: in.Institution,
		Degree:      in.Degree,
		Field:       in.Field,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Order:       order,
		CreatedAt:   time.Now().UTC(),
	}
	id, err := s.profiles.AddEducation(ctx, edu)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error adding education", err)
	}
	edu.ID = id

	s.cache.Invalidate(ctx, cachePrefix)
	return edu, nil
}

func (s *Service) AddSkill(ctx context.Context, ident *auth.Identity, in validate.SkillInput) (*domain.Skill, error) {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return nil, err
	}
	in.ApplyDefaults()
	if err := validate.Check(&in); err != nil {
		return nil, err
	}
	if err := s.requireProfile(ctx); err != nil {
		return nil, err
	}

	order, err := s.resolveOrder(ctx, in.Order, s.profiles.MaxSkillOrder)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error adding skill", err)
	}

	skill := &domain.Skill{
		ProfileID:   domain.ProfileID,
		Name:        in.Name,
		Category:    in.Category,
		Proficiency: in.Proficiency,
		Order:       order,
		CreatedAt:   time.Now().UTC(),
	}
	id, err := s.profiles.AddSkill(ctx, skill)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error adding skill", err)
	}
	skill.ID = id

	s.cache.Invalidate(ctx, cachePrefix)
	return skill, nil
}

// Get assembles the public profile view.
func (s *Service) Get(ctx context.Context) (*View, error) {
	key := cachePrefix + "view"

	var cached View
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	profile, err := s.profiles.Get(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.E(apperr.NotFound, "Profile not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error loading profile", err)
	}

	experiences, err := s.profiles.Experiences(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error loading profile", err)
	}
	education, err := s.profiles.EducationList(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error loading profile", err)
	}
	skills, err := s.profiles.Skills(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error loading profile", err)
	}

	view := &View{
		Profile:        *profile,
		WorkExperience: experiences,
		Education:      education,
		Skills:         skills,
	}
	s.cache.SetJSON(ctx, key, view)
	return view, nil
}

// requireProfile gates the child collections on the singleton existing.
func (s *Service) requireProfile(ctx context.Context) error {
	_, err := s.profiles.Get(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.E(apperr.NotFound, "Profile not found. Please create a profile first.")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Error loading profile", err)
	}
	return nil
}

// resolveOrder uses the explicit order when given and max+1 otherwise,
// so new entries land at the end of the list.
func (s *Service) resolveOrder(ctx context.Context, explicit *int, maxFn func(context.Context) (int, error)) (int, error) {
	if explicit != nil {
		return *explicit, nil
	}
	max, err := maxFn(ctx)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
