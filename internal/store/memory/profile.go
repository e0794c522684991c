package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

type profileRepo struct {
	s *Store
}

func (r *profileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.profile == nil {
		return nil, store.ErrNotFound
	}
	p := *r.s.profile
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	cp.ID = domain.ProfileID
	if r.s.profile != nil {
		cp.CreatedAt = r.s.profile.CreatedAt
	}
	r.s.profile = &cp
	return nil
}

func (r *profileRepo) AddExperience(ctx context.Context, w *domain.WorkExperience) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := uuid.NewString()
	we := *w
	we.ID = id
	r.s.experiences[id] = we
	return id, nil
}

func (r *profileRepo) AddEducation(ctx context.Context, e *domain.Education) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := uuid.NewString()
	ed := *e
	ed.ID = id
	r.s.education[id] = ed
	return id, nil
}

func (r *profileRepo) AddSkill(ctx context.Context, sk *domain.Skill) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := uuid.NewString()
	skill := *sk
	skill.ID = id
	r.s.skills[id] = skill
	return id, nil
}

func (r *profileRepo) MaxExperienceOrder(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	max := -1
	for _, w := range r.s.experiences {
		if w.Order > max {
			max = w.Order
		}
	}
	return max, nil
}

func (r *profileRepo) MaxEducationOrder(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	max := -1
	for _, e := range r.s.education {
		if e.Order > max {
			max = e.Order
		}
	}
	return max, nil
}

func (r *profileRepo) MaxSkillOrder(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	max := -1
	for _, sk := range r.s.skills {
		if sk.Order > max {
			max = sk.Order
		}
	}
	return max, nil
}

func (r *profileRepo) Experiences(ctx context.Context) ([]domain.WorkExperience, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.WorkExperience, 0, len(r.s.experiences))
	for _, w := range r.s.experiences {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *profileRepo) EducationList(ctx context.Context) ([]domain.Education, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Education, 0, len(r.s.education))
	for _, e := range r.s.education {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *profileRepo) Skills(ctx context.Context) ([]domain.Skill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Skill, 0, len(r.s.skills))
	for _, sk := range r.s.skills {
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}
