package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

type caseStudyRepo struct {
	s *Store
}

func (r *caseStudyRepo) Create(ctx context.Context, cs *domain.CaseStudy) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := uuid.NewString()
	c := *cs
	c.ID = id
	r.s.caseStudies[id] = c
	return id, nil
}

func (r *caseStudyRepo) Get(ctx context.Context, id string) (*domain.CaseStudy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.caseStudies[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (r *caseStudyRepo) GetBySlug(ctx context.Context, slug string) (*domain.CaseStudy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.caseStudies {
		if c.Slug == slug {
			out := c
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *caseStudyRepo) Update(ctx context.Context, cs *domain.CaseStudy) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.caseStudies[cs.ID]; !ok {
		return store.ErrNotFound
	}
	r.s.caseStudies[cs.ID] = *cs
	return nil
}

func (r *caseStudyRepo) DeleteCascade(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.caseStudies[id]; !ok {
		return store.ErrNotFound
	}
	for sid, sec := range r.s.sections {
		if sec.CaseStudyID == id {
			delete(r.s.sections, sid)
		}
	}
	for mid, m := range r.s.metrics {
		if m.CaseStudyID == id {
			delete(r.s.metrics, mid)
		}
	}
	delete(r.s.caseStudies, id)
	return nil
}

func (r *caseStudyRepo) List(ctx context.Context, publishedOnly bool) ([]domain.CaseStudy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.CaseStudy, 0, len(r.s.caseStudies))
	for _, c := range r.s.caseStudies {
		if publishedOnly && !c.Published {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *caseStudyRepo) AddSection(ctx context.Context, s *domain.CaseStudySection) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := uuid.NewString()
	sec := *s
	sec.ID = id
	r.s.sections[id] = sec
	return id, nil
}

func (r *caseStudyRepo) AddMetric(ctx context.Context, m *domain.CaseStudyMetric) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := uuid.NewString()
	met := *m
	met.ID = id
	r.s.metrics[id] = met
	return id, nil
}

func (r *caseStudyRepo) Sections(ctx context.Context, caseStudyID string) ([]domain.CaseStudySection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.CaseStudySection, 0)
	for _, sec := range r.s.sections {
		if sec.CaseStudyID == caseStudyID {
			out = append(out, sec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *caseStudyRepo) Metrics(ctx context.Context, caseStudyID string) ([]domain.CaseStudyMetric, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.CaseStudyMetric, 0)
	for _, m := range r.s.metrics {
		if m.CaseStudyID == caseStudyID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}
