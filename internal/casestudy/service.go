// Package casestudy implements the case study operations, including
// the sections and metrics that hang off each study.
package casestudy

import (
	"context"
	"errors"
	"time"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/cache"
	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/slug"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

const cachePrefix = "casestudy:"

type Service struct {
	studies store.CaseStudies
	gate    *auth.Gate
	cache   *cache.Cache
}

func NewService(studies store.CaseStudies, gate *auth.Gate, c *cache.Cache) *Service {
	return &Service{studies: studies, gate: gate, cache: c}
}

// Detail is the public read shape: the study plus its ordered sections
// and metrics.
type Detail struct {
	domain.CaseStudy
	Sections []domain.CaseStudySection `json:"sections"`
	Metrics  []domain.CaseStudyMetric  `json:"metrics"`
}

func (s *Service) Create(ctx context.Context, ident *auth.Identity, in validate.CaseStudyInput) (*domain.CaseStudy, error) {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return nil, err
	}
	in.ApplyDefaults()
	if err := validate.Check(&in); err != nil {
		return nil, err
	}

	sl := slug.Make(in.Title)
	if sl == "" {
		return nil, apperr.Invalid("Invalid case study data", apperr.FieldError{
			Field: "title", Message: "title must contain at least one word character",
		})
	}
	if err := s.checkSlugFree(ctx, sl, ""); err != nil {
		return nil, err
	}

	publishedDate, err := validate.ParseDate(in.PublishedDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cs := &domain.CaseStudy{
		Title:          in.Title,
		Summary:        in.Summary,
		CoverImage:     in.CoverImage,
		ThumbnailImage: in.ThumbnailImage,
		PublishedDate:  publishedDate,
		Featured:       in.Featured,
		Published:      in.Published,
		Tags:           in.Tags,
		Slug:           sl,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	id, err := s.studies.Create(ctx, cs)
	if errors.Is(err, store.ErrSlugTaken) {
		return nil, apperr.E(apperr.AlreadyExists, "A case study with this title already exists")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error creating case study", err)
	}
	cs.ID = id

	s.cache.Invalidate(ctx, cachePrefix)
	return cs, nil
}

func (s *Service) Update(ctx context.Context, ident *auth.Identity, in validate.CaseStudyInput) (*domain.CaseStudy, error) {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return nil, err
	}
	if in.ID == "" {
		return nil, apperr.E(apperr.InvalidArgument, "Case study ID is required")
	}
	in.ApplyDefaults()
	if err := validate.Check(&in); err != nil {
		return nil, err
	}

	existing, err := s.studies.Get(ctx, in.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.E(apperr.NotFound, "Case study not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error updating case study", err)
	}

	sl := existing.Slug
	if in.Title != existing.Title {
		sl = slug.Make(in.Title)
		if sl == "" {
			return nil, apperr.Invalid("Invalid case study data", apperr.FieldError{
				Field: "title", Message: "title must contain at least one word character",
			})
		}
		if err := s.checkSlugFree(ctx, sl, in.ID); err != nil {
			return nil, err
		}
	}

	publishedDate, err := validate.ParseDate(in.PublishedDate)
	if err != nil {
		return nil, err
	}

	cs := &domain.CaseStudy{
		ID:             existing.ID,
		Title:          in.Title,
		Summary:        in.Summary,
		CoverImage:     in.CoverImage,
		ThumbnailImage: in.ThumbnailImage,
		PublishedDate:  publishedDate,
		Featured:       in.Featured,
		Published:      in.Published,
		Tags:           in.Tags,
		Slug:           sl,
		CreatedAt:      existing.CreatedAt,
		UpdatedAt:      time.Now().UTC(),
	}

	if err := s.studies.Update(ctx, cs); err != nil {
		if errors.Is(err, store.ErrSlugTaken) {
			return nil, apperr.E(apperr.AlreadyExists, "A case study with this title already exists")
		}
		return nil, apperr.Wrap(apperr.Internal, "Error updating case study", err)
	}

	s.cache.Invalidate(ctx, cachePrefix)
	return cs, nil
}

// Delete removes the study and every dependent section and metric in
// one batch; a partial delete never becomes visible.
func (s *Service) Delete(ctx context.Context, ident *auth.Identity, id string) error {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return err
	}
	if id == "" {
		return apperr.E(apperr.InvalidArgument, "Case study ID is required")
	}

	if _, err := s.studies.Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.E(apperr.NotFound, "Case study not found")
		}
		return apperr.Wrap(apperr.Internal, "Error deleting case study", err)
	}
	if err := s.studies.DeleteCascade(ctx, id); err != nil {
		return apperr.Wrap(apperr.Internal, "Error deleting case study", err)
	}

	s.cache.Invalidate(ctx, cachePrefix)
	return nil
}

func (s *Service) AddSection(ctx context.Context, ident *auth.Identity, in validate.SectionInput) (*domain.CaseStudySection, error) {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return nil, err
	}
	if err := validate.Check(&in); err != nil {
		return nil, err
	}
	if _, err := s.studies.Get(ctx, in.CaseStudyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.E(apperr.NotFound, "Case study not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Error adding section", err)
	}

	order, err := nextOrder(in.Order, func() (int, error) {
		sections, err := s.studies.Sections(ctx, in.CaseStudyID)
		if err != nil {
			return 0, err
		}
		max := -1
		for _, sec := range sections {
			if sec.Order > max {
				max = sec.Order
			}
		}
		return max, nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error adding section", err)
	}

	section := &domain.CaseStudySection{
		CaseStudyID: in.CaseStudyID,
		Title:       in.Title,
		Content:     in.Content,
		Order:       order,
	}
	id, err := s.studies.AddSection(ctx, section)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error adding section", err)
	}
	section.ID = id

	s.cache.Invalidate(ctx, cachePrefix)
	return section, nil
}

func (s *Service) AddMetric(ctx context.Context, ident *auth.Identity, in validate.MetricInput) (*domain.CaseStudyMetric, error) {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return nil, err
	}
	if err := validate.Check(&in); err != nil {
		return nil, err
	}
	if _, err := s.studies.Get(ctx, in.CaseStudyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.E(apperr.NotFound, "Case study not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Error adding metric", err)
	}

	order, err := nextOrder(in.Order, func() (int, error) {
		metrics, err := s.studies.Metrics(ctx, in.CaseStudyID)
		if err != nil {
			return 0, err
		}
		max := -1
		for _, m := range metrics {
			if m.Order > max {
				max = m.Order
			}
		}
		return max, nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error adding metric", err)
	}

	metric := &domain.CaseStudyMetric{
		CaseStudyID: in.CaseStudyID,
		Label:       in.Label,
		Value:       in.Value,
		Order:       order,
	}
	id, err := s.studies.AddMetric(ctx, metric)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error adding metric", err)
	}
	metric.ID = id

	s.cache.Invalidate(ctx, cachePrefix)
	return metric, nil
}

func (s *Service) List(ctx context.Context, all bool) ([]domain.CaseStudy, error) {
	key := cachePrefix + "list:published"
	if all {
		key = cachePrefix + "list:all"
	}

	var cached []domain.CaseStudy
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	studies, err := s.studies.List(ctx, !all)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error listing case studies", err)
	}
	s.cache.SetJSON(ctx, key, studies)
	return studies, nil
}

// GetBySlug returns the study with its sections and metrics attached.
func (s *Service) GetBySlug(ctx context.Context, sl string) (*Detail, error) {
	key := cachePrefix + "slug:" + sl

	var cached Detail
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	cs, err := s.studies.GetBySlug(ctx, sl)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.E(apperr.NotFound, "Case study not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error loading case study", err)
	}

	sections, err := s.studies.Sections(ctx, cs.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error loading case study", err)
	}
	metrics, err := s.studies.Metrics(ctx, cs.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error loading case study", err)
	}

	detail := &Detail{CaseStudy: *cs, Sections: sections, Metrics: metrics}
	s.cache.SetJSON(ctx, key, detail)
	return detail, nil
}

func nextOrder(explicit *int, maxFn func() (int, error)) (int, error) {
	if explicit != nil {
		return *explicit, nil
	}
	max, err := maxFn()
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (s *Service) checkSlugFree(ctx context.Context, sl, excludeID string) error {
	existing, err := s.studies.GetBySlug(ctx, sl)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Error checking slug uniqueness", err)
	}
	if existing.ID == excludeID {
		return nil
	}
	return apperr.E(apperr.AlreadyExists, "A case study with this title already exists")
}
