// Package memory is the map-backed store driver used in tests and when
// no database credentials are configured.
package memory

import (
	"context"
	"sync"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

type Store struct {
	mu sync.Mutex

	posts       map[string]domain.BlogPost
	caseStudies map[string]domain.CaseStudy
	sections    map[string]domain.CaseStudySection
	metrics     map[string]domain.CaseStudyMetric
	profile     *domain.Profile
	experiences map[string]domain.WorkExperience
	education   map[string]domain.Education
	skills      map[string]domain.Skill
	contacts    map[string]domain.ContactSubmission
	accounts    map[string]domain.AdminAccount
	images      map[string]domain.StoredImage
}

func New() *Store {
	return &Store{
		posts:       make(map[string]domain.BlogPost),
		caseStudies: make(map[string]domain.CaseStudy),
		sections:    make(map[string]domain.CaseStudySection),
		metrics:     make(map[string]domain.CaseStudyMetric),
		experiences: make(map[string]domain.WorkExperience),
		education:   make(map[string]domain.Education),
		skills:      make(map[string]domain.Skill),
		contacts:    make(map[string]domain.ContactSubmission),
		accounts:    make(map[string]domain.AdminAccount),
		images:      make(map[string]domain.StoredImage),
	}
}

// Stores exposes the driver through the shared repository bundle.
func (s *Store) Stores() store.Stores {
	return store.Stores{
		Blog:        &blogRepo{s},
		CaseStudies: &caseStudyRepo{s},
		Profiles:    &profileRepo{s},
		Contacts:    &contactRepo{s},
		Accounts:    &accountRepo{s},
		Images:      &imageRepo{s},
		Health:      s,
	}
}

func (s *Store) Ping(ctx context.Context) error { return nil }
