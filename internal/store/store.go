// Package store defines the repository interfaces every backing driver
// implements. Three drivers exist: firestoredb (document store),
// postgres (relational) and memory (test / credential-less fallback).
package store

import (
	"context"
	"errors"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
)

// ErrNotFound is returned when a record does not exist. Drivers map
// their native miss condition onto it.
var ErrNotFound = errors.New("record not found")

// ErrSlugTaken is returned by drivers that enforce slug uniqueness at
// write time (the postgres unique index).
var ErrSlugTaken = errors.New("slug already in use")

type BlogPosts interface {
	Create(ctx context.Context, post *domain.BlogPost) (string, error)
	Get(ctx context.Context, id string) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)
}

type CaseStudies interface {
	Create(ctx context.Context, cs *domain.CaseStudy) (string, error)
	Get(ctx context.Context, id string) (*domain.CaseStudy, error)
	GetBySlug(ctx context.Context, slug string) (*domain.CaseStudy, error)
	Update(ctx context.Context, cs *domain.CaseStudy) error
	// DeleteCascade removes the case study together with all of its
	// sections and metrics in one atomic batch.
	DeleteCascade(ctx context.Context, id string) error
	List(ctx context.Context, publishedOnly bool) ([]domain.CaseStudy, error)

	AddSection(ctx context.Context, s *domain.CaseStudySection) (string, error)
	AddMetric(ctx context.Context, m *domain.CaseStudyMetric) (string, error)
	Sections(ctx context.Context, caseStudyID string) ([]domain.CaseStudySection, error)
	Metrics(ctx context.Context, caseStudyID string) ([]domain.CaseStudyMetric, error)
}

type Profiles interface {
	Get(ctx context.Context) (*domain.Profile, error)
	// Upsert creates the singleton profile or updates it in place,
	// preserving CreatedAt when the record already exists.
	Upsert(ctx context.Context, p *domain.Profile) error

	AddExperience(ctx context.Context, w *domain.WorkExperience) (string, error)
	AddEducation(ctx context.Context, e *domain.Education) (string, error)
	AddSkill(ctx context.Context, s *domain.Skill) (string, error)

	// Max*Order return -1 when the collection is empty so the next
	// entry gets order 0.
	MaxExperienceOrder(ctx context.Context) (int, error)
	MaxEducationOrder(ctx context.Context) (int, error)
	MaxSkillOrder(ctx context.Context) (int, error)

	Experiences(ctx context.Context) ([]domain.WorkExperience, error)
	EducationList(ctx context.Context) ([]domain.Education, error)
	Skills(ctx context.Context) ([]domain.Skill, error)
}

type Contacts interface {
	Create(ctx context.Context, c *domain.ContactSubmission) (string, error)
	Get(ctx context.Context, id string) (*domain.ContactSubmission, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.ContactSubmission, error)
}

type Accounts interface {
	Get(ctx context.Context, uid string) (*domain.AdminAccount, error)
	Create(ctx context.Context, a *domain.AdminAccount) error
	SetRole(ctx context.Context, uid, role, updatedBy string) error
}

type Images interface {
	Record(ctx context.Context, img *domain.StoredImage) (string, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Stores bundles one driver's repositories for wiring.
type Stores struct {
	Blog        BlogPosts
	CaseStudies CaseStudies
	Profiles    Profiles
	Contacts    Contacts
	Accounts    Accounts
	Images      Images
	Health      Pinger
}
