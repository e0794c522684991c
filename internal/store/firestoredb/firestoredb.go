// Package firestoredb is the Firestore store driver. Collection names
// follow the site's original document layout.
package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

const (
	colBlogPosts   = "blog_posts"
	colCaseStudies = "case_studies"
	colSections    = "case_study_sections"
	colMetrics     = "case_study_metrics"
	colProfile     = "profile"
	colExperiences = "work_experiences"
	colEducation   = "education"
	colSkills      = "skills"
	colContacts    = "contact_submissions"
	colUsers       = "users"
	colImages      = "images"
)

type Store struct {
	client *firestore.Client
}

func New(client *firestore.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Stores() store.Stores {
	return store.Stores{
		Blog:        &blogRepo{s.client},
		CaseStudies: &caseStudyRepo{s.client},
		Profiles:    &profileRepo{s.client},
		Contacts:    &contactRepo{s.client},
		Accounts:    &accountRepo{s.client},
		Images:      &imageRepo{s.client},
		Health:      s,
	}
}

// Ping issues a single-document read to confirm connectivity. A missing
// profile document still means the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.Collection(colProfile).Doc("main").Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return err
	}
	return nil
}

// mapErr converts the client's not-found condition to store.ErrNotFound.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return store.ErrNotFound
	}
	return err
}
