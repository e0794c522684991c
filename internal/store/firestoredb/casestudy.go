package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

type caseStudyRepo struct {
	client *firestore.Client
}

func (r *caseStudyRepo) Create(ctx context.Context, cs *domain.CaseStudy) (string, error) {
	ref, _, err := r.client.Collection(colCaseStudies).Add(ctx, cs)
	if err != nil {
		return "", fmt.Errorf("create case study: %w", err)
	}
	return ref.ID, nil
}

func (r *caseStudyRepo) Get(ctx context.Context, id string) (*domain.CaseStudy, error) {
	snap, err := r.client.Collection(colCaseStudies).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	var c domain.CaseStudy
	if err := snap.DataTo(&c); err != nil {
		return nil, fmt.Errorf("decode case study %s: %w", id, err)
	}
	c.ID = snap.Ref.ID
	return &c, nil
}

func (r *caseStudyRepo) GetBySlug(ctx context.Context, slug string) (*domain.CaseStudy, error) {
	iter := r.client.Collection(colCaseStudies).
		Where("slug", "==", slug).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query case study by slug: %w", err)
	}
	var c domain.CaseStudy
	if err := snap.DataTo(&c); err != nil {
		return nil, fmt.Errorf("decode case study %s: %w", snap.Ref.ID, err)
	}
	c.ID = snap.Ref.ID
	return &c, nil
}

func (r *caseStudyRepo) Update(ctx context.Context, cs *domain.CaseStudy) error {
	_, err := r.client.Collection(colCaseStudies).Doc(cs.ID).Set(ctx, cs)
	if err != nil {
		return fmt.Errorf("update case study %s: %w", cs.ID, mapErr(err))
	}
	return nil
}

// DeleteCascade removes the case study's sections, metrics and the
// parent document in a single write batch, so all of them commit
// together or none do.
func (r *caseStudyRepo) DeleteCascade(ctx context.Context, id string) error {
	parent := r.client.Collection(colCaseStudies).Doc(id)
	if _, err := parent.Get(ctx); err != nil {
		return mapErr(err)
	}

	batch := r.client.Batch()

	for _, col := range []string{colSections, colMetrics} {
		iter := r.client.Collection(col).
			Where("caseStudyId", "==", id).
			Documents(ctx)
		for {
			snap, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				return fmt.Errorf("query %s for case study %s: %w", col, id, err)
			}
			batch.Delete(snap.Ref)
		}
		iter.Stop()
	}

	batch.Delete(parent)
	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("cascade delete case study %s: %w", id, err)
	}
	return nil
}

func (r *caseStudyRepo) List(ctx context.Context, publishedOnly bool) ([]domain.CaseStudy, error) {
	q := r.client.Collection(colCaseStudies).Query
	if publishedOnly {
		q = q.Where("published", "==", true)
	}
	iter := q.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []domain.CaseStudy
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list case studies: %w", err)
		}
		var c domain.CaseStudy
		if err := snap.DataTo(&c); err != nil {
			return nil, fmt.Errorf("decode case study %s: %w", snap.Ref.ID, err)
		}
		c.ID = snap.Ref.ID
		out = append(out, c)
	}
	return out, nil
}

func (r *caseStudyRepo) AddSection(ctx context.Context, s *domain.CaseStudySection) (string, error) {
	ref, _, err := r.client.Collection(colSections).Add(ctx, s)
	if err != nil {
		return "", fmt.Errorf("add case study section: %w", err)
	}
	return ref.ID, nil
}

func (r *caseStudyRepo) AddMetric(ctx context.Context, m *domain.CaseStudyMetric) (string, error) {
	ref, _, err := r.client.Collection(colMetrics).Add(ctx, m)
	if err != nil {
		return "", fmt.Errorf("add case study metric: %w", err)
	}
	return ref.ID, nil
}

func (r *caseStudyRepo) Sections(ctx context.Context, caseStudyID string) ([]domain.CaseStudySection, error) {
	iter := r.client.Collection(colSections).
		Where("caseStudyId", "==", caseStudyID).
		Documents(ctx)
	defer iter.Stop()

	var out []domain.CaseStudySection
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list sections for %s: %w", caseStudyID, err)
		}
		var s domain.CaseStudySection
		if err := snap.DataTo(&s); err != nil {
			return nil, fmt.Errorf("decode section %s: %w", snap.Ref.ID, err)
		}
		s.ID = snap.Ref.ID
		out = append(out, s)
	}
	return out, nil
}

func (r *caseStudyRepo) Metrics(ctx context.Context, caseStudyID string) ([]domain.CaseStudyMetric, error) {
	iter := r.client.Collection(colMetrics).
		Where("caseStudyId", "==", caseStudyID).
		Documents(ctx)
	defer iter.Stop()

	var out []domain.CaseStudyMetric
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list metrics for %s: %w", caseStudyID, err)
		}
		var m domain.CaseStudyMetric
		if err := snap.DataTo(&m); err != nil {
			return nil, fmt.Errorf("decode metric %s: %w", snap.Ref.ID, err)
		}
		m.ID = snap.Ref.ID
		out = append(out, m)
	}
	return out, nil
}
