package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
)

type profileRepo struct {
	client *firestore.Client
}

func (r *profileRepo) doc() *firestore.DocumentRef {
	return r.client.Collection(colProfile).Doc(domain.ProfileID)
}

func (r *profileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	snap, err := r.doc().Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	var p domain.Profile
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	snap, err := r.doc().Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("load profile: %w", err)
	}
	cp := *p
	if snap != nil && snap.Exists() {
		var existing domain.Profile
		if err := snap.DataTo(&existing); err == nil {
			cp.CreatedAt = existing.CreatedAt
		}
	}
	if _, err := r.doc().Set(ctx, &cp); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

func (r *profileRepo) AddExperience(ctx context.Context, w *domain.WorkExperience) (string, error) {
	ref, _, err := r.client.Collection(colExperiences).Add(ctx, w)
	if err != nil {
		return "", fmt.Errorf("add work experience: %w", err)
	}
	return ref.ID, nil
}

func (r *profileRepo) AddEducation(ctx context.Context, e *domain.Education) (string, error) {
	ref, _, err := r.client.Collection(colEducation).Add(ctx, e)
	if err != nil {
		return "", fmt.Errorf("add education: %w", err)
	}
	return ref.ID, nil
}

func (r *profileRepo) AddSkill(ctx context.Context, s *domain.Skill) (string, error) {
	ref, _, err := r.client.Collection(colSkills).Add(ctx, s)
	if err != nil {
		return "", fmt.Errorf("add skill: %w", err)
	}
	return ref.ID, nil
}

func (r *profileRepo) MaxExperienceOrder(ctx context.Context) (int, error) {
	return r.maxOrder(ctx, colExperiences)
}

func (r *profileRepo) MaxEducationOrder(ctx context.Context) (int, error) {
	return r.maxOrder(ctx, colEducation)
}

func (r *profileRepo) MaxSkillOrder(ctx context.Context) (int, error) {
	return r.maxOrder(ctx, colSkills)
}

func (r *profileRepo) maxOrder(ctx context.Context, col string) (int, error) {
	iter := r.client.Collection(col).
		OrderBy("order", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return -1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("max order for %s: %w", col, err)
	}
	v, err := snap.DataAt("order")
	if err != nil {
		return 0, nil
	}
	if n, ok := v.(int64); ok {
		return int(n), nil
	}
	return 0, nil
}

func (r *profileRepo) Experiences(ctx context.Context) ([]domain.WorkExperience, error) {
	iter := r.client.Collection(colExperiences).OrderBy("order", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []domain.WorkExperience
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list work experiences: %w", err)
		}
		var w domain.WorkExperience
		if err := snap.DataTo(&w); err != nil {
			return nil, fmt.Errorf("decode work experience %s: %w", snap.Ref.ID, err)
		}
		w.ID = snap.Ref.ID
		out = append(out, w)
	}
	return out, nil
}

func (r *profileRepo) EducationList(ctx context.Context) ([]domain.Education, error) {
	iter := r.client.Collection(colEducation).OrderBy("order", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []domain.Education
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list education: %w", err)
		}
		var e domain.Education
		if err := snap.DataTo(&e); err != nil {
			return nil, fmt.Errorf("decode education %s: %w", snap.Ref.ID, err)
		}
		e.ID = snap.Ref.ID
		out = append(out, e)
	}
	return out, nil
}

func (r *profileRepo) Skills(ctx context.Context) ([]domain.Skill, error) {
	iter := r.client.Collection(colSkills).OrderBy("order", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []domain.Skill
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list skills: %w", err)
		}
		var s domain.Skill
		if err := snap.DataTo(&s); err != nil {
			return nil, fmt.Errorf("decode skill %s: %w", snap.Ref.ID, err)
		}
		s.ID = snap.Ref.ID
		out = append(out, s)
	}
	return out, nil
}
