package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
)

type accountRepo struct {
	client *firestore.Client
}

func (r *accountRepo) Get(ctx context.Context, uid string) (*domain.AdminAccount, error) {
	snap, err := r.client.Collection(colUsers).Doc(uid).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	var a domain.AdminAccount
	if err := snap.DataTo(&a); err != nil {
		return nil, fmt.Errorf("decode account %s: %w", uid, err)
	}
	a.UID = snap.Ref.ID
	return &a, nil
}

func (r *accountRepo) Create(ctx context.Context, a *domain.AdminAccount) error {
	_, err := r.client.Collection(colUsers).Doc(a.UID).Set(ctx, a)
	if err != nil {
		return fmt.Errorf("create account %s: %w", a.UID, err)
	}
	return nil
}

func (r *accountRepo) SetRole(ctx context.Context, uid, role, updatedBy string) error {
	_, err := r.client.Collection(colUsers).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
		{Path: "updatedBy", Value: updatedBy},
	})
	if err != nil {
		return mapErr(err)
	}
	return nil
}

type imageRepo struct {
	client *firestore.Client
}

func (r *imageRepo) Record(ctx context.Context, img *domain.StoredImage) (string, error) {
	ref, _, err := r.client.Collection(colImages).Add(ctx, img)
	if err != nil {
		return "", fmt.Errorf("record image metadata: %w", err)
	}
	return ref.ID, nil
}
