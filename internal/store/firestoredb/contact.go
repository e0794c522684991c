package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
)

type contactRepo struct {
	client *firestore.Client
}

func (r *contactRepo) Create(ctx context.Context, c *domain.ContactSubmission) (string, error) {
	ref, _, err := r.client.Collection(colContacts).Add(ctx, c)
	if err != nil {
		return "", fmt.Errorf("create contact submission: %w", err)
	}
	return ref.ID, nil
}

func (r *contactRepo) Get(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	snap, err := r.client.Collection(colContacts).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	var c domain.ContactSubmission
	if err := snap.DataTo(&c); err != nil {
		return nil, fmt.Errorf("decode contact submission %s: %w", id, err)
	}
	c.ID = snap.Ref.ID
	return &c, nil
}

func (r *contactRepo) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection(colContacts).Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *contactRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(colContacts).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete contact submission %s: %w", id, err)
	}
	return nil
}

func (r *contactRepo) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	iter := r.client.Collection(colContacts).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []domain.ContactSubmission
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list contact submissions: %w", err)
		}
		var c domain.ContactSubmission
		if err := snap.DataTo(&c); err != nil {
			return nil, fmt.Errorf("decode contact submission %s: %w", snap.Ref.ID, err)
		}
		c.ID = snap.Ref.ID
		out = append(out, c)
	}
	return out, nil
}
