package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

type blogRepo struct {
	client *firestore.Client
}

func (r *blogRepo) Create(ctx context.Context, post *domain.BlogPost) (string, error) {
	ref, _, err := r.client.Collection(colBlogPosts).Add(ctx, post)
	if err != nil {
		return "", fmt.Errorf("create blog post: %w", err)
	}
	return ref.ID, nil
}

func (r *blogRepo) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	snap, err := r.client.Collection(colBlogPosts).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	var p domain.BlogPost
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode blog post %s: %w", id, err)
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

func (r *blogRepo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	iter := r.client.Collection(colBlogPosts).
		Where("slug", "==", slug).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query blog post by slug: %w", err)
	}
	var p domain.BlogPost
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode blog post %s: %w", snap.Ref.ID, err)
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

func (r *blogRepo) Update(ctx context.Context, post *domain.BlogPost) error {
	_, err := r.client.Collection(colBlogPosts).Doc(post.ID).Set(ctx, post)
	if err != nil {
		return fmt.Errorf("update blog post %s: %w", post.ID, mapErr(err))
	}
	return nil
}

func (r *blogRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(colBlogPosts).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete blog post %s: %w", id, err)
	}
	return nil
}

func (r *blogRepo) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	q := r.client.Collection(colBlogPosts).Query
	if publishedOnly {
		q = q.Where("published", "==", true)
	}
	iter := q.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []domain.BlogPost
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list blog posts: %w", err)
		}
		var p domain.BlogPost
		if err := snap.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode blog post %s: %w", snap.Ref.ID, err)
		}
		p.ID = snap.Ref.ID
		out = append(out, p)
	}
	return out, nil
}
