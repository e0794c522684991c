package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

// Malformed ids must read as a missing row, not as a uuid cast error
// from the server. The guards run before any query, so nil pools are
// safe here.
func TestMalformedIDsReadAsMissing(t *testing.T) {
	ctx := context.Background()

	_, err := (&blogRepo{}).Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, (&blogRepo{}).Delete(ctx, "42"), store.ErrNotFound)

	_, err = (&caseStudyRepo{}).Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, (&caseStudyRepo{}).DeleteCascade(ctx, ""), store.ErrNotFound)

	_, err = (&contactRepo{}).Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, (&contactRepo{}).MarkRead(ctx, "not-a-uuid"), store.ErrNotFound)
	assert.ErrorIs(t, (&contactRepo{}).Delete(ctx, "not-a-uuid"), store.ErrNotFound)
}
