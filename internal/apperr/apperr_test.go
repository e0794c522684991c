package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPassesThroughAppErrors(t *testing.T) {
	orig := E(NotFound, "Blog post not found")

	got := From(fmt.Errorf("handler: %w", orig))
	assert.Same(t, orig, got)
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	got := From(errors.New("connection refused"))
	require.NotNil(t, got)
	assert.Equal(t, Internal, got.Kind)
	assert.Equal(t, "An unknown error occurred", got.Message)
	assert.ErrorContains(t, got, "connection refused")
}

func TestFromNil(t *testing.T) {
	assert.Nil(t, From(nil))
}

func TestKindStrings(t *testing.T) {
	cases := []struct {
		kind     Kind
		code     string
		callable string
		status   int
	}{
		{Internal, "internal", "INTERNAL", http.StatusInternalServerError},
		{Unauthenticated, "unauthenticated", "UNAUTHENTICATED", http.StatusUnauthorized},
		{PermissionDenied, "permission-denied", "PERMISSION_DENIED", http.StatusForbidden},
		{InvalidArgument, "invalid-argument", "INVALID_ARGUMENT", http.StatusBadRequest},
		{NotFound, "not-found", "NOT_FOUND", http.StatusNotFound},
		{AlreadyExists, "already-exists", "ALREADY_EXISTS", http.StatusConflict},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.kind.String())
		assert.Equal(t, tc.callable, tc.kind.CallableStatus())
		assert.Equal(t, tc.status, tc.kind.HTTPStatus())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("root")
	err := Wrap(Internal, "Error doing thing", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Equal(t, "Error doing thing: root", err.Error())
}
