// Package auth covers caller identity: token verification, the gin
// middleware that attaches it, and the role gate handlers call before
// doing any work.
package auth

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the verified caller principal.
type Identity struct {
	UID   string
	Email string
}

// TokenVerifier turns a bearer token into an Identity.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (*Identity, error)
}

// UserAdmin creates accounts in the identity provider.
type UserAdmin interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
}

// StaticVerifier resolves tokens from a fixed map. It backs the memory
// driver and tests, where no identity provider is reachable.
type StaticVerifier struct {
	Tokens map[string]Identity
}

func (v *StaticVerifier) VerifyIDToken(ctx context.Context, token string) (*Identity, error) {
	if id, ok := v.Tokens[token]; ok {
		out := id
		return &out, nil
	}
	return nil, ErrInvalidToken
}

// StaticUserAdmin mints random UIDs without talking to a provider.
// Pairs with StaticVerifier in memory mode.
type StaticUserAdmin struct{}

func (StaticUserAdmin) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return uuid.NewString(), nil
}
