package auth

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrInvalidToken is returned by verifiers for tokens they reject.
var ErrInvalidToken = errors.New("invalid token")

const ctxIdentity = "auth_identity"

// Middleware attaches the verified caller identity to the gin context
// when a Bearer token is present. A missing or invalid token is not an
// error here: unauthenticated operations (contact submit, public reads)
// share the same router, so the role gate decides later.
func Middleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		id, err := verifier.VerifyIDToken(c.Request.Context(), token)
		if err == nil && id != nil {
			c.Set(ctxIdentity, id)
		}

		c.Next()
	}
}

// FromContext returns the verified identity, or nil for anonymous
// callers.
func FromContext(c *gin.Context) *Identity {
	v, ok := c.Get(ctxIdentity)
	if !ok {
		return nil
	}
	id, _ := v.(*Identity)
	return id
}

// extractToken extracts the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
