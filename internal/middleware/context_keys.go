package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// identityKey is the key used to store the verified caller identity in the
// request context. Using a custom type prevents collisions.
const identityKey = contextKey("identity")

// GetIdentityFromContext retrieves the verified identity from the Gin
// context. It returns the identity and a boolean indicating if it was found.
func GetIdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	return GetIdentityFromCtx(c.Request.Context())
}

// GetIdentityFromCtx retrieves the verified identity from a standard context.
func GetIdentityFromCtx(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}
