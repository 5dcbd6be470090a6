package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OwnerKey is the gin context key handlers read the caller identity from.
const OwnerKey = "uid"

// OwnerResolver derives the caller identity for a request.
type OwnerResolver func(c *gin.Context) (string, bool)

// FixedOwner resolves every request to ownerID. It stands in until requests
// carry real credentials.
func FixedOwner(ownerID string) OwnerResolver {
	return func(*gin.Context) (string, bool) {
		return ownerID, true
	}
}

// OwnerMiddleware stores the resolved identity under OwnerKey and rejects
// requests that resolve to none.
func OwnerMiddleware(resolve OwnerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := resolve(c)
		if !ok || ownerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Caller identity could not be resolved"})
			return
		}

		c.Set(OwnerKey, ownerID)
		c.Next()
	}
}
