package middleware

import (
	"net/http"
	"strings"

	"AuthCore/pkg/token"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserKey   = "current_user"
	ContextClaimsKey = "current_claims"
)

// AuthMiddleware gates protected routes behind a valid bearer access
// token. On success the decoded claims are placed into the request
// context; handlers never re-verify the token themselves.
func AuthMiddleware(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
			return
		}
		parts := strings.Fields(auth)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization header"})
			return
		}

		claims, err := issuer.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid token"})
			return
		}

		if claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid subject in token"})
			return
		}

		c.Set(ContextUserKey, claims.Subject)
		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}
