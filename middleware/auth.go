package middleware

import (
	"context"
	"net/http"
	"strings"

	"bloodlink/model"
	"bloodlink/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

// RoleLookup resolves the stored role for an email. Empty role means no
// profile exists.
type RoleLookup func(ctx context.Context, email string) (string, error)

// Authenticate validates the bearer credential and stores the verified
// identity in the request context.
func Authenticate(verifier services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is missing"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is expired or invalid"})
			return
		}

		c.Set("email", identity.Email)
		c.Set("name", identity.Name)
		c.Next()
	}
}

// RequireRole admits callers whose stored profile carries one of the given
// roles. The role is looked up per request; a missing profile is simply not
// admitted.
func RequireRole(lookup RoleLookup, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		role, err := lookup(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to look up user role"})
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

func RequireAdmin(fb *firestore.Client) gin.HandlerFunc {
	return RequireRole(storedRole(fb), model.RoleAdmin)
}

func RequireStaff(fb *firestore.Client) gin.HandlerFunc {
	return RequireRole(storedRole(fb), model.RoleAdmin, model.RoleVolunteer)
}

func storedRole(fb *firestore.Client) RoleLookup {
	return func(ctx context.Context, email string) (string, error) {
		return services.GetUserRole(ctx, fb, email)
	}
}
