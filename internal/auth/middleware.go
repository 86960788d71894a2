package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the session cookie written by login and cleared by logout.
	CookieName = "token"

	ctxUserIDKey = "auth_user_id"
	ctxRoleKey   = "auth_role"
)

// Authenticate verifies the session token from the cookie (or an
// Authorization bearer header) and stores the caller's identity and
// role in the request context. Handlers read them back through
// Identity; nothing downstream touches the raw token.
func Authenticate(tokens *TokenProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			tokenString = bearerToken(c.GetHeader("Authorization"))
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User not authenticated.",
			})
			return
		}
		claims, err := tokens.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired session.",
			})
			return
		}
		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole gates recruiter-only routes. Must run after Authenticate.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRoleKey) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Insufficient role for this action.",
			})
			return
		}
		c.Next()
	}
}

// Identity returns the authenticated caller's user id and role.
func Identity(c *gin.Context) (uint, string) {
	return c.GetUint(ctxUserIDKey), c.GetString(ctxRoleKey)
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
