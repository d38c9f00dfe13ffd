package middleware

import (
	"net/http"
	"strings"

	userRepo "admas/database/repository/user"
	"admas/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is the gin context key holding the authenticated user ID.
const ContextUserIDKey = "userID"

// JWTAuthUserMiddleware validates the bearer token and loads the user ID
// into the request context.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := extractUserID(c)
		if !ok {
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// JWTAuthAdminMiddleware validates the bearer token and requires the
// account to be flagged as admin.
func JWTAuthAdminMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := extractUserID(c)
		if !ok {
			return
		}

		u, err := repo.GetByID(userID)
		if err != nil || !u.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

func extractUserID(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})
		return "", false
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	userID, err := utils.ExtractIDFromToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return "", false
	}
	return userID, true
}
