package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

// AdminChecker looks up the stored role of a user.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// AdminOnly must be used AFTER AuthMiddleWare. The role is read from the
// store so a demoted account loses access before its token expires.
func AdminOnly(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		isAdmin, err := checker.IsAdmin(c.Request.Context(), userID.(string))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify role"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set(ContextUserRole, entity.UserRoleAdmin)
		c.Next()
	}
}
