package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKey returns a Gin middleware gating admin endpoints behind a single
// shared secret. The key is read from the x-admin-key header, falling back
// to the key query parameter. Any mismatch, including an absent key, is
// rejected before the handler runs.
func AdminKey(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-admin-key")
		if key == "" {
			key = c.Query("key")
		}
		if key != secret {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "msg": "Unauthorized"})
			return
		}
		c.Next()
	}
}
