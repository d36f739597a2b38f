package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/L4U04/salvaluno/pkg/response"
)

// MustGetUserID extracts user_id from the Gin context. When the auth
// middleware did not inject one it writes a 401 and returns ok=false;
// callers should return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	return s, true
}
