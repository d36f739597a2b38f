package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/L4U04/salvaluno/pkg/jwt"
	"github.com/L4U04/salvaluno/pkg/redis"
	"github.com/L4U04/salvaluno/pkg/response"
)

// JWTAuth extracts and verifies the access token from
// Authorization: Bearer <token>, rejecting blacklisted tokens when
// redis is available. rdb may be nil; revocation checks are skipped.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "cabeçalho de autenticação ausente")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "cabeçalho de autenticação inválido")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token inválido ou expirado")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "tipo de token inválido")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 10002, "sessão encerrada, faça login novamente")
				c.Abort()
				return
			}
			// a redis error falls through; the token itself is valid
		}

		c.Set("user_id", claims.UserID)
		c.Set("campus_id", claims.CampusID)
		// raw token kept for logout blacklisting
		c.Set("access_token", parts[1])

		c.Next()
	}
}
