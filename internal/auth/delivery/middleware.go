package delivery

import (
	"net/http"
	"strings"

	"virtualgrow-server/pkg/config"
	"virtualgrow-server/pkg/token"

	"github.com/gin-gonic/gin"
)

// AccessCookieName is the http-only cookie carrying the access token on
// cookie-transport deployments.
const AccessCookieName = "token"

// AuthMiddleware verifies the access token and attaches the principal to the
// gin context. It checks signature and expiry only; revocation awareness
// lives in the auth usecase, which re-reads the store on refresh. An absent
// token is 401, a present-but-invalid one is 403. The token source is fixed
// per deployment rather than probing header and cookie interchangeably.
func AuthMiddleware(tokens *token.Issuer, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := extractAccessToken(c, cfg)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: No token provided"})
			c.Abort()
			return
		}

		claims, err := tokens.VerifyAccess(raw)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized: Invalid token"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

func extractAccessToken(c *gin.Context, cfg *config.Config) (string, bool) {
	if cfg.TokenTransport == config.TransportCookie {
		raw, err := c.Cookie(AccessCookieName)
		if err != nil || raw == "" {
			return "", false
		}
		return raw, true
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
