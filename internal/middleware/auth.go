package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/esneiderbravo/crehana-tasks/internal/util"
)

// CurrentUserKey is the context key the verified claims are stored under.
const CurrentUserKey = "currentUser"

// Auth verifies the bearer token and puts the claims into the request
// context. Verification is stateless: signature plus expiry, no lookup.
// Every failure is a 401 carrying the WWW-Authenticate: Bearer challenge.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			c.Header("WWW-Authenticate", "Bearer")
			util.Detail(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			util.Detail(c, http.StatusUnauthorized, "Token is invalid or expired")
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, claims)
		c.Next()
	}
}

// CurrentUser returns the verified claims set by Auth, or nil when the
// request did not pass through it.
func CurrentUser(c *gin.Context) *util.Claims {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*util.Claims)
	if !ok {
		return nil
	}
	return claims
}
