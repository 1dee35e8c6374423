package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/taskbox/taskbox/internal/token"
)

const claimsKey = "tb.claims"

// SetClaims stores the authenticated identity on the request context.
func SetClaims(c *gin.Context, claims token.Claims) {
	c.Set(claimsKey, claims)
}

// ClaimsFrom fetches the authenticated identity from the request context.
func ClaimsFrom(c *gin.Context) (token.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return token.Claims{}, false
	}
	claims, ok := v.(token.Claims)
	return claims, ok
}
