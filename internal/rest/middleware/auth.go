package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/food-reels/domain"
)

const (
	TokenCookie  = "token"
	principalKey = "principal"
)

// TokenFromRequest reads the session token from the cookie, then the Authorization header.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(TokenCookie); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// Authenticate resolves the request token into a principal of kind and stores it on the context.
func Authenticate(auth domain.AuthUsecase, kind domain.PrincipalKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := auth.Resolve(c.Request.Context(), kind, TokenFromRequest(c))
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "please login first"})
				return
			}
			logrus.Errorf("failed to resolve principal: %v", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": domain.ErrStorage.Error()})
			return
		}

		SetPrincipal(c, p)
		c.Next()
	}
}

func SetPrincipal(c *gin.Context, p domain.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal stored by Authenticate.
func PrincipalFrom(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok && !p.IsZero()
}
