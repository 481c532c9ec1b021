package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jobboard/internal/auth"
	"github.com/yoockh/jobboard/internal/utils"
)

// ContextIdentity is the gin context key holding the resolved bearer identity
// (the caller's email).
const ContextIdentity = "identity"

type apiError struct {
	Code   utils.Code `json:"code"`
	Detail string     `json:"detail"`
}

func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
		Code:   utils.CodeUnauthorized,
		Detail: detail,
	})
}

// BearerAuth requires an "Authorization: Bearer <token>" header and stores
// the identity the token resolves to. It does not check that the identity
// belongs to a registered user; role-gated services do that.
func BearerAuth(tokens auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, raw, _ := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
		if !strings.EqualFold(scheme, "bearer") {
			unauthorized(c, "Not authenticated")
			return
		}

		// "Bearer" with no credential passes through as an empty identity;
		// email tokens accept it and role checks reject it.
		identity, err := tokens.Resolve(strings.TrimSpace(raw))
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}

		c.Set(ContextIdentity, identity)
		c.Next()
	}
}
