package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nisargamalap/gridle/pkg/apierrors"
	"github.com/nisargamalap/gridle/pkg/session"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "user_role"
)

// RequireAuth validates the Bearer token and stores the caller identity in the
// request context. Requests without a valid token are rejected with 401.
func RequireAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
			return
		}

		claims, err := sessions.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang))
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin gates a route group on the session role. It must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != "admin" {
			lang := GetLang(c)
			c.AbortWithStatusJSON(http.StatusForbidden, apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, lang))
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	if v, exists := c.Get(ctxUserID); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func GetRole(c *gin.Context) string {
	if v, exists := c.Get(ctxRole); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
