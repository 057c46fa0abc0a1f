package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume/internal/models/db_models"
	"resume/pkg/utils"
)

const ActorKey = "actor"

// Authenticator resolves a session token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*db_models.User, error)
}

// ActorMiddleware resolves the current actor from the session cookie or a
// Bearer header. Missing, invalid or expired tokens leave the request
// anonymous; they never fail it.
func ActorMiddleware(auth Authenticator, cookieName string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token, _ = c.Cookie(cookieName)
		}
		if token != "" {
			user, err := auth.Authenticate(c.Request.Context(), token)
			switch {
			case err == nil:
				c.Set(ActorKey, user)
			case errors.Is(err, utils.ErrInvalidCredentials):
				log.Debug("ignoring invalid session token", zap.String("trace_id", c.GetString("trace_id")))
			default:
				log.Warn("session lookup failed", zap.String("trace_id", c.GetString("trace_id")), zap.Error(err))
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// CurrentActor returns the signed-in user, or nil for anonymous requests.
func CurrentActor(c *gin.Context) *db_models.User {
	v, ok := c.Get(ActorKey)
	if !ok {
		return nil
	}
	user, _ := v.(*db_models.User)
	return user
}

// RequireActor sends anonymous visitors to the login page.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentActor(c).IsAuthenticated() {
			redirectToLogin(c)
			return
		}
		c.Next()
	}
}

// RequireStaff rejects requests whose actor is not a staff member. Anonymous
// visitors are sent to the login page.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := CurrentActor(c)
		if !actor.IsAuthenticated() {
			redirectToLogin(c)
			return
		}
		if !actor.IsStaff {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/auth/login?next="+url.QueryEscape(c.Request.URL.Path))
	c.Abort()
}
