package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/user"
)

const (
	// SessionCookie carries the token for browser clients; API clients
	// may send it as a bearer token instead.
	SessionCookie  = "session"
	contextUserKey = "current_user"
)

// TokenParser validates a session token and yields the caller it names.
// The auth usecase implements it.
type TokenParser interface {
	ParseToken(token string) (*user.CurrentUser, error)
}

// AuthRequired resolves the current user from the session cookie or the
// Authorization header and stores it in the request context. Requests
// without a valid token never reach the handler.
func AuthRequired(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFrom(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			cu, err := parser.ParseToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired session"})
			}
			c.Set(contextUserKey, *cu)
			return next(c)
		}
	}
}

// StaffRequired composes on AuthRequired: the caller must already be
// resolved and must be staff.
func StaffRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cu, ok := CurrentUserFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			if !cu.IsStaff {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access only"})
			}
			return next(c)
		}
	}
}

// CurrentUserFrom returns the authenticated caller stored by AuthRequired.
func CurrentUserFrom(c echo.Context) (user.CurrentUser, bool) {
	cu, ok := c.Get(contextUserKey).(user.CurrentUser)
	return cu, ok
}

// SetCurrentUser injects a caller directly; tests use it to skip the
// token round-trip.
func SetCurrentUser(c echo.Context, cu user.CurrentUser) {
	c.Set(contextUserKey, cu)
}

func tokenFrom(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if token := strings.TrimPrefix(auth, "Bearer "); token != auth {
		return strings.TrimSpace(token)
	}
	return ""
}
