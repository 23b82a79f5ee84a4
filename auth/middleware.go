package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// sessionKey is the echo context key the resolved session is stored under.
const sessionKey = "auth.session"

// Middleware gates routes on session presence. Requests without a valid
// session get a uniform 401 before any handler (and therefore any backend
// call) runs.
func Middleware(resolver Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := resolver.Resolve(c)
			if err != nil || session == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			c.Set(sessionKey, session)
			return next(c)
		}
	}
}

// SessionFrom returns the session stored by Middleware, or nil.
func SessionFrom(c echo.Context) *Session {
	if s, ok := c.Get(sessionKey).(*Session); ok {
		return s
	}
	return nil
}
