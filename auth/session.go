// Package auth resolves the calling user's session and gates routes on it.
// The identity provider itself is external; this package only verifies the
// session token it issues.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionCookie is the cookie the UI stores its session token in.
const SessionCookie = "nimbus_session"

// Session identifies an authenticated caller.
type Session struct {
	UserID string
	Email  string
}

// Resolver resolves the current session from an inbound request. It is an
// injected capability so tests can substitute a double.
type Resolver interface {
	Resolve(c echo.Context) (*Session, error)
}

// ErrNoSession is returned when a request carries no valid session.
var ErrNoSession = errors.New("no valid session")

// Claims are the session token claims. The user id is the subject.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTResolver verifies HMAC-signed session tokens.
type JWTResolver struct {
	secret []byte
}

// NewJWTResolver creates a resolver verifying tokens against the given secret.
func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret)}
}

// Resolve reads the session token from the Authorization header or the
// session cookie and verifies it. A missing or invalid token yields
// ErrNoSession.
func (r *JWTResolver) Resolve(c echo.Context) (*Session, error) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		if cookie, err := c.Cookie(SessionCookie); err == nil {
			tokenString = cookie.Value
		}
	}
	if tokenString == "" {
		return nil, ErrNoSession
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, ErrNoSession
	}

	return &Session{UserID: claims.Subject, Email: claims.Email}, nil
}

// SignSession mints a session token for the given user. Used by tests and
// local tooling; in production tokens come from the identity provider.
func SignSession(secret, userID, email string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
