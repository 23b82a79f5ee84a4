package api

import (
	"context"
	"io"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/auth"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/nimbus"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/policy"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/tests/helpers"
)

// staticResolver is a session test double. A nil session means the caller is
// unauthenticated.
type staticResolver struct {
	session *auth.Session
}

func (r staticResolver) Resolve(c echo.Context) (*auth.Session, error) {
	if r.session == nil {
		return nil, auth.ErrNoSession
	}
	return r.session, nil
}

func testSession() *auth.Session {
	return &auth.Session{UserID: "u1", Email: "u1@example.com"}
}

func newTestHandler(t *testing.T, backendURL string) *Handler {
	t.Helper()

	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewHandler(nimbus.NewClient(backendURL, "test-token"), helpers.NewTestSQLiteStore(t), engine, log)
}

// newTestServer wires the handler behind the session gate the way main does.
func newTestServer(t *testing.T, backendURL string, session *auth.Session) (*echo.Echo, *Handler) {
	t.Helper()

	e := echo.New()
	h := newTestHandler(t, backendURL)
	h.RegisterRoutes(e, auth.Middleware(staticResolver{session: session}))
	return e, h
}
