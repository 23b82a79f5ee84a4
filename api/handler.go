// Package api provides the HTTP handlers of the gateway. Every route checks
// the caller's session, forwards one request to the Nimbus backend and
// reshapes the response for the UI.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/nimbus"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/policy"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/store"
)

// Handler handles HTTP requests.
type Handler struct {
	nimbus *nimbus.Client
	store  store.Store
	policy *policy.Engine
	log    *logrus.Logger
}

// NewHandler creates a new handler.
func NewHandler(client *nimbus.Client, st store.Store, engine *policy.Engine, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{
		nimbus: client,
		store:  st,
		policy: engine,
		log:    log,
	}
}

// RegisterRoutes registers routes with the echo server. Everything under
// /api sits behind the session gate; /health does not.
func (h *Handler) RegisterRoutes(e *echo.Echo, gate echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	g := e.Group("/api", gate)
	g.GET("/agents/presence", h.Presence)
	g.POST("/chat", h.Chat)
	g.GET("/observe/:agent/status", h.AgentStatus)
	g.GET("/observe/:agent/stream", h.LogStream)
	g.GET("/observe/:agent/logs", h.Logs)
	g.GET("/observe/costs", h.Costs)
	g.GET("/observe/dashboard", h.Dashboard)
	g.POST("/voice/speak", h.Speak)
	g.POST("/voice/transcribe", h.Transcribe)
	g.GET("/history", h.GetHistory)
	g.POST("/history", h.AppendHistory)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
