package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/domain"
)

// AgentStatus forwards one agent's status. Soft default: offline.
// GET /api/observe/:agent/status
func (h *Handler) AgentStatus(c echo.Context) error {
	agent := c.Param("agent")
	return h.passthroughJSON(c, fmt.Sprintf("/observe/%s/status", agent), map[string]string{"status": "offline"})
}

// Logs forwards an agent's batched log lines. Soft default: no logs.
// GET /api/observe/:agent/logs
func (h *Handler) Logs(c echo.Context) error {
	agent := c.Param("agent")
	return h.passthroughJSON(c, fmt.Sprintf("/observe/%s/logs", agent), map[string][]string{"logs": {}})
}

// Costs forwards the cost summary. Soft default: zero spend.
// GET /api/observe/costs
func (h *Handler) Costs(c echo.Context) error {
	return h.passthroughJSON(c, "/observe/costs", domain.CostSummary{Total: 0, ByAgent: map[string]float64{}})
}

// Dashboard reshapes the backend dashboard into UI-facing agent records.
// Like the other read routes it never surfaces a hard failure; the UI gets an
// empty agent list with an error string instead.
// GET /api/observe/dashboard
func (h *Handler) Dashboard(c echo.Context) error {
	soft := func(msg string) error {
		return c.JSON(http.StatusOK, domain.DashboardView{Agents: []domain.AgentInfo{}, Error: msg})
	}

	resp, err := h.nimbus.Get(c.Request().Context(), "/observe/dashboard")
	if err != nil {
		h.log.WithError(err).Warn("nimbus unreachable, serving empty dashboard")
		return soft("Failed to reach Nimbus")
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return soft("Dashboard unavailable")
	}

	var raw domain.DashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		h.log.WithError(err).Warn("failed to decode dashboard response")
		return soft("Failed to reach Nimbus")
	}

	return c.JSON(http.StatusOK, domain.ReshapeDashboard(raw))
}

// LogStream forwards an agent's live log stream byte for byte. When the
// backend stream is unavailable the route emits a single synthetic notice
// event and closes cleanly; the caller sees the same content type, cache
// headers and close semantics in both modes.
// GET /api/observe/:agent/stream
func (h *Handler) LogStream(c echo.Context) error {
	agent := c.Param("agent")

	resp, err := h.nimbus.Get(c.Request().Context(), fmt.Sprintf("/observe/%s/logs/stream", agent))
	if err != nil || !isSuccess(resp.StatusCode) {
		if resp != nil {
			resp.Body.Close()
		}
		if err != nil {
			h.log.WithError(err).Warn("log stream unreachable, sending notice")
		}
		writeSSEHeaders(c)
		fmt.Fprint(c.Response(), "data: No log stream available\n\n")
		c.Response().Flush()
		return nil
	}
	defer resp.Body.Close()

	writeSSEHeaders(c)

	// Forward bytes as they arrive. A write error means the UI went away; a
	// read error means the backend closed. Either way the stream just ends.
	buf := make([]byte, 4096)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := c.Response().Write(buf[:n]); writeErr != nil {
				return nil
			}
			c.Response().Flush()
		}
		if readErr != nil {
			return nil
		}
	}
}

func writeSSEHeaders(c echo.Context) {
	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)
}
