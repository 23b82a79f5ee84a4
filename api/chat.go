package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/auth"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/domain"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/policy"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/transcript"
)

// orchestratorAgent is the agent every chat message is dispatched to.
const orchestratorAgent = "orchestrator"

// ChatRequest is the body of a chat message from the UI.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the extracted reply back to the UI.
type ChatResponse struct {
	Result string  `json:"result"`
	Agent  string  `json:"agent"`
	Status string  `json:"status"`
	Cost   float64 `json:"cost"`
}

// Chat dispatches a user message to the orchestrator and returns the
// extracted reply. Unlike the read routes, dispatch failures are real: the
// backend's status and error detail are propagated so the user knows the
// action did not complete.
// POST /api/chat
func (h *Handler) Chat(c echo.Context) error {
	ctx := c.Request().Context()
	session := auth.SessionFrom(c)

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}

	decision, err := h.policy.Evaluate(ctx, policy.Input{
		UserID: session.UserID,
		Agent:  orchestratorAgent,
		Task:   req.Message,
	})
	if err != nil {
		h.log.WithError(err).Error("dispatch policy evaluation failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "policy evaluation failed"})
	}
	if decision == "block" {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "task blocked by policy"})
	}

	h.saveMessage(c, session.UserID, "user", req.Message)

	body, err := json.Marshal(domain.DispatchRequest{
		Agent:     orchestratorAgent,
		Task:      req.Message,
		AsyncMode: false,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to encode dispatch"})
	}

	resp, err := h.nimbus.PostJSON(ctx, "/agents/dispatch", bytes.NewReader(body))
	if err != nil {
		h.log.WithError(err).Error("nimbus dispatch unreachable")
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error":  "Nimbus dispatch failed",
			"detail": err.Error(),
		})
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		detail, _ := io.ReadAll(resp.Body)
		return c.JSON(resp.StatusCode, map[string]string{
			"error":  "Nimbus dispatch failed",
			"detail": string(detail),
		})
	}

	var result domain.DispatchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		h.log.WithError(err).Error("failed to decode dispatch result")
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error":  "Nimbus dispatch failed",
			"detail": err.Error(),
		})
	}

	reply := transcript.ExtractReply(result.Output)
	h.saveMessage(c, session.UserID, "assistant", reply)

	return c.JSON(http.StatusOK, ChatResponse{
		Result: reply,
		Agent:  result.Agent,
		Status: result.Status,
		Cost:   result.Cost,
	})
}

// Presence reports whether the backend is reachable. The route itself always
// succeeds; an unreachable backend reads as offline.
// GET /api/agents/presence
func (h *Handler) Presence(c echo.Context) error {
	return h.passthroughJSON(c, "/agents/presence", domain.PresenceData{Status: "offline"})
}
