package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/auth"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/domain"
)

// GetHistory returns the calling user's chat history.
// GET /api/history
func (h *Handler) GetHistory(c echo.Context) error {
	ctx := c.Request().Context()
	session := auth.SessionFrom(c)

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 50
	}
	before := c.QueryParam("before")

	messages, err := h.store.GetMessages(ctx, session.UserID, limit+1, before)
	if err != nil {
		h.log.WithError(err).Error("failed to get chat history")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get history"})
	}

	hasMore := len(messages) > limit
	if hasMore {
		messages = messages[:limit]
	}
	if messages == nil {
		messages = []domain.ChatMessage{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": messages,
		"has_more": hasMore,
	})
}

// HistoryAppendRequest is the body for appending a message to history.
type HistoryAppendRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AppendHistory stores one chat message for the calling user. The UI uses
// this for messages it composed locally, e.g. after a degraded reply.
// POST /api/history
func (h *Handler) AppendHistory(c echo.Context) error {
	ctx := c.Request().Context()
	session := auth.SessionFrom(c)

	var req HistoryAppendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Role != "user" && req.Role != "assistant" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "role must be user or assistant"})
	}
	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "content is required"})
	}

	msg := &domain.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    session.UserID,
		Role:      req.Role,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.CreateMessage(ctx, msg); err != nil {
		h.log.WithError(err).Error("failed to persist chat message")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save message"})
	}

	return c.JSON(http.StatusOK, msg)
}
