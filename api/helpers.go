package api

import (
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/domain"
)

// passthroughJSON fetches a backend path and forwards its JSON body. Read
// routes never surface backend failure to the UI: on a network error, a
// non-success status or an unreadable body the soft default is returned with
// a 200 so polling stays free of error branches.
func (h *Handler) passthroughJSON(c echo.Context, path string, soft interface{}) error {
	resp, err := h.nimbus.Get(c.Request().Context(), path)
	if err != nil {
		h.log.WithError(err).Warn("nimbus unreachable, serving soft default")
		return c.JSON(http.StatusOK, soft)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return c.JSON(http.StatusOK, soft)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.log.WithError(err).Warn("failed to read nimbus response, serving soft default")
		return c.JSON(http.StatusOK, soft)
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// saveMessage persists one chat message for a user. Persistence is best
// effort: a failure is logged and never fails the chat request.
func (h *Handler) saveMessage(c echo.Context, userID, role, content string) {
	msg := &domain.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.CreateMessage(c.Request().Context(), msg); err != nil {
		h.log.WithError(err).Warn("failed to persist chat message")
	}
}
