package api

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Speak forwards a speech synthesis request and returns the backend's binary
// audio with its declared content type. Synthesis is an action: failures
// carry the backend's real status so the UI knows nothing was produced.
// POST /api/voice/speak
func (h *Handler) Speak(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := h.nimbus.PostJSON(ctx, "/voice/speak", c.Request().Body)
	if err != nil {
		h.log.WithError(err).Error("nimbus speech synthesis unreachable")
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error":  "Speech synthesis failed",
			"detail": err.Error(),
		})
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return c.JSON(resp.StatusCode, map[string]string{"error": "Speech synthesis failed"})
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		h.log.WithError(err).Error("failed to read synthesized audio")
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Speech synthesis failed"})
	}

	contentType := resp.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	return c.Blob(http.StatusOK, contentType, audio)
}

// Transcribe forwards a multipart transcription request unmodified and
// passes the backend's JSON back. Failures propagate the backend status.
// POST /api/voice/transcribe
func (h *Handler) Transcribe(c echo.Context) error {
	ctx := c.Request().Context()

	header := http.Header{}
	header.Set(echo.HeaderContentType, c.Request().Header.Get(echo.HeaderContentType))

	resp, err := h.nimbus.Do(ctx, http.MethodPost, "/voice/transcribe", header, c.Request().Body)
	if err != nil {
		h.log.WithError(err).Error("nimbus transcription unreachable")
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error":  "Transcription failed",
			"detail": err.Error(),
		})
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return c.JSON(resp.StatusCode, map[string]string{"error": "Transcription failed"})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.log.WithError(err).Error("failed to read transcription response")
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Transcription failed"})
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
}
