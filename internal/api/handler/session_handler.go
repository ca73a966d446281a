package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AshuKumar2005/CityAcces/internal/api/metrics"
	"github.com/AshuKumar2005/CityAcces/internal/api/middleware"
)

// SessionHandler serves the root router decision.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Current reports which top-level view the client should render. A missing,
// invalid or revoked token routes to the login view; this endpoint never fails
// on auth grounds.
//
// @Summary      Route the current session
// @Tags         session
// @Produce      json
// @Param        Authorization  header    string  false  "Bearer token"
// @Success      200            {object}  sessionResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	sess, _ := middleware.SessionFrom(c)
	resp := sessionPayload(sess)
	metrics.SessionViewsTotal.WithLabelValues(string(resp.View)).Inc()
	return c.JSON(http.StatusOK, resp)
}
