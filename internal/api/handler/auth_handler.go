package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AshuKumar2005/CityAcces/internal/api/metrics"
	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Register creates a citizen account.
//
// @Summary      Register a citizen account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  domain.Profile
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.sessions.SignUp(c.Request().Context(), ports.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "failure").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	return c.JSON(http.StatusCreated, profile)
}

// Login authenticates a user and returns a session token and the view to show.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.sessions.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		View:      domain.Route(false, &res.Identity, res.Profile),
		Identity:  &identityPayload{ID: res.Identity.ID, Email: res.Identity.Email},
		Profile:   res.Profile,
	})
}

// Logout revokes the caller's session token.
//
// @Summary      Sign out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.sessions.SignOut(c.Request().Context(), sess); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("logout", "failure").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("logout", "success").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Me returns the caller's identity and profile.
//
// @Summary      Current user
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionPayload(sess))
}
