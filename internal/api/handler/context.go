package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AshuKumar2005/CityAcces/internal/api/middleware"
	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
)

// currentSession returns the session bound by the session middleware. A
// missing session or profile means the route was wired without it.
func currentSession(c echo.Context) (*domain.Session, error) {
	sess, ok := middleware.SessionFrom(c)
	if !ok || sess.Profile == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}

// confirmed reads the ?confirm= flag that stands in for the delete prompt.
func confirmed(c echo.Context) bool {
	ok, err := strconv.ParseBool(c.QueryParam("confirm"))
	return err == nil && ok
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
