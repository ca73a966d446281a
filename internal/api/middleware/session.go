package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
)

// SessionKey is the echo.Context key holding the *domain.Session.
const SessionKey = "session"

// SessionOpener turns a bearer token into a request-scoped session.
type SessionOpener interface {
	Open(ctx context.Context, token string) (*domain.Session, error)
}

// RequireSession rejects requests without a valid session and a readable
// profile. The session is closed when the handler returns, cancelling any
// lookups still running under it.
func RequireSession(opener SessionOpener) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			sess, err := opener.Open(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}
			defer sess.Close()

			if sess.Profile == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "profile unavailable")
			}

			bind(c, sess)
			return next(c)
		}
	}
}

// OptionalSession opens a session when a valid token is present and otherwise
// lets the request through anonymously. Rejected tokens are logged at debug.
func OptionalSession(opener SessionOpener, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request())
			if !ok {
				return next(c)
			}

			sess, err := opener.Open(c.Request().Context(), token)
			if err != nil {
				log.Debug().Err(err).Str("path", c.Path()).Msg("ignoring unusable session token")
				return next(c)
			}
			defer sess.Close()

			bind(c, sess)
			return next(c)
		}
	}
}

// SessionFrom returns the session bound by RequireSession or OptionalSession.
func SessionFrom(c echo.Context) (*domain.Session, bool) {
	sess, ok := c.Get(SessionKey).(*domain.Session)
	return sess, ok && sess != nil
}

func bind(c echo.Context, sess *domain.Session) {
	c.Set(SessionKey, sess)
	c.SetRequest(c.Request().WithContext(sess.Context()))
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
