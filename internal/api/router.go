package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/AshuKumar2005/CityAcces/docs"
	"github.com/AshuKumar2005/CityAcces/internal/api/handler"
	"github.com/AshuKumar2005/CityAcces/internal/api/middleware"
	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Sessions      ports.SessionService
	Citizens      ports.CitizenService
	Complaints    ports.ComplaintTriageService
	Amenities     ports.AmenityService
	Announcements ports.AnnouncementService
	Stats         ports.StatsService
}

// Options tunes the transport layer.
type Options struct {
	// LoginRateLimit is attempts per second per client IP on /auth/login.
	// Zero disables the limiter.
	LoginRateLimit float64
	// Checks are the readiness probes reported by /health/ready.
	Checks map[string]handler.PingFunc
	// Registry overrides the default Prometheus registry for HTTP metrics.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))

	promMiddleware := echoprometheus.MiddlewareConfig{Subsystem: "portal"}
	promHandler := echoprometheus.HandlerConfig{}
	if opts.Registry != nil {
		promMiddleware.Registerer = opts.Registry
		promHandler.Gatherer = opts.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promMiddleware))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Sessions)
	sessionHandler := handler.NewSessionHandler()
	citizenHandler := handler.NewCitizenHandler(svc.Citizens)
	complaintAdmin := handler.NewComplaintAdminHandler(svc.Complaints)
	amenityAdmin := handler.NewAmenityAdminHandler(svc.Amenities)
	announcementAdmin := handler.NewAnnouncementAdminHandler(svc.Announcements)
	statsHandler := handler.NewStatsHandler(svc.Stats)

	requireSession := middleware.RequireSession(svc.Sessions)
	citizenOnly := middleware.RBAC(domain.RoleCitizen)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Probes and tooling (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(opts.Checks)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(promHandler))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	loginMiddleware := []echo.MiddlewareFunc{}
	if opts.LoginRateLimit > 0 {
		store := echomiddleware.NewRateLimiterMemoryStore(rate.Limit(opts.LoginRateLimit))
		loginMiddleware = append(loginMiddleware, echomiddleware.RateLimiter(store))
	}
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, loginMiddleware...)
	e.POST("/auth/logout", authHandler.Logout, requireSession)

	// --- Portal ---
	v1 := e.Group("/v1")
	v1.GET("/session", sessionHandler.Current, middleware.OptionalSession(svc.Sessions, log.With().Str("component", "session").Logger()))
	v1.GET("/me", authHandler.Me, requireSession)
	v1.GET("/amenities", citizenHandler.ListAmenities, requireSession)
	v1.GET("/announcements", citizenHandler.ListAnnouncements, requireSession)
	v1.POST("/complaints", citizenHandler.SubmitComplaint, requireSession, citizenOnly)
	v1.GET("/complaints", citizenHandler.ListComplaints, requireSession, citizenOnly)

	admin := v1.Group("/admin", requireSession, adminOnly)
	admin.GET("/stats", statsHandler.Dashboard)
	admin.GET("/complaints", complaintAdmin.List)
	admin.PATCH("/complaints/:id", complaintAdmin.Triage)
	admin.GET("/amenities", amenityAdmin.List)
	admin.POST("/amenities", amenityAdmin.Create)
	admin.PUT("/amenities/:id", amenityAdmin.Update)
	admin.DELETE("/amenities/:id", amenityAdmin.Delete)
	admin.GET("/announcements", announcementAdmin.List)
	admin.POST("/announcements", announcementAdmin.Create)
	admin.PUT("/announcements/:id", announcementAdmin.Update)
	admin.DELETE("/announcements/:id", announcementAdmin.Delete)
	admin.POST("/announcements/:id/toggle", announcementAdmin.Toggle)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
