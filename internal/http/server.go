// Package http provides the HTTP server, router setup and request middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accessHTTP "github.com/allisson/hrvault/internal/access/http"
	"github.com/allisson/hrvault/internal/config"
	employeeHTTP "github.com/allisson/hrvault/internal/employee/http"
	"github.com/allisson/hrvault/internal/metrics"
	onboardingHTTP "github.com/allisson/hrvault/internal/onboarding/http"
)

// Server represents the main HTTP server.
type Server struct {
	db     *sql.DB
	logger *slog.Logger
	router *gin.Engine
	server *http.Server
}

// NewServer creates a new HTTP server. The router is wired separately via
// SetupRouter so tests can exercise handlers without the full dependency set.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter wires the middleware chain and the API routes.
//
// Middleware order matters: recovery first, then request IDs, logging,
// optional CORS and HTTP metrics. The /v1 group resolves the principal from
// the gateway headers; onboarding redemption stays outside it because the
// token itself is the credential there.
func (s *Server) SetupRouter(
	cfg *config.Config,
	employeeHandler *employeeHTTP.EmployeeHandler,
	onboardingHandler *onboardingHTTP.OnboardingHandler,
	metricsProvider *metrics.Provider,
) {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Anonymous: the one-time token is the credential.
	router.POST("/v1/onboarding/redeem", onboardingHandler.RedeemHandler)

	v1 := router.Group("/v1")
	v1.Use(accessHTTP.PrincipalMiddleware(s.logger))
	if cfg.RateLimitEnabled {
		v1.Use(accessHTTP.RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	v1.POST("/employees",
		accessHTTP.RequirePermission("employees.create", s.logger),
		employeeHandler.CreateHandler)
	v1.GET("/employees", employeeHandler.ListHandler)
	v1.GET("/employees/search", employeeHandler.SearchHandler)
	v1.GET("/employees/:employee_number", employeeHandler.GetHandler)
	v1.PATCH("/employees/:employee_number", employeeHandler.UpdateHandler)

	v1.POST("/onboarding/tokens",
		accessHTTP.RequirePermission("onboarding.issue", s.logger),
		onboardingHandler.IssueHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic, checking the
// database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
