package handlers

import (
	"fmt"

	"predial-consulta/internal/middleware"
	"predial-consulta/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps are the collaborators wired into the HTTP surface
type RouterDeps struct {
	DB                 HealthChecker
	LookupService      services.LookupServiceInterface
	CertificateService services.CertificateServiceInterface
	Metrics            services.MetricsRecorderInterface
	RateLimiter        *middleware.RateLimiter
	// Gatherer backs /metrics; prometheus.DefaultGatherer when nil.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the echo instance with middleware and every route
func NewRouter(deps RouterDeps) (*echo.Echo, error) {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}
	if deps.LookupService == nil || deps.CertificateService == nil || deps.DB == nil {
		return nil, fmt.Errorf("router requires a store, a lookup service and a certificate service")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.SecurityHeaders())

	pageHandler := NewPageHandler(deps.LookupService, deps.Metrics)
	consultaHandler := NewConsultaHandler(deps.LookupService, deps.Metrics)
	certificateHandler := NewCertificateHandler(deps.LookupService, deps.CertificateService, deps.Metrics)
	healthHandler := NewHealthCheckHandler(deps.DB)

	limited := []echo.MiddlewareFunc{}
	if deps.RateLimiter != nil {
		limited = append(limited, deps.RateLimiter.Middleware())
	}

	e.GET("/", pageHandler.Index, limited...)
	e.GET("/api/consulta", consultaHandler.Consulta, limited...)
	e.GET("/descargar/:cuenta", certificateHandler.Download, limited...)
	e.GET("/verificar/:token", certificateHandler.Verify, limited...)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	return e, nil
}
