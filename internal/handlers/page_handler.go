package handlers

import (
	"net/http"

	"predial-consulta/internal/dto"
	"predial-consulta/internal/errors"
	"predial-consulta/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	ChannelPage        = "page"
	ChannelAPI         = "api"
	ChannelCertificate = "certificate"
)

// PageHandler serves the HTML lookup page
type PageHandler struct {
	lookupService    services.LookupServiceInterface
	metricsCollector services.MetricsRecorderInterface
}

// NewPageHandler creates a new page handler
func NewPageHandler(lookupService services.LookupServiceInterface, metricsCollector services.MetricsRecorderInterface) *PageHandler {
	return &PageHandler{
		lookupService:    lookupService,
		metricsCollector: metricsCollector,
	}
}

type pageData struct {
	Query  string
	Result *services.LookupResult
}

// Index renders the search form and, when q is present, the lookup result.
// @Router / [get]
func (h *PageHandler) Index(c echo.Context) error {
	var query dto.ConsultaQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationGeneral)
	}

	result, err := h.lookupService.Lookup(c.Request().Context(), query.Raw())
	if err != nil {
		return SendSystemError(c, err)
	}
	recordLookup(h.metricsCollector, ChannelPage, result.Outcome)

	return c.Render(http.StatusOK, "index.html", pageData{
		Query:  query.Raw(),
		Result: result,
	})
}

func recordLookup(metrics services.MetricsRecorderInterface, channel string, outcome services.Outcome) {
	if metrics == nil {
		return
	}
	metrics.IncrementCounter(services.MetricLookup, map[string]string{
		"channel": channel,
		"outcome": string(outcome),
	})
}
