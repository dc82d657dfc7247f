package handlers

import (
	"net/http"

	"predial-consulta/internal/dto"
	"predial-consulta/internal/errors"
	"predial-consulta/internal/services"

	"github.com/labstack/echo/v4"
)

// ConsultaHandler serves the JSON lookup API
type ConsultaHandler struct {
	lookupService    services.LookupServiceInterface
	metricsCollector services.MetricsRecorderInterface
}

// NewConsultaHandler creates a new JSON lookup handler
func NewConsultaHandler(lookupService services.LookupServiceInterface, metricsCollector services.MetricsRecorderInterface) *ConsultaHandler {
	return &ConsultaHandler{
		lookupService:    lookupService,
		metricsCollector: metricsCollector,
	}
}

// Consulta looks up an account by key
// @Summary Look up a property tax account
// @Tags Consulta
// @Produce json
// @Param cuenta query string true "Account key (alias: q)"
// @Success 200 {object} dto.ConsultaResponse "found true with data, or found false with the normalized key"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Missing cuenta parameter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/consulta [get]
func (h *ConsultaHandler) Consulta(c echo.Context) error {
	var query dto.ConsultaQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationGeneral)
	}

	result, err := h.lookupService.Lookup(c.Request().Context(), query.Raw())
	if err != nil {
		return SendSystemError(c, err)
	}
	recordLookup(h.metricsCollector, ChannelAPI, result.Outcome)

	switch result.Outcome {
	case services.OutcomeNoQuery:
		return SendError(c, errors.ValidationRequiredField)
	case services.OutcomeNotFound:
		return c.JSON(http.StatusOK, dto.NewConsultaNotFound(result.Key))
	default:
		return c.JSON(http.StatusOK, dto.NewConsultaFound(result.Account))
	}
}
