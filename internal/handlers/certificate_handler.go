package handlers

import (
	stderrors "errors"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"time"

	"predial-consulta/internal/dto"
	"predial-consulta/internal/errors"
	"predial-consulta/internal/middleware"
	"predial-consulta/internal/services"

	"github.com/labstack/echo/v4"
)

// CertificateHandler serves certificate downloads and their verification
type CertificateHandler struct {
	lookupService      services.LookupServiceInterface
	certificateService services.CertificateServiceInterface
	metricsCollector   services.MetricsRecorderInterface
	now                func() time.Time
}

// NewCertificateHandler creates a new certificate handler
func NewCertificateHandler(
	lookupService services.LookupServiceInterface,
	certificateService services.CertificateServiceInterface,
	metricsCollector services.MetricsRecorderInterface,
) *CertificateHandler {
	return &CertificateHandler{
		lookupService:      lookupService,
		certificateService: certificateService,
		metricsCollector:   metricsCollector,
		now:                time.Now,
	}
}

// Download renders the PDF certificate of an account. Unknown accounts get a
// plain text 404 and no document is generated.
// @Produce application/pdf
// @Param cuenta path string true "Account key"
// @Success 200 {file} binary
// @Failure 404 {string} string "Cuenta no encontrada"
// @Router /descargar/{cuenta} [get]
func (h *CertificateHandler) Download(c echo.Context) error {
	raw := c.Param("cuenta")
	// Echo routes on RawPath when the request has one, leaving the param escaped
	if c.Request().URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(raw); err == nil {
			raw = unescaped
		}
	}

	result, err := h.lookupService.Lookup(c.Request().Context(), raw)
	if err != nil {
		return SendSystemError(c, err)
	}
	recordLookup(h.metricsCollector, ChannelCertificate, result.Outcome)

	if !result.Found() {
		status := errors.GetHTTPStatus(errors.AccountNotFound)
		middleware.RecordAPIError(string(errors.AccountNotFound), c.Path(), status)
		return c.String(status, errors.GetErrorMessage(errors.AccountNotFound))
	}

	pdf, err := h.certificateService.Render(result.Account, h.now())
	if err != nil {
		slog.Error("certificate render failed",
			"trace_id", middleware.GetTraceID(c),
			"cuenta", result.Account.Cuenta,
			"error", err,
		)
		return SendError(c, errors.CertificateGenerationFailed)
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{
		"filename": "certificado_" + result.Account.Cuenta + ".pdf",
	})
	c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// Verify checks a certificate token and reports the account's current status
// next to the certified one.
// @Produce json
// @Param token path string true "Verification token printed on the certificate"
// @Success 200 {object} dto.VerificacionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Not a JWT"
// @Failure 400 {object} errors.ErrorResponse "CERTIFICATE_001 - Invalid token"
// @Failure 400 {object} errors.ErrorResponse "CERTIFICATE_002 - Expired token"
// @Router /verificar/{token} [get]
func (h *CertificateHandler) Verify(c echo.Context) error {
	path := dto.VerifyPath{Token: c.Param("token")}
	if err := c.Validate(path); err != nil {
		return err
	}

	claims, err := h.certificateService.VerifyToken(path.Token)
	if err != nil {
		if stderrors.Is(err, services.ErrExpiredToken) {
			return SendError(c, errors.CertificateExpired)
		}
		return SendError(c, errors.CertificateInvalidToken)
	}

	result, err := h.lookupService.Lookup(c.Request().Context(), claims.Cuenta)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewVerificacion(claims, result.Account))
}
