package services

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"predial-consulta/internal/config"
	"predial-consulta/internal/models"

	"github.com/go-pdf/fpdf"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token is expired")
	ErrEmptyToken    = errors.New("empty token")
	ErrNilAccount    = errors.New("account cannot be nil")
	ErrSigningKeyNil = errors.New("certificate signing key is not configured")
)

// currencyPrinter groups thousands with commas.
var currencyPrinter = message.NewPrinter(language.English)

const (
	certificateTitle    = "Certificado de Estado de Cuenta Predial"
	certificateDateTime = "2006-01-02 15:04"
)

// CertificateService renders PDF certificates and signs their verification tokens
type CertificateService struct {
	config.CertificateConfig
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewCertificateService creates a certificate service from certificate configuration
func NewCertificateService(
	certConfig *config.CertificateConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CertificateServiceInterface {
	return &CertificateService{
		CertificateConfig: *certConfig,
		metrics:           metrics,
		logger:            logger,
	}
}

// IssueToken signs a token describing the account as of issuedAt
func (cs *CertificateService) IssueToken(view *models.AccountView, issuedAt time.Time) (string, *models.CertificateClaims, error) {
	if view == nil {
		return "", nil, ErrNilAccount
	}
	if cs.PrivateKey() == nil {
		return "", nil, ErrSigningKeyNil
	}

	claims := &models.CertificateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cs.Issuer,
			Subject:   view.Cuenta,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(cs.TokenTTL)),
		},
		Cuenta: view.Cuenta,
		Status: view.Status,
		Adeudo: view.Adeudo.StringFixed(2),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(cs.PrivateKey())
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign certificate token: %w", err)
	}

	return signed, claims, nil
}

// VerifyToken validates a certificate token
func (cs *CertificateService) VerifyToken(tokenString string) (*models.CertificateClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.CertificateClaims{}, cs.keyFunc,
		jwt.WithIssuer(cs.Issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
	)
	if err != nil {
		cs.recordVerification("invalid")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*models.CertificateClaims)
	if !ok || !token.Valid || claims.Cuenta == "" || claims.ID == "" {
		cs.recordVerification("invalid")
		return nil, ErrInvalidToken
	}

	cs.recordVerification("valid")
	return claims, nil
}

func (cs *CertificateService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return cs.PublicKey(), nil
}

// Render draws a single page Letter certificate. Layout uses fixed coordinates.
func (cs *CertificateService) Render(view *models.AccountView, issuedAt time.Time) ([]byte, error) {
	start := time.Now()

	token, claims, err := cs.IssueToken(view, issuedAt)
	if err != nil {
		cs.recordRenderFailure()
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle(certificateTitle, true)
	pdf.SetAuthor(cs.Issuer, true)
	pdf.SetCreationDate(issuedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(20, 30, tr(certificateTitle))

	pdf.SetFont("Helvetica", "", 12)
	y := 50.0
	line := func(label, value string) {
		pdf.Text(20, y, tr(label+": "+value))
		y += 10
	}

	line("Cuenta predial", view.Cuenta)
	line("Propietario", view.Propietario)
	if view.Direccion != "" {
		line("Dirección", view.Direccion)
	}
	line("Adeudo", FormatCurrency(view.Adeudo))
	line("Fecha de vigencia", view.FechaVigencia)

	pdf.SetFont("Helvetica", "B", 12)
	line("Estatus", view.Status)

	pdf.SetFont("Helvetica", "", 10)
	y += 10
	line("Fecha de emisión", issuedAt.Format(certificateDateTime))
	line("Folio", claims.Folio())

	pdf.SetFont("Courier", "", 6)
	pdf.SetXY(20, y)
	pdf.MultiCell(176, 3, tr("Token de verificación: ")+token, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		cs.recordRenderFailure()
		cs.logger.Error("certificate render failed", "cuenta", view.Cuenta, "error", err)
		return nil, fmt.Errorf("failed to render certificate: %w", err)
	}

	if cs.metrics != nil {
		cs.metrics.IncrementCounter(MetricCertificateIssued, nil)
		cs.metrics.RecordProcessingTime(MetricCertificateRender, time.Since(start))
	}
	cs.logger.Info("certificate issued", "cuenta", view.Cuenta, "folio", claims.Folio(), "status", view.Status)

	return buf.Bytes(), nil
}

func (cs *CertificateService) recordVerification(result string) {
	if cs.metrics != nil {
		cs.metrics.IncrementCounter(MetricCertificateVerified, map[string]string{"result": result})
	}
}

func (cs *CertificateService) recordRenderFailure() {
	if cs.metrics != nil {
		cs.metrics.IncrementCounter(MetricCertificateRenderErr, nil)
	}
}

// FormatCurrency formats an amount as $1,234.56.
func FormatCurrency(amount decimal.Decimal) string {
	amount = amount.Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, currencyPrinter.Sprintf("%d", whole.IntPart()), cents)
}
