package dto

import (
	"encoding/json"
	"strings"
	"time"

	"predial-consulta/internal/models"
)

// ConsultaQuery is the query string accepted by the lookup endpoints.
// Q is the name used by the search form.
type ConsultaQuery struct {
	Cuenta string `query:"cuenta"`
	Q      string `query:"q"`
}

// Raw returns the account key as typed, preferring cuenta over q.
func (q ConsultaQuery) Raw() string {
	if strings.TrimSpace(q.Cuenta) != "" {
		return q.Cuenta
	}
	return q.Q
}

// VerifyPath carries a certificate verification token.
type VerifyPath struct {
	Token string `param:"token" validate:"required,jwt"`
}

// ConsultaData is the account payload of a successful lookup
type ConsultaData struct {
	Cuenta        string      `json:"cuenta"`
	Propietario   string      `json:"propietario"`
	Direccion     string      `json:"direccion,omitempty"`
	Adeudo        json.Number `json:"adeudo"`
	FechaVigencia string      `json:"fecha_vigencia"`
	GDriveID      string      `json:"gdrive_id"`
	Status        string      `json:"status"`
	GDriveURL     string      `json:"gdrive_url,omitempty"`
}

// ConsultaResponse is the body of GET /api/consulta. Cuenta echoes the
// normalized key when nothing matched.
type ConsultaResponse struct {
	OK     bool          `json:"ok"`
	Found  bool          `json:"found"`
	Cuenta string        `json:"cuenta,omitempty"`
	Data   *ConsultaData `json:"data,omitempty"`
}

// NewConsultaFound builds the response for a matched account
func NewConsultaFound(view *models.AccountView) *ConsultaResponse {
	return &ConsultaResponse{
		OK:    true,
		Found: true,
		Data: &ConsultaData{
			Cuenta:        view.Cuenta,
			Propietario:   view.Propietario,
			Direccion:     view.Direccion,
			Adeudo:        json.Number(view.Adeudo.String()),
			FechaVigencia: view.FechaVigencia,
			GDriveID:      view.GDriveID,
			Status:        view.Status,
			GDriveURL:     view.DownloadURL,
		},
	}
}

// NewConsultaNotFound builds the response for a key with no account
func NewConsultaNotFound(key string) *ConsultaResponse {
	return &ConsultaResponse{OK: true, Found: false, Cuenta: key}
}

// VerificacionResponse is the body of GET /verificar/:token. StatusActual is
// the status the account has today, empty when it no longer exists.
type VerificacionResponse struct {
	OK                bool        `json:"ok"`
	Valid             bool        `json:"valid"`
	Cuenta            string      `json:"cuenta"`
	StatusCertificado string      `json:"status_certificado"`
	StatusActual      string      `json:"status_actual,omitempty"`
	AdeudoCertificado json.Number `json:"adeudo_certificado"`
	Emitido           string      `json:"emitido"`
	Expira            string      `json:"expira"`
	Folio             string      `json:"folio"`
}

// NewVerificacion builds a verification response from token claims and the
// current lookup result, which may be nil.
func NewVerificacion(claims *models.CertificateClaims, current *models.AccountView) *VerificacionResponse {
	resp := &VerificacionResponse{
		OK:                true,
		Valid:             true,
		Cuenta:            claims.Cuenta,
		StatusCertificado: claims.Status,
		AdeudoCertificado: json.Number(claims.Adeudo),
		Folio:             claims.Folio(),
	}
	if claims.IssuedAt != nil {
		resp.Emitido = claims.IssuedAt.UTC().Format(time.RFC3339)
	}
	if claims.ExpiresAt != nil {
		resp.Expira = claims.ExpiresAt.UTC().Format(time.RFC3339)
	}
	if current != nil {
		resp.StatusActual = current.Status
	}
	return resp
}
