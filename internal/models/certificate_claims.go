package models

import "github.com/golang-jwt/jwt/v5"

// CertificateClaims are embedded in the verification token printed on each
// certificate. ID (jti) is the certificate folio.
type CertificateClaims struct {
	jwt.RegisteredClaims
	Cuenta string `json:"cuenta"`
	Status string `json:"status"`
	Adeudo string `json:"adeudo"`
}

// Folio returns the certificate folio.
func (c *CertificateClaims) Folio() string {
	return c.ID
}
