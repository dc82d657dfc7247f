package services

import (
	"context"
	"time"

	"predial-consulta/internal/models"
)

// LookupServiceInterface resolves raw account keys entered by users
type LookupServiceInterface interface {
	Lookup(ctx context.Context, raw string) (*LookupResult, error)
}

// CertificateServiceInterface renders certificates and issues the tokens that verify them
type CertificateServiceInterface interface {
	// Render produces the PDF certificate for an account, including a freshly issued token
	Render(view *models.AccountView, issuedAt time.Time) ([]byte, error)

	// IssueToken signs a verification token for the account state at issuedAt
	IssueToken(view *models.AccountView, issuedAt time.Time) (string, *models.CertificateClaims, error)

	// VerifyToken validates signature, issuer and expiry and returns the claims
	VerifyToken(token string) (*models.CertificateClaims, error)
}

// StoreInitializerInterface seeds an empty store on startup
type StoreInitializerInterface interface {
	Initialize(ctx context.Context) (*SeedResult, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
