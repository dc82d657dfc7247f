package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"predial-consulta/internal/models"
	"predial-consulta/internal/repositories"
)

// ErrStoreUnavailable marks lookups that failed in the account store.
var ErrStoreUnavailable = errors.New("account store unavailable")

// Outcome classifies a lookup.
type Outcome string

const (
	OutcomeNoQuery  Outcome = "no_query"
	OutcomeNotFound Outcome = "not_found"
	OutcomeFound    Outcome = "found"
)

// LookupResult is the result of resolving a raw account key. Account is set
// only for OutcomeFound.
type LookupResult struct {
	Key     string
	Outcome Outcome
	Account *models.AccountView
}

// Found reports whether the lookup matched an account.
func (r *LookupResult) Found() bool {
	return r.Outcome == OutcomeFound
}

type lookupService struct {
	accountRepo         repositories.AccountRepositoryInterface
	downloadURLTemplate string
	metrics             MetricsRecorderInterface
	logger              *slog.Logger
}

// NewLookupService creates a lookup service over the account store
func NewLookupService(
	accountRepo repositories.AccountRepositoryInterface,
	downloadURLTemplate string,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LookupServiceInterface {
	return &lookupService{
		accountRepo:         accountRepo,
		downloadURLTemplate: downloadURLTemplate,
		metrics:             metrics,
		logger:              logger,
	}
}

// Lookup normalizes raw and fetches the matching account. A missing account is
// an outcome, not an error; errors are reserved for store failures.
func (s *lookupService) Lookup(ctx context.Context, raw string) (*LookupResult, error) {
	key := models.NormalizeKey(raw)
	if key == "" {
		return &LookupResult{Outcome: OutcomeNoQuery}, nil
	}

	start := time.Now()
	account, err := s.accountRepo.GetByKey(ctx, key)
	if s.metrics != nil {
		s.metrics.RecordProcessingTime(MetricLookupDuration, time.Since(start))
	}

	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return &LookupResult{Key: key, Outcome: OutcomeNotFound}, nil
		}

		if s.metrics != nil {
			s.metrics.IncrementCounter(MetricLookupFailed, nil)
		}
		s.logger.Error("account lookup failed", "cuenta", key, "error", err)
		return nil, fmt.Errorf("failed to look up account: %w: %w", ErrStoreUnavailable, err)
	}

	return &LookupResult{
		Key:     key,
		Outcome: OutcomeFound,
		Account: models.NewAccountView(*account, s.downloadURLTemplate),
	}, nil
}
