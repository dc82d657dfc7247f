package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"predial-consulta/internal/config"
	"predial-consulta/internal/models"
	"predial-consulta/internal/repositories"
	"predial-consulta/internal/seed"
	"predial-consulta/internal/validation"
)

// Reasons reported in SeedResult.Skipped.
const (
	SkipSeedDisabled    = "seed disabled"
	SkipStoreNotEmpty   = "store not empty"
	SkipSeedFileMissing = "seed file not found"
)

// SeedResult summarizes the startup seed step. Skipped is empty when the seed
// file was imported.
type SeedResult struct {
	Skipped  string
	Rows     int
	Inserted int64
	Ignored  int64
}

type storeInitializer struct {
	accountRepo repositories.AccountRepositoryInterface
	seedConfig  config.SeedConfig
	validator   *validation.Validator
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
	now         func() time.Time
}

// NewStoreInitializer creates the startup seeder
func NewStoreInitializer(
	accountRepo repositories.AccountRepositoryInterface,
	seedConfig *config.SeedConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) StoreInitializerInterface {
	return &storeInitializer{
		accountRepo: accountRepo,
		seedConfig:  *seedConfig,
		validator:   validation.GetValidator(),
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// Initialize imports the seed file when the store holds no accounts. The count
// and the insert share one transaction, and on Postgres an advisory lock, so
// concurrent starters import the file at most once. Existing rows are never
// overwritten.
func (s *storeInitializer) Initialize(ctx context.Context) (*SeedResult, error) {
	if !s.seedConfig.Enabled {
		s.logger.Info("seed step disabled")
		return &SeedResult{Skipped: SkipSeedDisabled}, nil
	}

	start := time.Now()
	result := &SeedResult{}

	err := s.accountRepo.Transaction(ctx, func(repo repositories.AccountRepositoryInterface) error {
		if err := repo.LockForSeeding(ctx); err != nil {
			return err
		}

		total, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if total > 0 {
			result.Skipped = SkipStoreNotEmpty
			s.recordStoreSize(total)
			return nil
		}

		accounts, err := seed.ParseFile(s.seedConfig.Path, seed.Options{
			Comma: s.seedConfig.Comma(),
			Now:   s.now,
		})
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				result.Skipped = SkipSeedFileMissing
				return nil
			}
			return err
		}

		if err := s.validateRows(accounts); err != nil {
			return err
		}

		inserted, err := repo.InsertIfAbsent(ctx, accounts)
		if err != nil {
			return err
		}

		result.Rows = len(accounts)
		result.Inserted = inserted
		result.Ignored = int64(len(accounts)) - inserted
		s.recordStoreSize(inserted)
		return nil
	})
	if err != nil {
		s.logger.Error("store initialization failed", "seed_path", s.seedConfig.Path, "error", err)
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordProcessingTime(MetricSeedDuration, time.Since(start))
		s.metrics.RecordGauge(MetricSeedInserted, float64(result.Inserted), nil)
		s.metrics.RecordGauge(MetricSeedIgnored, float64(result.Ignored), nil)
	}

	if result.Skipped != "" {
		s.logger.Info("seed step skipped", "reason", result.Skipped, "seed_path", s.seedConfig.Path)
	} else {
		s.logger.Info("store seeded",
			"seed_path", s.seedConfig.Path,
			"rows", result.Rows,
			"inserted", result.Inserted,
			"ignored", result.Ignored,
		)
	}

	return result, nil
}

func (s *storeInitializer) validateRows(accounts []models.Account) error {
	for i := range accounts {
		if err := s.validator.Validate(&accounts[i]); err != nil {
			return fmt.Errorf("invalid seed row %d (%q): %w", i+1, accounts[i].Cuenta, err)
		}
	}
	return nil
}

func (s *storeInitializer) recordStoreSize(total int64) {
	if s.metrics != nil {
		s.metrics.RecordGauge(MetricStoreAccounts, float64(total), nil)
	}
}
