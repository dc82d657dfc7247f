package repositories

import (
	"context"
	"errors"
	"fmt"

	"predial-consulta/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

const (
	insertBatchSize = 200

	// seedLockID keys the Postgres advisory lock held while seeding.
	seedLockID int64 = 0x70726564
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// GetByKey retrieves an account by its normalized key
func (r *accountRepository) GetByKey(ctx context.Context, key string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("cuenta = ?", key).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by key: %w", err)
	}
	return &account, nil
}

// Count returns the number of stored accounts
func (r *accountRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Account{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return total, nil
}

// InsertIfAbsent inserts accounts with ON CONFLICT DO NOTHING
func (r *accountRepository) InsertIfAbsent(ctx context.Context, accounts []models.Account) (int64, error) {
	if len(accounts) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&accounts, insertBatchSize)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to insert accounts: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// LockForSeeding takes a transaction scoped advisory lock on Postgres. sqlite
// serializes writers on its own.
func (r *accountRepository) LockForSeeding(ctx context.Context) error {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	if err := r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", seedLockID).Error; err != nil {
		return fmt.Errorf("failed to acquire seed lock: %w", err)
	}
	return nil
}

// Transaction runs fn inside a database transaction
func (r *accountRepository) Transaction(ctx context.Context, fn func(repo AccountRepositoryInterface) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&accountRepository{db: tx})
	})
}
