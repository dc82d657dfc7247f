package repositories

import (
	"context"

	"predial-consulta/internal/models"
)

// AccountRepositoryInterface defines the data access contract for the cuentas table
type AccountRepositoryInterface interface {
	// GetByKey returns the account whose key equals key exactly, or ErrAccountNotFound.
	GetByKey(ctx context.Context, key string) (*models.Account, error)
	Count(ctx context.Context) (int64, error)
	// InsertIfAbsent inserts accounts, leaving existing keys untouched, and
	// returns the number of rows actually inserted.
	InsertIfAbsent(ctx context.Context, accounts []models.Account) (int64, error)
	// LockForSeeding serializes concurrent seeders; it is only meaningful inside Transaction.
	LockForSeeding(ctx context.Context) error
	// Transaction runs fn with a repository bound to a single database transaction.
	Transaction(ctx context.Context, fn func(repo AccountRepositoryInterface) error) error
}
