package repositories

import (
	"context"
	"errors"
	"testing"

	"predial-consulta/internal/database"
	"predial-consulta/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AccountRepositoryInterface
	ctx  context.Context
}

func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func fakeAccount(key string) models.Account {
	return models.Account{
		Cuenta:        key,
		Propietario:   gofakeit.Name(),
		Direccion:     gofakeit.Street(),
		Adeudo:        decimal.NewFromFloat(gofakeit.Price(0, 5000)).Round(2),
		FechaVigencia: gofakeit.Date().Format(models.ISODate),
		GDriveID:      gofakeit.LetterN(12),
	}
}

func (s *AccountRepositorySuite) TestInsertIfAbsent_AndGetByKey() {
	accounts := []models.Account{fakeAccount("CUENTA-1"), fakeAccount("CUENTA-2")}

	inserted, err := s.repo.InsertIfAbsent(s.ctx, accounts)
	s.Require().NoError(err)
	s.Equal(int64(2), inserted)

	got, err := s.repo.GetByKey(s.ctx, "CUENTA-2")
	s.Require().NoError(err)
	s.Equal(accounts[1].Propietario, got.Propietario)
	s.Equal(accounts[1].Direccion, got.Direccion)
	s.True(accounts[1].Adeudo.Equal(got.Adeudo))
	s.Equal(accounts[1].FechaVigencia, got.FechaVigencia)
	s.Equal(accounts[1].GDriveID, got.GDriveID)
}

func (s *AccountRepositorySuite) TestInsertIfAbsent_NormalizesKeys() {
	_, err := s.repo.InsertIfAbsent(s.ctx, []models.Account{fakeAccount("  cuenta-9 ")})
	s.Require().NoError(err)

	got, err := s.repo.GetByKey(s.ctx, "CUENTA-9")
	s.Require().NoError(err)
	s.Equal("CUENTA-9", got.Cuenta)
}

func (s *AccountRepositorySuite) TestInsertIfAbsent_ExistingRowsWin() {
	original := fakeAccount("CUENTA-1")
	_, err := s.repo.InsertIfAbsent(s.ctx, []models.Account{original})
	s.Require().NoError(err)

	replacement := fakeAccount("CUENTA-1")
	replacement.Propietario = "Otro Titular"
	inserted, err := s.repo.InsertIfAbsent(s.ctx, []models.Account{replacement, fakeAccount("CUENTA-3")})
	s.Require().NoError(err)
	s.Equal(int64(1), inserted)

	got, err := s.repo.GetByKey(s.ctx, "CUENTA-1")
	s.Require().NoError(err)
	s.Equal(original.Propietario, got.Propietario)

	total, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}

func (s *AccountRepositorySuite) TestInsertIfAbsent_DuplicateInBatchKeepsFirst() {
	first := fakeAccount("CUENTA-7")
	second := fakeAccount("CUENTA-7")

	inserted, err := s.repo.InsertIfAbsent(s.ctx, []models.Account{first, second})
	s.Require().NoError(err)
	s.Equal(int64(1), inserted)

	got, err := s.repo.GetByKey(s.ctx, "CUENTA-7")
	s.Require().NoError(err)
	s.Equal(first.Propietario, got.Propietario)
}

func (s *AccountRepositorySuite) TestInsertIfAbsent_Empty() {
	inserted, err := s.repo.InsertIfAbsent(s.ctx, nil)
	s.NoError(err)
	s.Zero(inserted)
}

func (s *AccountRepositorySuite) TestInsertIfAbsent_RejectsEmptyKey() {
	_, err := s.repo.InsertIfAbsent(s.ctx, []models.Account{fakeAccount("   ")})
	s.Error(err)
	s.ErrorIs(err, models.ErrEmptyAccountKey)
}

func (s *AccountRepositorySuite) TestGetByKey_NotFound() {
	got, err := s.repo.GetByKey(s.ctx, "ZZZ-NOT-REAL")
	s.Nil(got)
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestCount_Empty() {
	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Zero(total)
}

func (s *AccountRepositorySuite) TestLockForSeeding_NoopOnSQLite() {
	s.NoError(s.repo.LockForSeeding(s.ctx))
}

func (s *AccountRepositorySuite) TestTransaction_Commit() {
	err := s.repo.Transaction(s.ctx, func(repo AccountRepositoryInterface) error {
		_, err := repo.InsertIfAbsent(s.ctx, []models.Account{fakeAccount("CUENTA-1")})
		return err
	})
	s.Require().NoError(err)

	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(1), total)
}

func (s *AccountRepositorySuite) TestTransaction_Rollback() {
	boom := errors.New("boom")
	err := s.repo.Transaction(s.ctx, func(repo AccountRepositoryInterface) error {
		if _, err := repo.InsertIfAbsent(s.ctx, []models.Account{fakeAccount("CUENTA-1")}); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Zero(total)
}

func newMockedPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestAccountRepository_GetByKey_DatabaseError(t *testing.T) {
	db, mock := newMockedPostgres(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "cuentas"`).WillReturnError(errors.New("connection reset"))

	got, err := repo.GetByKey(context.Background(), "CUENTA-1")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccountNotFound)
	assert.Contains(t, err.Error(), "failed to get account by key")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Count_DatabaseError(t *testing.T) {
	db, mock := newMockedPostgres(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "cuentas"`).WillReturnError(errors.New("relation does not exist"))

	_, err := repo.Count(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count accounts")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_LockForSeeding_Postgres(t *testing.T) {
	db, mock := newMockedPostgres(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
		WithArgs(seedLockID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.LockForSeeding(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_LockForSeeding_PostgresError(t *testing.T) {
	db, mock := newMockedPostgres(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WillReturnError(errors.New("lock timeout"))

	err := repo.LockForSeeding(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to acquire seed lock")
}
