// Command migrate brings the schema up to date and imports the seed file
// into an empty store, then exits. Run it before starting several server
// replicas against the same database.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"predial-consulta/internal/config"
	"predial-consulta/internal/database"
	"predial-consulta/internal/repositories"
	"predial-consulta/internal/services"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("failed to load configuration", err)
	}

	dsn := cfg.Database.DSN()
	if cfg.Database.Driver == config.DriverSQLite {
		if err := database.EnsureDataDir(&cfg.Database); err != nil {
			fatal("failed to prepare data directory", err)
		}
		dsn = database.SQLiteDSN(dsn)
	}

	sqlDB, err := sql.Open(cfg.Database.SQLDriverName(), dsn)
	if err != nil {
		fatal("failed to open database", err)
	}
	defer sqlDB.Close()

	runner := database.NewMigrationRunner(sqlDB, cfg.Database.Driver)
	if err := runner.WaitForDatabase(); err != nil {
		fatal("database not ready", err)
	}
	if err := runner.RunMigrations(); err != nil {
		fatal("failed to run migrations", err)
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		fatal("failed to read migration status", err)
	}
	slog.Info("schema up to date", "version", version, "dirty", dirty)

	db, err := database.Wrap(sqlDB, &cfg.Database)
	if err != nil {
		fatal("failed to open store", err)
	}

	metrics := services.NewPrometheusMetrics(prometheus.NewRegistry())
	initializer := services.NewStoreInitializer(repositories.NewAccountRepository(db.DB), &cfg.Seed, metrics, slog.Default())

	result, err := initializer.Initialize(context.Background())
	if err != nil {
		fatal("failed to seed store", err)
	}

	slog.Info("done",
		"skipped", result.Skipped,
		"rows", result.Rows,
		"inserted", result.Inserted,
		"ignored", result.Ignored,
	)
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
