package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/scan-track/fridge-service/pkg/metrics"
)

//go:embed migrations/*.sql
var migrations embed.FS

// PostgresDB wraps sqlx.DB with health checks and metrics
type PostgresDB struct {
	db      *sqlx.DB
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewPostgresDB opens a PostgreSQL connection pool through the pgx stdlib
// driver and applies pending schema migrations.
func NewPostgresDB(databaseURL string, maxConns int, logger *slog.Logger, metricsCollector *metrics.Metrics) (*PostgresDB, error) {
	db, err := sqlx.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns / 2)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(time.Minute * 30)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	pg := &PostgresDB{
		db:      db,
		logger:  logger,
		metrics: metricsCollector,
	}

	if metricsCollector != nil {
		metricsCollector.DatabaseConnections.Set(float64(maxConns))
		metricsCollector.UpdateDependencyHealth("postgres", true)
	}

	logger.Info("PostgreSQL connection established", "max_conns", maxConns)

	return pg, nil
}

func runMigrations(db *sqlx.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// DB returns the underlying sqlx.DB
func (p *PostgresDB) DB() *sqlx.DB {
	return p.db
}

// Health checks the health of the database connection
func (p *PostgresDB) Health(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		if p.metrics != nil {
			p.metrics.UpdateDependencyHealth("postgres", false)
		}
		return err
	}

	if p.metrics != nil {
		p.metrics.UpdateDependencyHealth("postgres", true)

		stats := p.db.Stats()
		p.metrics.DatabaseConnections.Set(float64(stats.OpenConnections))
	}

	return nil
}

// Close closes the database connection pool
func (p *PostgresDB) Close() {
	if p.db != nil {
		p.db.Close()
		p.logger.Info("PostgreSQL connection pool closed")

		if p.metrics != nil {
			p.metrics.DatabaseConnections.Set(0)
			p.metrics.UpdateDependencyHealth("postgres", false)
		}
	}
}

// Stats returns connection pool statistics
func (p *PostgresDB) Stats() map[string]interface{} {
	if p.db == nil {
		return map[string]interface{}{
			"status": "disconnected",
		}
	}

	stats := p.db.Stats()
	return map[string]interface{}{
		"status":           "connected",
		"open_conns":       stats.OpenConnections,
		"in_use_conns":     stats.InUse,
		"idle_conns":       stats.Idle,
		"max_open_conns":   stats.MaxOpenConnections,
		"wait_count":       stats.WaitCount,
		"wait_duration_ms": stats.WaitDuration.Milliseconds(),
	}
}
