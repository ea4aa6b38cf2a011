package db

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"time"

	"bookingmx/internal/pkg/config"
	"bookingmx/migrations"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
)

const connectTimeout = 10 * time.Second

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, pool.Close, nil
}

func ConnectMySQL(cfg config.MySQLConfig) (*sqlx.DB, func(), error) {
	xdb, err := sqlx.Open("mysql", cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open mysql: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := xdb.PingContext(ctx); err != nil {
		_ = xdb.Close()
		return nil, nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	xdb.SetMaxIdleConns(10)
	xdb.SetMaxOpenConns(100)
	xdb.SetConnMaxLifetime(time.Hour)

	cleanup := func() {
		if err := xdb.Close(); err != nil {
			slog.Warn("failed to close mysql", "error", err)
		}
	}

	return xdb, cleanup, nil
}

// ApplyPostgresSchema runs every embedded postgres migration in file name order.
// The statements are idempotent, so running it on an initialized database is a no-op.
func ApplyPostgresSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return applySchema(migrations.Postgres, "postgres", func(sql string) error {
		_, err := pool.Exec(ctx, sql)
		return err
	})
}

func ApplyMySQLSchema(ctx context.Context, xdb *sqlx.DB) error {
	return applySchema(migrations.MySQL, "mysql", func(sql string) error {
		_, err := xdb.ExecContext(ctx, sql)
		return err
	})
}

func applySchema(fsys fs.FS, dir string, exec func(sql string) error) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		file := dir + "/" + entry.Name()
		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if err := exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
		slog.Info("migration applied", "file", file)
	}

	return nil
}
