package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/philipjohn05/taskapp-portfolio/internal/config"
)

func ConnectDB(ctx context.Context, conf *config.Config) (*sqlx.DB, error) {
	dsn := conf.DbDSN
	if conf.DbDriver == config.DriverMySQL {
		normalized, err := normalizeMySQLDSN(dsn)
		if err != nil {
			return nil, err
		}
		dsn = normalized
	}

	policy := RetryPolicyFromConfig(conf)
	db, err := withRetry(ctx, policy, "connect", func() (*sqlx.DB, error) {
		return sqlx.ConnectContext(ctx, conf.DbDriver, dsn)
	})
	if err != nil {
		return nil, err
	}

	if conf.DbMaxOpenConns > 0 {
		db.SetMaxOpenConns(conf.DbMaxOpenConns)
	}
	if conf.DbMaxIdleConns > 0 {
		db.SetMaxIdleConns(conf.DbMaxIdleConns)
	}
	if conf.DbConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(conf.DbConnMaxLifetime)
	}

	if conf.DbCreateSchema {
		if err := EnsureSchema(ctx, db, conf.DbDriver); err != nil {
			_ = db.Close()
			return nil, err
		}
		zap.L().Info("database schema ensured", zap.String("driver", conf.DbDriver))
	}

	return db, nil
}

func RetryPolicyFromConfig(conf *config.Config) RetryPolicy {
	policy := DefaultRetryPolicy()
	policy.MaxRetries = conf.DbMaxRetries
	if conf.DbRetryMaxDelay > 0 {
		policy.MaxDelay = conf.DbRetryMaxDelay
	}
	return policy
}

// normalizeMySQLDSN forces the options the repositories rely on: DATETIME
// columns scan into time.Time in UTC, and UPDATE reports matched rows rather
// than changed rows.
func normalizeMySQLDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}
