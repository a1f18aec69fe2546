package db

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/philipjohn05/taskapp-portfolio/internal/config"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := sqlx.Connect(config.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	// One connection keeps the shared in-memory database alive and serializes access.
	db.SetMaxOpenConns(1)
	require.NoError(t, EnsureSchema(context.Background(), db, config.DriverSQLite))

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func testRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 2, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}
