package db

import (
	"context"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"

	"github.com/philipjohn05/taskapp-portfolio/internal/config"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	normalized, err := normalizeMySQLDSN("taskapp:secret@tcp(db:3306)/tasks")
	require.NoError(t, err)

	parsed, err := mysql.ParseDSN(normalized)
	require.NoError(t, err)
	require.True(t, parsed.ParseTime)
	require.True(t, parsed.ClientFoundRows)
	require.Equal(t, time.UTC, parsed.Loc)
	require.Equal(t, "tasks", parsed.DBName)
	require.Equal(t, "db:3306", parsed.Addr)
}

func TestNormalizeMySQLDSN_Invalid(t *testing.T) {
	_, err := normalizeMySQLDSN("tcp(db:3306/tasks")
	require.Error(t, err)
}

func TestConnectDB_SQLiteWithSchema(t *testing.T) {
	conf := &config.Config{
		DbDriver:       config.DriverSQLite,
		DbDSN:          "file:connect_test?mode=memory&cache=shared",
		DbMaxOpenConns: 1,
		DbMaxRetries:   1,
		DbCreateSchema: true,
	}

	db, err := ConnectDB(context.Background(), conf)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM tasks"))
	require.Zero(t, count)
}

func TestRetryPolicyFromConfig(t *testing.T) {
	policy := RetryPolicyFromConfig(&config.Config{DbMaxRetries: 4, DbRetryMaxDelay: time.Second})

	require.Equal(t, 4, policy.MaxRetries)
	require.Equal(t, time.Second, policy.MaxDelay)
	require.Equal(t, DefaultRetryPolicy().InitialDelay, policy.InitialDelay)
}
