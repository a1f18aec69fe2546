package tests

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/philipjohn05/taskapp-portfolio/internal/adapter/db"
	"github.com/philipjohn05/taskapp-portfolio/internal/config"
	"github.com/philipjohn05/taskapp-portfolio/pkg/translator"
)

var databaseSeq atomic.Int64

// IntegrationSuiteBase gives every test a fresh in-memory SQLite database
// with the embedded schema applied.
type IntegrationSuiteBase struct {
	suite.Suite

	DB    *sqlx.DB
	Clock *steppingClock
}

func (s *IntegrationSuiteBase) SetupSuite() {
	err := translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(projectRoot(s.T()), "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) SetupTest() {
	dsn := fmt.Sprintf("file:e2e_%d?mode=memory&cache=shared", databaseSeq.Add(1))
	db, err := sqlx.Connect(config.DriverSQLite, dsn)
	s.Require().NoError(err)
	db.SetMaxOpenConns(1)
	s.Require().NoError(dbadapter.EnsureSchema(context.Background(), db, config.DriverSQLite))

	s.DB = db
	s.Clock = &steppingClock{now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC), step: time.Second}
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
}

func (s *IntegrationSuiteBase) RetryPolicy() dbadapter.RetryPolicy {
	return dbadapter.RetryPolicy{MaxRetries: 1, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond}
}

func (s *IntegrationSuiteBase) CountRows(table string) int {
	var count int
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM "+table))
	return count
}

// steppingClock advances by step on every reading so creation order is
// reflected in createdAt.
type steppingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}

func projectRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}
