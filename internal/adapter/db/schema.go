package db

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/philipjohn05/taskapp-portfolio/internal/config"
)

//go:embed schema/*.sql
var schemaFiles embed.FS

// EnsureSchema creates the tables and indexes when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB, driver string) error {
	file := "schema/mysql.sql"
	if driver == config.DriverSQLite {
		file = "schema/sqlite.sql"
	}

	content, err := schemaFiles.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	for _, statement := range strings.Split(string(content), ";") {
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("apply %s: %w", file, err)
		}
	}

	return nil
}
