package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hrsaas/timesheet-backend/internal/pkg/database"
	"github.com/hrsaas/timesheet-backend/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to TEST_DATABASE_URL, applies the schema and empties all
// tables. Tests are skipped when the variable is unset.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	schema, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "000001_init_timesheet.up.sql"))
	require.NoError(t, err)
	_, err = db.Exec(ctx, string(schema))
	require.NoError(t, err)

	tables := []string{"overtime_logs", "leave_requests", "checkin_complaints", "attendance_logs", "users", "companies"}
	err = postgresql.WithTransaction(ctx, db, func(ctx context.Context) error {
		q := postgresql.GetQuerier(ctx, db)
		for _, table := range tables {
			if _, err := q.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
				return fmt.Errorf("failed to truncate table %s: %w", table, err)
			}
		}
		return nil
	})
	require.NoError(t, err)

	return db
}

func createTestCompany(t *testing.T, db *database.DB, name string) string {
	t.Helper()
	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO companies (name) VALUES ($1) RETURNING id
	`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func createTestUser(t *testing.T, db *database.DB, companyID, email, fullName, salary string) string {
	t.Helper()
	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (company_id, email, full_name, salary) VALUES ($1, $2, $3, $4::numeric) RETURNING id
	`, companyID, email, fullName, salary).Scan(&id)
	require.NoError(t, err)
	return id
}
