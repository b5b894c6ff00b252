package data_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asutherland/treeherder-service/internal/testutil"
)

// seedRepository inserts a project row and returns its id.
func seedRepository(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO repositories (name, url, description)
		VALUES ($1, 'https://hg.example.org/'||$1, 'integration test tree')
		RETURNING id
	`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestMigrationsApplyCleanly(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		// Migrations already ran in SetupTestDB; running again must be a no-op.
		require.NoError(t, testutil.RunMigrations(context.Background(), db))

		var count int
		err := db.QueryRowContext(context.Background(),
			`SELECT COUNT(*) FROM failure_classifications`).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 5, count)
	})
}
