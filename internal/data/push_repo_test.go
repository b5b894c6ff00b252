package data_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asutherland/treeherder-service/internal/data"
	"github.com/asutherland/treeherder-service/internal/domain/model"
	"github.com/asutherland/treeherder-service/internal/testutil"
)

func TestPushRepoUpsertReplacesRevisions(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repoID := seedRepository(t, db, "push-tree")
		repo := data.NewPushRepo(db)

		first, err := repo.UpsertPush(ctx, &model.Push{
			RepositoryID:  repoID,
			RevisionHash:  "hash-1",
			PushTimestamp: 100,
			Author:        "dev@example.com",
			ActiveStatus:  model.ActiveStatusActive,
			Revisions: []model.Revision{
				{Revision: "rev-1", Author: "dev@example.com", Comments: "one"},
				{Revision: "rev-2", Author: "dev@example.com", Comments: "two"},
			},
		})
		require.NoError(t, err)
		require.NotZero(t, first.ID)

		// Re-upserting the same hash keeps the row and replaces the revision set.
		second, err := repo.UpsertPush(ctx, &model.Push{
			RepositoryID:  repoID,
			RevisionHash:  "hash-1",
			PushTimestamp: 200,
			Author:        "other@example.com",
			ActiveStatus:  model.ActiveStatusOnHold,
			Revisions: []model.Revision{
				{Revision: "rev-3", Author: "other@example.com", Comments: "three"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		fetched, err := repo.GetByRevisionHash(ctx, repoID, "hash-1")
		require.NoError(t, err)
		assert.Equal(t, int64(200), fetched.PushTimestamp)
		assert.Equal(t, model.ActiveStatusOnHold, fetched.ActiveStatus)
		require.Len(t, fetched.Revisions, 1)
		assert.Equal(t, "rev-3", fetched.Revisions[0].Revision)
	})
}

func TestPushRepoGetUnknownHash(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repoID := seedRepository(t, db, "empty-tree")
		repo := data.NewPushRepo(db)

		_, err := repo.GetByRevisionHash(context.Background(), repoID, "no-such-hash")
		assert.ErrorIs(t, err, data.ErrPushNotFound)
	})
}

func TestPushRepoValidation(t *testing.T) {
	repo := data.NewPushRepo(nil)

	_, err := repo.UpsertPush(context.Background(), nil)
	assert.Error(t, err)

	_, err = repo.UpsertPush(context.Background(), &model.Push{})
	assert.Error(t, err)
}
