package data_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asutherland/treeherder-service/internal/core"
	"github.com/asutherland/treeherder-service/internal/data"
	"github.com/asutherland/treeherder-service/internal/domain/model"
	"github.com/asutherland/treeherder-service/internal/testutil"
)

func TestJobRepoBlobRoundTrip(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repoID := seedRepository(t, db, "blob-tree")
		repo := data.NewJobRepo(db, nil)

		err := repo.StoreBlob(ctx, core.StoreBlobParams{
			RepositoryID: repoID,
			JobGUID:      "guid-1",
			Blob:         []byte(`{"job": {"job_guid": "guid-1"}}`),
		})
		require.NoError(t, err)

		// Resubmitting the same guid replaces the blob.
		err = repo.StoreBlob(ctx, core.StoreBlobParams{
			RepositoryID: repoID,
			JobGUID:      "guid-1",
			Blob:         []byte(`{"job": {"job_guid": "guid-1", "name": "rebuilt"}}`),
		})
		require.NoError(t, err)

		blob, err := repo.GetBlobByGUID(ctx, repoID, "guid-1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"job": {"job_guid": "guid-1", "name": "rebuilt"}}`, string(blob.Blob))

		_, err = repo.GetBlobByGUID(ctx, repoID, "no-such-guid")
		assert.ErrorIs(t, err, data.ErrBlobNotFound)

		blobs, err := repo.ListBlobs(ctx, repoID, core.PageOpts{Page: 0, Size: 10})
		require.NoError(t, err)
		assert.Len(t, blobs, 1)
	})
}

func TestJobRepoUpsertAndState(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repoID := seedRepository(t, db, "job-tree")
		repo := data.NewJobRepo(db, nil)

		stored, err := repo.UpsertJob(ctx, &model.Job{
			JobGUID:      "guid-1",
			RepositoryID: repoID,
			RevisionHash: "hash-1",
			Revision:     "rev-1",
			Name:         "mochitest-1",
			State:        model.StateStored,
			Result:       "success",
			Who:          "sheriff@example.com",
		})
		require.NoError(t, err)
		require.NotZero(t, stored.ID)

		// Upsert on the same guid updates in place, id is stable.
		again, err := repo.UpsertJob(ctx, &model.Job{
			JobGUID:      "guid-1",
			RepositoryID: repoID,
			RevisionHash: "hash-1",
			Revision:     "rev-1",
			Name:         "mochitest-1",
			State:        model.StateStored,
			Result:       "fail",
			Who:          "sheriff@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, stored.ID, again.ID)
		assert.Equal(t, "fail", again.Result)

		err = repo.SetState(ctx, core.SetStateParams{
			RepositoryID: repoID,
			JobID:        stored.ID,
			State:        model.StateErrored,
		})
		require.NoError(t, err)

		fetched, err := repo.GetJob(ctx, repoID, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StateErrored, fetched.State)

		err = repo.SetState(ctx, core.SetStateParams{
			RepositoryID: repoID,
			JobID:        99999,
			State:        model.StateStored,
		})
		assert.ErrorIs(t, err, data.ErrJobNotFound)
	})
}

func TestJobRepoPushResultRows(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repoID := seedRepository(t, db, "rows-tree")
		jobs := data.NewJobRepo(db, nil)
		pushes := data.NewPushRepo(db)

		_, err := pushes.UpsertPush(ctx, &model.Push{
			RepositoryID:  repoID,
			RevisionHash:  "hash-1",
			PushTimestamp: 100,
			Author:        "dev@example.com",
			ActiveStatus:  model.ActiveStatusActive,
			Revisions: []model.Revision{
				{Revision: "rev-1", Author: "dev@example.com", Comments: "change one"},
			},
		})
		require.NoError(t, err)

		_, err = jobs.UpsertJob(ctx, &model.Job{
			JobGUID:      "guid-1",
			RepositoryID: repoID,
			RevisionHash: "hash-1",
			Revision:     "rev-1",
			Name:         "build",
			State:        model.StateStored,
			Result:       "fail",
			Who:          "sheriff@example.com",
		})
		require.NoError(t, err)

		rows, err := jobs.ListPushResultRows(ctx, repoID, core.PageOpts{Page: 0, Size: 1000})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "hash-1", rows[0].RevisionHash)
		assert.Equal(t, "fail", rows[0].State)
		assert.Equal(t, "change one", rows[0].Comments)
		assert.Equal(t, "dev@example.com", rows[0].Author)
	})
}
