package pushlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asutherland/treeherder-service/internal/domain/model"
	apperrors "github.com/asutherland/treeherder-service/internal/errors"
)

func testLookup() model.PushLookup {
	return model.PushLookup{
		"mozilla-central": {
			"rev1": model.PushRecord{Date: 100, User: "dev", ActiveStatus: "active"},
			"rev2": model.PushRecord{Date: 200, User: "dev", ActiveStatus: "onhold"},
		},
	}
}

func TestResolveFound(t *testing.T) {
	missing := make(model.MissingPushSet)
	r := NewResolver(nil)

	record, err := r.Resolve(ResolveParams{
		Project:  "mozilla-central",
		Lookup:   testLookup(),
		Revision: "rev1",
		Missing:  missing,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), record.Date)
	assert.True(t, missing.Empty(), "resolving a present revision must not mutate the missing set")
}

func TestResolveNonActiveStillReturnsRecord(t *testing.T) {
	r := NewResolver(nil)

	record, err := r.Resolve(ResolveParams{
		Project:  "mozilla-central",
		Lookup:   testLookup(),
		Revision: "rev2",
		Missing:  make(model.MissingPushSet),
	})
	require.NoError(t, err)
	assert.False(t, record.Active())
}

func TestResolveMissingRevisionTracksAndFails(t *testing.T) {
	missing := make(model.MissingPushSet)
	r := NewResolver(nil)

	_, err := r.Resolve(ResolveParams{
		Project:  "mozilla-central",
		Lookup:   testLookup(),
		Revision: "rev-unknown",
		Missing:  missing,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	lists := missing.ToLists()
	assert.Equal(t, []string{"rev-unknown"}, lists["mozilla-central"])
}

func TestResolveMissingProjectTracksAndFails(t *testing.T) {
	missing := make(model.MissingPushSet)
	r := NewResolver(nil)

	_, err := r.Resolve(ResolveParams{
		Project:  "try",
		Lookup:   testLookup(),
		Revision: "rev9",
		Missing:  missing,
	})
	require.Error(t, err)
	assert.Equal(t, []string{"rev9"}, missing.ToLists()["try"])
}

func TestResolveSentinelRevisionNotTracked(t *testing.T) {
	for _, sentinel := range []string{"Unknown", ""} {
		missing := make(model.MissingPushSet)
		r := NewResolver(nil)

		_, err := r.Resolve(ResolveParams{
			Project:  "mozilla-central",
			Lookup:   testLookup(),
			Revision: sentinel,
			Missing:  missing,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.True(t, missing.Empty(), "sentinel revision %q must not be tracked", sentinel)
	}
}

func TestNotFoundOnHoldPush(t *testing.T) {
	record := NotFoundOnHoldPush("http://hg.example.com/pushlog", "deadbeef")

	assert.Equal(t, model.ActiveStatusOnHold, record.ActiveStatus)
	assert.Equal(t, "Unknown", record.User)
	require.Len(t, record.Changesets, 1)
	assert.Equal(t, "deadbeef", record.Changesets[0].Node)
	assert.Equal(t, "Unknown", record.Changesets[0].Author)
	assert.Contains(t, record.Changesets[0].Desc, "http://hg.example.com/pushlog")
	assert.NotZero(t, record.Date)
}
