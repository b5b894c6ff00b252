package pushlog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/asutherland/treeherder-service/internal/domain/model"
	apperrors "github.com/asutherland/treeherder-service/internal/errors"
)

// Revision values that carry no useful information; nothing can be
// re-fetched for them, so they never enter the missing set.
func sentinelRevision(revision string) bool {
	return revision == "Unknown" || revision == ""
}

// Resolver resolves (project, revision) pairs against a pre-fetched
// lookup table and tracks revisions that need a deferred re-fetch.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver constructs a Resolver.
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// ResolveParams groups parameters for Resolve to keep param count ≤3.
type ResolveParams struct {
	Project  string
	Lookup   model.PushLookup
	Revision string
	Missing  model.MissingPushSet
}

// Resolve returns the push record for a revision.
//
// A found push whose active_status is not "active" is still returned, with
// an informational skip-notice logged; callers are expected not to create
// jobs for it. An absent project or revision fails with a not-found error,
// which means "skip ingesting this job now"; the revision is recorded into
// the missing set for re-fetch unless it is a sentinel value.
func (r *Resolver) Resolve(params ResolveParams) (model.PushRecord, error) {
	byRevision, ok := params.Lookup[params.Project]
	if !ok {
		return model.PushRecord{}, r.notFound(params)
	}

	record, ok := byRevision[params.Revision]
	if !ok {
		return model.PushRecord{}, r.notFound(params)
	}

	// Pushes can be inactive for various reasons; one is pending/running
	// data carrying a bad revision from the wrong repo. They are ingested
	// as inactive so the revision is not perpetually retried, but no jobs
	// should be created for them.
	if !record.Active() && r.logger != nil {
		r.logger.Info("skipping job for non-active push/revision",
			"project", params.Project,
			"revision", params.Revision,
			"active_status", record.ActiveStatus)
	}

	return record, nil
}

func (r *Resolver) notFound(params ResolveParams) error {
	if params.Missing != nil && !sentinelRevision(params.Revision) {
		params.Missing.Add(params.Project, params.Revision)
	}
	return apperrors.NotFoundf(
		"no push found for project %q revision %q", params.Project, params.Revision)
}

// NotFoundOnHoldPush synthesizes a single-changeset placeholder push for a
// revision the upstream pushlog returned nothing for, so the revision is
// not perpetually retried. The push is on hold until someone sorts out the
// pushlog.
func NotFoundOnHoldPush(url, revision string) model.PushRecord {
	return model.PushRecord{
		Date:         time.Now().Unix(),
		User:         "Unknown",
		ActiveStatus: model.ActiveStatusOnHold,
		Changesets: []model.Changeset{
			{
				Node:   revision,
				Author: "Unknown",
				Branch: "default",
				Desc:   fmt.Sprintf("Pushlog not found at %s", url),
				Files:  []string{},
				Tags:   []string{},
			},
		},
	}
}
