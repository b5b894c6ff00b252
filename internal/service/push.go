package service

import (
	"context"

	"github.com/asutherland/treeherder-service/internal/core"
	"github.com/asutherland/treeherder-service/internal/domain/model"
)

// PushServiceOptions groups dependencies for PushService.
type PushServiceOptions struct {
	Repos core.RepositoryStore
	Jobs  core.JobRepository
}

// PushService builds the push → revisions → jobs view served by the
// pushes endpoint.
type PushService struct {
	repos core.RepositoryStore
	jobs  core.JobRepository
}

// NewPushService constructs a PushService.
func NewPushService(opts PushServiceOptions) *PushService {
	return &PushService{repos: opts.Repos, jobs: opts.Jobs}
}

// ListPushes returns one page of push groups for a project. The store
// yields flat job rows sorted by revision hash; grouping is a linear scan
// over that order, so two runs of the same hash never merge unless they
// are contiguous.
func (s *PushService) ListPushes(
	ctx context.Context,
	project string,
	page int,
) ([]model.PushGroup, error) {
	repo, err := s.repos.GetByName(ctx, project)
	if err != nil {
		return nil, err
	}

	rows, err := s.jobs.ListPushResultRows(ctx, repo.ID, core.PageOpts{
		Page: page,
		Size: PushesPageSize,
	})
	if err != nil {
		return nil, err
	}
	return GroupPushRows(rows), nil
}

// GroupPushRows folds flat rows into push groups. Push-level fields
// (revision hash, submitter, push timestamp) are taken from the first row
// of each group and stripped from the per-job entries; revisions are
// sub-grouped the same way, keeping the first row of each revision run.
func GroupPushRows(rows []model.PushResultRow) []model.PushGroup {
	groups := make([]model.PushGroup, 0)

	var current *model.PushGroup
	results := make(map[string]struct{})
	lastRevision := ""

	flush := func() {
		if current == nil {
			return
		}
		current.WarningLevel = model.WarningLevelForResults(results)
		groups = append(groups, *current)
	}

	for _, row := range rows {
		if current == nil || row.RevisionHash != current.RevisionHash {
			flush()
			current = &model.PushGroup{
				RevisionHash: row.RevisionHash,
				Email:        row.Who,
				Timestamp:    row.PushTimestamp,
				Revisions:    []model.PushRevision{},
				Jobs:         []model.PushJob{},
			}
			results = make(map[string]struct{})
			lastRevision = ""
		}

		if row.Revision != lastRevision {
			current.Revisions = append(current.Revisions, model.PushRevision{
				Name:       row.Author,
				Revision:   row.Revision,
				Repository: row.RepositoryID,
				Message:    row.Comments,
			})
			lastRevision = row.Revision
		}

		current.Jobs = append(current.Jobs, model.PushJob{
			JobID:           row.JobID,
			JobGUID:         row.JobGUID,
			Name:            row.Name,
			State:           row.State,
			SubmitTimestamp: row.SubmitTimestamp,
		})
		results[row.State] = struct{}{}
	}
	flush()

	return groups
}
