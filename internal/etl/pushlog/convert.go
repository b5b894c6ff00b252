package pushlog

import (
	"github.com/asutherland/treeherder-service/internal/domain/model"
	"github.com/asutherland/treeherder-service/internal/etl/guid"
)

// PushFromRecord converts a pushlog record into a persistable push for a
// repository. The revision hash is derived from the changeset nodes in
// pushlog order, so the same push always maps to the same hash.
func PushFromRecord(record model.PushRecord, repositoryID int64) *model.Push {
	nodes := make([]string, 0, len(record.Changesets))
	revisions := make([]model.Revision, 0, len(record.Changesets))
	for _, cs := range record.Changesets {
		nodes = append(nodes, cs.Node)
		revisions = append(revisions, model.Revision{
			Revision:     cs.Node,
			Author:       cs.Author,
			Comments:     cs.Desc,
			RepositoryID: repositoryID,
		})
	}

	status := record.ActiveStatus
	if status == "" {
		status = model.ActiveStatusActive
	}

	return &model.Push{
		RevisionHash:  guid.RevisionHash(nodes),
		RepositoryID:  repositoryID,
		PushTimestamp: record.Date,
		Author:        record.User,
		ActiveStatus:  status,
		Revisions:     revisions,
	}
}
