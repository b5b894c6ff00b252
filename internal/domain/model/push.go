package model

// ActiveStatus values a push record can carry. Jobs are only ingested for
// active pushes; onhold and inactive pushes are kept so bad revisions are
// not perpetually re-fetched.
const (
	ActiveStatusActive   = "active"
	ActiveStatusOnHold   = "onhold"
	ActiveStatusInactive = "inactive"
)

// Changeset is one revision inside a push as reported by the pushlog.
type Changeset struct {
	Node   string   `json:"node"`
	Author string   `json:"author"`
	Branch string   `json:"branch"`
	Desc   string   `json:"desc"`
	Files  []string `json:"files"`
	Tags   []string `json:"tags"`
}

// PushRecord is one push as reported by the pushlog lookup service.
type PushRecord struct {
	Date         int64       `json:"date"`
	User         string      `json:"user"`
	ActiveStatus string      `json:"active_status"`
	Changesets   []Changeset `json:"changesets"`
}

// Active returns true when jobs may be ingested for this push. A missing
// active_status counts as active, matching upstream pushlog payloads that
// omit the field.
func (p PushRecord) Active() bool {
	return p.ActiveStatus == "" || p.ActiveStatus == ActiveStatusActive
}

// PushLookup maps project name → revision → push record. It is built per
// ingestion batch from an upstream query and never persisted.
type PushLookup map[string]map[string]PushRecord

// MissingPushSet tracks revisions that could not be resolved during the
// current ingestion batch, per project. It is flushed once at batch end by
// scheduling a re-fetch task.
type MissingPushSet map[string]map[string]struct{}

// Add records a revision as missing for a project.
func (m MissingPushSet) Add(project, revision string) {
	set, ok := m[project]
	if !ok {
		set = make(map[string]struct{})
		m[project] = set
	}
	set[revision] = struct{}{}
}

// Empty returns true when no revisions are tracked.
func (m MissingPushSet) Empty() bool {
	for _, set := range m {
		if len(set) > 0 {
			return false
		}
	}
	return true
}

// ToLists converts the accumulated sets to sorted-insertion sequences for
// logging and task payloads.
func (m MissingPushSet) ToLists() map[string][]string {
	out := make(map[string][]string, len(m))
	for project, set := range m {
		revs := make([]string, 0, len(set))
		for rev := range set {
			revs = append(revs, rev)
		}
		out[project] = revs
	}
	return out
}

// Push is a persisted push: a set of revisions submitted together, the
// unit jobs are grouped under.
type Push struct {
	ID            int64      `json:"id"             db:"id"`
	RevisionHash  string     `json:"revision_hash"  db:"revision_hash"`
	RepositoryID  int64      `json:"repository_id"  db:"repository_id"`
	PushTimestamp int64      `json:"push_timestamp" db:"push_timestamp"`
	Author        string     `json:"author"         db:"author"`
	ActiveStatus  string     `json:"active_status"  db:"active_status"`
	Revisions     []Revision `json:"revisions"`
}

// Revision is one persisted revision belonging to a push.
type Revision struct {
	Revision     string `json:"revision"      db:"revision"`
	Author       string `json:"author"        db:"author"`
	Comments     string `json:"comments"      db:"comments"`
	RepositoryID int64  `json:"repository_id" db:"repository_id"`
}
