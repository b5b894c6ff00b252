package model

// WarningLevel is the traffic-light rollup of a push's job results.
type WarningLevel string

const (
	// WarningLevelRed indicates at least one failed job.
	WarningLevelRed WarningLevel = "red"
	// WarningLevelOrange indicates intermittent/known failures but no hard failures.
	WarningLevelOrange WarningLevel = "orange"
	// WarningLevelGrey indicates jobs still pending or running.
	WarningLevelGrey WarningLevel = "grey"
	// WarningLevelGreen indicates all jobs finished cleanly.
	WarningLevelGreen WarningLevel = "green"
)

// Result states contributing to the warning level rollup.
const (
	ResultFail    = "fail"
	ResultOrange  = "orange"
	ResultPending = "pending"
	ResultRunning = "running"
)

// WarningLevelForResults computes the rollup from the distinct set of job
// result states in a push, with fixed precedence: fail beats orange beats
// grey beats green. Grey requires pending or running to actually be
// present; a push whose jobs all finished cleanly is green.
func WarningLevelForResults(results map[string]struct{}) WarningLevel {
	if _, ok := results[ResultFail]; ok {
		return WarningLevelRed
	}
	if _, ok := results[ResultOrange]; ok {
		return WarningLevelOrange
	}
	_, pending := results[ResultPending]
	_, running := results[ResultRunning]
	if pending || running {
		return WarningLevelGrey
	}
	return WarningLevelGreen
}

// PushResultRow is one flat row read from the store for push aggregation:
// a job joined to its push and revision. Rows must arrive sorted by
// revision hash; grouping is a linear scan, not a hash-group.
type PushResultRow struct {
	JobID           int64  `json:"job_id"           db:"job_id"`
	JobGUID         string `json:"job_guid"         db:"job_guid"`
	Name            string `json:"name"             db:"name"`
	State           string `json:"state"            db:"state"`
	SubmitTimestamp int64  `json:"submit_timestamp" db:"submit_timestamp"`
	RevisionHash    string `json:"revision_hash"    db:"revision_hash"`
	Who             string `json:"who"              db:"who"`
	PushTimestamp   int64  `json:"push_timestamp"   db:"push_timestamp"`
	Revision        string `json:"revision"         db:"revision"`
	Author          string `json:"author"           db:"author"`
	Comments        string `json:"comments"         db:"comments"`
	RepositoryID    int64  `json:"repository_id"    db:"repository_id"`
}

// PushJob is a job emitted inside a push group. Push-level fields
// (revision hash, submitter, revision, repository) are hoisted to the
// group and stripped from the per-job rows.
type PushJob struct {
	JobID           int64  `json:"job_id"`
	JobGUID         string `json:"job_guid"`
	Name            string `json:"name"`
	State           string `json:"state"`
	SubmitTimestamp int64  `json:"submit_timestamp"`
}

// PushRevision is a revision emitted inside a push group, taken from the
// first row of each revision sub-group.
type PushRevision struct {
	Name       string `json:"name"`
	Revision   string `json:"revision"`
	Repository int64  `json:"repository"`
	Message    string `json:"message"`
}

// PushGroup is the hierarchical push → revisions → jobs structure served
// by the pushes endpoint.
type PushGroup struct {
	RevisionHash string         `json:"revision_hash"`
	Email        string         `json:"email"`
	Timestamp    int64          `json:"timestamp"`
	WarningLevel WarningLevel   `json:"warning_level"`
	Revisions    []PushRevision `json:"revisions"`
	Jobs         []PushJob      `json:"jobs"`
}
