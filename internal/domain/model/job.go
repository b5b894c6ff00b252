// Package model defines the core data types used throughout the treeherder
// ingestion and query service.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// State represents the ingestion lifecycle state of a job record.
//
//nolint:recvcheck // UnmarshalText needs pointer receiver, Valid needs value receiver
type State string

const (
	// StateReceived indicates a job payload has been accepted but not yet processed.
	StateReceived State = "received"
	// StateStored indicates a job was normalized and persisted.
	StateStored State = "stored"
	// StateSkipped indicates a job was not persisted because its push could not be resolved.
	StateSkipped State = "skipped"
	// StateErrored indicates a job payload failed parsing or validation.
	StateErrored State = "errored"
)

// ValidStates returns the recognized ingestion states in a stable order.
func ValidStates() []State {
	return []State{StateReceived, StateStored, StateSkipped, StateErrored}
}

// Valid returns true if the State is recognized.
func (s State) Valid() bool {
	return s == StateReceived || s == StateStored || s == StateSkipped || s == StateErrored
}

// Terminal returns true for states a job cannot leave during ingestion.
// State updates via the API remain permissive: any recognized state may
// follow any other.
func (s State) Terminal() bool {
	return s == StateStored || s == StateSkipped || s == StateErrored
}

// UnmarshalText implements encoding.TextUnmarshaler for State.
func (s *State) UnmarshalText(text []byte) error {
	v := State(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("invalid state: %q", string(text))
	}
	*s = v
	return nil
}

// StatesDescription renders the recognized states for error messages,
// e.g. "received, stored, skipped, errored".
func StatesDescription() string {
	states := ValidStates()
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Job is a normalized job record tied to a push by revision hash.
type Job struct {
	ID              int64     `json:"id"               db:"id"`
	JobGUID         string    `json:"job_guid"         db:"job_guid"`
	RepositoryID    int64     `json:"repository_id"    db:"repository_id"`
	RevisionHash    string    `json:"revision_hash"    db:"revision_hash"`
	Revision        string    `json:"revision"         db:"revision"`
	Name            string    `json:"name"             db:"name"`
	State           State     `json:"state"            db:"state"`
	Result          string    `json:"result"           db:"result"`
	Who             string    `json:"who"              db:"who"`
	SubmitTimestamp int64     `json:"submit_timestamp" db:"submit_timestamp"`
	CreatedAt       time.Time `json:"created_at"       db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"       db:"updated_at"`
}

// StoredPayload is a raw, not-yet-normalized job submission kept in the
// objectstore, keyed by job guid.
type StoredPayload struct {
	JobGUID  string          `json:"job_guid"  db:"job_guid"`
	Blob     json.RawMessage `json:"json_blob" db:"json_blob"`
	LoadedAt time.Time       `json:"loaded_at" db:"loaded_at"`
}

// IngestOutcome describes what happened to one job record in a batch.
type IngestOutcome struct {
	JobGUID string `json:"job_guid,omitempty"`
	State   State  `json:"state"`
	Message string `json:"message,omitempty"`
}

// BatchSummary aggregates per-job outcomes for one ingestion batch.
type BatchSummary struct {
	Stored  int `json:"stored"`
	Skipped int `json:"skipped"`
	Errored int `json:"errored"`

	Outcomes []IngestOutcome `json:"outcomes,omitempty"`
}

// Record tallies an outcome into the summary.
func (b *BatchSummary) Record(outcome IngestOutcome) {
	switch outcome.State {
	case StateStored:
		b.Stored++
	case StateSkipped:
		b.Skipped++
	case StateErrored:
		b.Errored++
	case StateReceived:
		// non-terminal, nothing to tally
	}
	b.Outcomes = append(b.Outcomes, outcome)
}
