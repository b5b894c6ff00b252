package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stateSet(states ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

func TestWarningLevelForResults(t *testing.T) {
	tests := []struct {
		name   string
		states []string
		want   WarningLevel
	}{
		{"fail wins over everything", []string{"fail", "orange", "pending", "success"}, WarningLevelRed},
		{"orange without fail", []string{"orange", "running", "success"}, WarningLevelOrange},
		{"pending only", []string{"pending", "success"}, WarningLevelGrey},
		{"running only", []string{"running"}, WarningLevelGrey},
		// The historical view computed grey whenever fail/orange were
		// absent; finished pushes are green here instead.
		{"all finished is green", []string{"success"}, WarningLevelGreen},
		{"no jobs is green", nil, WarningLevelGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WarningLevelForResults(stateSet(tt.states...)))
		})
	}
}

func TestStateValid(t *testing.T) {
	for _, s := range ValidStates() {
		assert.True(t, s.Valid())
	}
	assert.False(t, State("bogus").Valid())
	assert.False(t, State("").Valid())
}

func TestStateUnmarshalText(t *testing.T) {
	var s State
	assert.NoError(t, s.UnmarshalText([]byte(" Stored ")))
	assert.Equal(t, StateStored, s)
	assert.Error(t, s.UnmarshalText([]byte("bogus")))
}

func TestMissingPushSet(t *testing.T) {
	m := make(MissingPushSet)
	assert.True(t, m.Empty())

	m.Add("mozilla-central", "rev1")
	m.Add("mozilla-central", "rev1")
	m.Add("mozilla-central", "rev2")
	m.Add("try", "rev3")

	assert.False(t, m.Empty())
	lists := m.ToLists()
	assert.Len(t, lists["mozilla-central"], 2)
	assert.Equal(t, []string{"rev3"}, lists["try"])
}

func TestBatchSummaryRecord(t *testing.T) {
	var b BatchSummary
	b.Record(IngestOutcome{State: StateStored, JobGUID: "a"})
	b.Record(IngestOutcome{State: StateSkipped, JobGUID: "b"})
	b.Record(IngestOutcome{State: StateErrored, Message: "bad payload"})

	assert.Equal(t, 1, b.Stored)
	assert.Equal(t, 1, b.Skipped)
	assert.Equal(t, 1, b.Errored)
	assert.Len(t, b.Outcomes, 3)
}
