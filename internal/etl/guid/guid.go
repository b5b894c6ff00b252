// Package guid derives stable identities for jobs and revision sets.
package guid

import (
	"crypto/sha1" //nolint:gosec // identity hashing, not security
	"encoding/hex"
	"strings"
)

const endTimeSuffixLen = 5

// Job converts a request id and request time into a job guid. Identical
// inputs always produce the same guid, which is what makes objectstore
// writes idempotent upserts.
func Job(requestID, requestTime string) string {
	h := sha1.New() //nolint:gosec // identity hashing, not security
	h.Write([]byte(requestID))
	h.Write([]byte(requestTime))
	return hex.EncodeToString(h.Sum(nil))
}

// JobWithEndTime appends an end-time suffix to the job guid. Retried jobs
// submit the same (request id, request time) pair as the completed job, so
// the guid needs the end time to stay unique in the objectstore or the
// retries and/or the completed outcome would be dropped.
func JobWithEndTime(requestID, requestTime, endTime string) string {
	g := Job(requestID, requestTime)
	if endTime == "" {
		return g
	}
	suffix := endTime
	if len(suffix) > endTimeSuffixLen {
		suffix = suffix[len(suffix)-endTimeSuffixLen:]
	}
	return g + "_" + suffix
}

// Root converts a job guid with an end-time suffix back to the canonical
// guid. Guids without a suffix pass through unchanged.
func Root(g string) string {
	if i := strings.Index(g, "_"); i >= 0 {
		return g[:i]
	}
	return g
}

// RevisionHash builds the push identity for an ordered set of revisions.
// Order affects the digest, so callers must supply the same order across
// calls that must match.
func RevisionHash(revisions []string) string {
	h := sha1.New() //nolint:gosec // identity hashing, not security
	for _, r := range revisions {
		h.Write([]byte(r))
	}
	return hex.EncodeToString(h.Sum(nil))
}
