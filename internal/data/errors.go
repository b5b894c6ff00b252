package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrDatasetNotFound is returned when a project has no repository row.
	ErrDatasetNotFound = errors.New("no dataset for project")
	// ErrJobNotFound is returned when a job id does not resolve to a row.
	ErrJobNotFound = errors.New("job not found")
	// ErrBlobNotFound is returned when a guid has no objectstore row.
	ErrBlobNotFound = errors.New("object not found")
	// ErrPushNotFound is returned when a revision hash has no push row.
	ErrPushNotFound = errors.New("push not found")
	// ErrUnknownRefdataModel is returned for refdata collections this
	// service does not serve.
	ErrUnknownRefdataModel = errors.New("unknown refdata model")
)
