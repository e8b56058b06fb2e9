package platform

import (
	"errors"
)

var (
	// ErrAlreadyRunning is an error returned when run can't be started because previous run is not finished yet.
	ErrAlreadyRunning = errors.New("ingestion already running for this site")
	// ErrNotFound is returned by storage lookups when there is no matching record.
	ErrNotFound = errors.New("record not found")
	// ErrSessionClosed is returned when storage session is used after commit, rollback or close.
	ErrSessionClosed = errors.New("storage session is closed")
	// ErrAnimalWritesStarted is returned when shelter is resolved after animal writes already started.
	ErrAnimalWritesStarted = errors.New("animal writes already started in this session")
)
