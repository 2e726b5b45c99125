package intern

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory is returned when storing a string would exceed the
	// table's byte budget.
	ErrOutOfMemory = errors.New("intern: out of memory")

	// ErrInvalidHandle is the cause of every invalid-handle panic.
	ErrInvalidHandle = errors.New("intern: invalid handle")

	ErrBuilderConsumed = errors.New("intern: builder already consumed")
	ErrBuildOverflow   = errors.New("intern: write exceeds builder capacity")

	ErrDuplicateStatic    = errors.New("intern: duplicate static string")
	ErrAlreadyInitialized = errors.New("intern: default table already initialized")
	ErrNotInitialized     = errors.New("intern: default table not initialized")

	// ErrSnapshotMismatch means a snapshot cannot reproduce its handles in
	// the target table.
	ErrSnapshotMismatch = errors.New("intern: snapshot does not match table")
)

// InvalidHandleError reports an accessor called with Null or with a handle
// the table never assigned.
type InvalidHandleError struct {
	Handle Handle
	Count  uint32
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("intern: invalid handle %d (table holds %d strings)", e.Handle, e.Count)
}

func (e *InvalidHandleError) Unwrap() error {
	return ErrInvalidHandle
}
