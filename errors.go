package skiplist

import "errors"

// Status errors returned by EraseNode and Erase. Insert never reports
// failure: retry on structural races is internal (spec §7).
var (
	// ErrAlreadyRemoved is returned when the node's tombstone was already
	// set before this call.
	ErrAlreadyRemoved = errors.New("skiplist: node already removed")

	// ErrBusy is returned when the node's beingModified CAS lock is held
	// by another writer. Erase retries internally on this; EraseNode
	// callers decide for themselves whether to retry.
	ErrBusy = errors.New("skiplist: node is being modified by another writer")

	// ErrAlreadyUnlinked is returned when, after acquiring the lock,
	// isFullyLinked was already false: another remover finished first.
	ErrAlreadyUnlinked = errors.New("skiplist: node already unlinked")

	// ErrNotFound is returned by Erase when no node compares equal to
	// the query.
	ErrNotFound = errors.New("skiplist: key not found")
)
