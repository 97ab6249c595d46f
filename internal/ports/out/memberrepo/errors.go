package memberrepo

import "errors"

var (
	// ErrNotFound indicates no record exists at the key, on the remote store
	// or in any reachable replica. A record that cannot be decoded by any
	// decoder is reported the same way.
	ErrNotFound = errors.New("member record not found")

	// ErrUnavailable indicates the remote store is unreachable and no pinned
	// replica could satisfy the fetch.
	ErrUnavailable = errors.New("member store unavailable")
)
