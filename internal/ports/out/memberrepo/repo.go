package memberrepo

import (
	"context"

	"github.com/fitpoint-gym/member-client/internal/domain"
	"github.com/fitpoint-gym/member-client/internal/record"
)

// Repository is the facade over the remote synchronized member store.
//
// FetchByID resolves exactly one of three outcomes: the record (nil error),
// ErrNotFound, or ErrUnavailable. No other error crosses this boundary:
// transport faults, malformed payloads and cache misses are all folded into
// the closed set so flows never have to reason about adapter internals.
type Repository interface {
	FetchByID(ctx context.Context, id domain.MemberID) (record.Member, error)

	// Pin asks the store to retain a local replica of the key so a later
	// FetchByID can succeed without connectivity. It is a hint: adapters
	// without offline support may ignore it.
	Pin(ctx context.Context, id domain.MemberID)
}
