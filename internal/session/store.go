// Package session holds the single local session slot: which member is
// currently using this client, durable across process restarts.
package session

import (
	"fmt"

	"github.com/fitpoint-gym/member-client/internal/domain"
	"github.com/fitpoint-gym/member-client/internal/ports/out/kvstore"
)

const (
	keyIsLoggedIn  = "is_logged_in"
	keyMemberID    = "member_id"
	keyDisplayName = "display_name"
)

// Store manages the session slot on top of an injected local key-value
// store. There is exactly one slot: Save replaces whatever was there.
//
// Reads and writes surface no errors. An underlying persistence failure is a
// platform fault this client cannot recover from, so it panics rather than
// letting a half-written session masquerade as a valid one.
type Store struct {
	kv kvstore.Store
}

func New(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Save records a logged-in session for the member, overwriting any prior one.
func (s *Store) Save(id domain.MemberID, displayName string) {
	must(s.kv.PutString(keyMemberID, string(id)))
	must(s.kv.PutString(keyDisplayName, displayName))
	must(s.kv.PutBool(keyIsLoggedIn, true))
}

// Clear resets to the logged-out state. Clearing twice is the same as once.
func (s *Store) Clear() {
	must(s.kv.Clear())
}

// IsLoggedIn reports whether a usable session exists. A logged-in flag
// without a member id does not count: the id is what restore needs.
func (s *Store) IsLoggedIn() bool {
	flag, err := s.kv.GetBool(keyIsLoggedIn)
	must(err)
	if !flag {
		return false
	}
	_, ok := s.MemberID()
	return ok
}

// MemberID returns the stored member id, if any.
func (s *Store) MemberID() (domain.MemberID, bool) {
	v, ok, err := s.kv.GetString(keyMemberID)
	must(err)
	if !ok || v == "" {
		return "", false
	}
	return domain.MemberID(v), true
}

// DisplayName returns the stored display name, if any.
func (s *Store) DisplayName() (string, bool) {
	v, ok, err := s.kv.GetString(keyDisplayName)
	must(err)
	return v, ok
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("session store: local persistence failed: %v", err))
	}
}
