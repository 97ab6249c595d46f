// Package contracttest holds port-level test suites run against every adapter
// of a port, so the in-memory and durable implementations cannot drift apart.
package contracttest

import (
	"context"
	"errors"
	"testing"

	"github.com/fitpoint-gym/member-client/internal/domain"
	kvstoreport "github.com/fitpoint-gym/member-client/internal/ports/out/kvstore"
	memberrepoport "github.com/fitpoint-gym/member-client/internal/ports/out/memberrepo"
	"github.com/fitpoint-gym/member-client/internal/record"
)

type CleanupFunc = func()

type KVStoreFactory func(t *testing.T) (kvstoreport.Store, CleanupFunc)

// RunKVStore exercises the kvstore.Store contract: zero-value reads for
// absent keys, read-your-writes, overwrite, and idempotent clear.
func RunKVStore(t *testing.T, newStore KVStoreFactory) {
	t.Helper()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	// Absent keys read as zero values.
	b, err := store.GetBool("missing")
	if err != nil || b {
		t.Fatalf("GetBool(missing) = %v, %v; want false, nil", b, err)
	}
	v, ok, err := store.GetString("missing")
	if err != nil || ok || v != "" {
		t.Fatalf("GetString(missing) = %q, %v, %v; want empty, false, nil", v, ok, err)
	}

	// Read-your-writes.
	if err := store.PutBool("flag", true); err != nil {
		t.Fatalf("PutBool: %v", err)
	}
	if err := store.PutString("name", "Yuzuha Ukonami"); err != nil {
		t.Fatalf("PutString: %v", err)
	}
	b, err = store.GetBool("flag")
	if err != nil || !b {
		t.Fatalf("GetBool(flag) = %v, %v; want true, nil", b, err)
	}
	v, ok, err = store.GetString("name")
	if err != nil || !ok || v != "Yuzuha Ukonami" {
		t.Fatalf("GetString(name) = %q, %v, %v", v, ok, err)
	}

	// Overwrite semantics.
	if err := store.PutString("name", "Someone Else"); err != nil {
		t.Fatalf("PutString overwrite: %v", err)
	}
	v, _, _ = store.GetString("name")
	if v != "Someone Else" {
		t.Fatalf("expected overwritten value, got %q", v)
	}

	// Clear is idempotent: clearing twice leaves the same final state as once.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
	if b, _ := store.GetBool("flag"); b {
		t.Fatalf("expected flag gone after clear")
	}
	if _, ok, _ := store.GetString("name"); ok {
		t.Fatalf("expected name gone after clear")
	}
}

// MemberRepoHarness drives one member store adapter under test: seeding
// records on the adapter's own storage and simulating loss of connectivity.
type MemberRepoHarness interface {
	Repo() memberrepoport.Repository
	Put(id domain.MemberID, m record.Member)
	SetOffline(offline bool)
}

type MemberRepoFactory func(t *testing.T) MemberRepoHarness

// RunMemberRepo exercises the memberrepo.Repository contract: the closed set
// of fetch outcomes, and the pin-then-capture behavior that keeps a pinned
// record resolvable without connectivity.
func RunMemberRepo(t *testing.T, newHarness MemberRepoFactory) {
	t.Helper()
	ctx := context.Background()

	h := newHarness(t)
	repo := h.Repo()

	h.Put("42", record.Member{
		PersonalInfo: map[string]any{"firstname": "Yuzuha", "lastname": "Ukonami"},
		GymData:      map[string]any{"uid": "tok-42"},
	})

	// A present key resolves to its record.
	m, err := repo.FetchByID(ctx, "42")
	if err != nil {
		t.Fatalf("FetchByID(42): %v", err)
	}
	if got := m.Personal().FullName(); got != "Yuzuha Ukonami" {
		t.Fatalf("FullName = %q", got)
	}

	// An absent key is a definitive miss.
	if _, err := repo.FetchByID(ctx, "404"); !errors.Is(err, memberrepoport.ErrNotFound) {
		t.Fatalf("absent key err = %v, want ErrNotFound", err)
	}

	// Connectivity loss with nothing captured is unavailable, even for a key
	// fetched before: only pinned keys are retained.
	h.SetOffline(true)
	if _, err := repo.FetchByID(ctx, "42"); !errors.Is(err, memberrepoport.ErrUnavailable) {
		t.Fatalf("unpinned offline err = %v, want ErrUnavailable", err)
	}
	h.SetOffline(false)

	// A pinned key fetched online captures a replica that serves offline.
	repo.Pin(ctx, "42")
	if _, err := repo.FetchByID(ctx, "42"); err != nil {
		t.Fatalf("online fetch of pinned key: %v", err)
	}
	h.SetOffline(true)
	m, err = repo.FetchByID(ctx, "42")
	if err != nil {
		t.Fatalf("offline fetch of pinned key: %v", err)
	}
	if got := m.Gym().UID(); got != "tok-42" {
		t.Fatalf("UID from replica = %q", got)
	}

	// Other keys stay unavailable offline.
	if _, err := repo.FetchByID(ctx, "404"); !errors.Is(err, memberrepoport.ErrUnavailable) {
		t.Fatalf("other key offline err = %v, want ErrUnavailable", err)
	}
}
