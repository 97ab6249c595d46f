package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fitpoint-gym/member-client/internal/adapters/contracttest"
	kvstoreport "github.com/fitpoint-gym/member-client/internal/ports/out/kvstore"
)

func TestStore_Contract(t *testing.T) {
	t.Parallel()

	contracttest.RunKVStore(t, func(t *testing.T) (kvstoreport.Store, contracttest.CleanupFunc) {
		s, err := Open(filepath.Join(t.TempDir(), "session.json"))
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		return s, nil
	})
}

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.PutBool("is_logged_in", true); err != nil {
		t.Fatalf("PutBool: %v", err)
	}
	if err := s.PutString("member_id", "42"); err != nil {
		t.Fatalf("PutString: %v", err)
	}

	// A fresh Store over the same path models a process restart.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	b, err := s2.GetBool("is_logged_in")
	if err != nil || !b {
		t.Fatalf("GetBool after reopen = %v, %v; want true", b, err)
	}
	v, ok, err := s2.GetString("member_id")
	if err != nil || !ok || v != "42" {
		t.Fatalf("GetString after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestStore_ClearPersists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.PutString("member_id", "42"); err != nil {
		t.Fatalf("PutString: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, ok, _ := s2.GetString("member_id"); ok {
		t.Fatalf("expected cleared state after reopen")
	}
}

func TestOpen_MissingFileIsEmptyStore(t *testing.T) {
	t.Parallel()

	s, err := Open(filepath.Join(t.TempDir(), "nested", "dir", "session.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if b, _ := s.GetBool("is_logged_in"); b {
		t.Fatalf("fresh store should be empty")
	}
}

func TestOpen_RejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatalf("expected error opening corrupt store")
	}
}
