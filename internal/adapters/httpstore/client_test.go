package httpstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitpoint-gym/member-client/internal/adapters/contracttest"
	"github.com/fitpoint-gym/member-client/internal/domain"
	memberrepoport "github.com/fitpoint-gym/member-client/internal/ports/out/memberrepo"
	"github.com/fitpoint-gym/member-client/internal/record"
)

const recordJSON = `{
	"personal_info": {"firstname": "Yuzuha", "lastname": "Ukonami"},
	"membership": {"status": "active", "end_date": "2026-09-05"},
	"gym_data": {"uid": "tok-42", "total_visits": 12}
}`

// newStoreServer serves a fixed set of raw record payloads the way the real
// store does: 200 with the record body, or 200 "null" for absent keys.
func newStoreServer(t *testing.T, records map[string]string, lastInstance *atomic.Value) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/Customers/{key}", func(w http.ResponseWriter, req *http.Request) {
		if lastInstance != nil {
			lastInstance.Store(req.Header.Get("X-Client-Instance"))
		}
		id := strings.TrimSuffix(chi.URLParam(req, "key"), ".json")
		w.Header().Set("Content-Type", "application/json")
		body, ok := records[id]
		if !ok {
			w.Write([]byte("null"))
			return
		}
		w.Write([]byte(body))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// storeHarness runs the shared repository contract against a live test
// server, flipping it between serving records and answering 503.
type storeHarness struct {
	t *testing.T

	mu      sync.Mutex
	records map[string]string
	offline bool

	client *Client
}

func newStoreHarness(t *testing.T) *storeHarness {
	t.Helper()
	h := &storeHarness{t: t, records: make(map[string]string)}

	r := chi.NewRouter()
	r.Get("/Customers/{key}", func(w http.ResponseWriter, req *http.Request) {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.offline {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		id := strings.TrimSuffix(chi.URLParam(req, "key"), ".json")
		w.Header().Set("Content-Type", "application/json")
		body, ok := h.records[id]
		if !ok {
			w.Write([]byte("null"))
			return
		}
		w.Write([]byte(body))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	h.client = New(Config{BaseURL: srv.URL, ReplicaDir: t.TempDir(), Timeout: time.Second})
	return h
}

func (h *storeHarness) Repo() memberrepoport.Repository { return h.client }

func (h *storeHarness) Put(id domain.MemberID, m record.Member) {
	body, err := json.Marshal(map[string]any{
		"personal_info":      m.PersonalInfo,
		"membership":         m.Membership,
		"gym_data":           m.GymData,
		"attendance_history": m.AttendanceHistory,
	})
	if err != nil {
		h.t.Fatalf("marshaling record: %v", err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records[string(id)] = string(body)
}

func (h *storeHarness) SetOffline(offline bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.offline = offline
}

func TestClient_Contract(t *testing.T) {
	t.Parallel()
	contracttest.RunMemberRepo(t, func(t *testing.T) contracttest.MemberRepoHarness {
		return newStoreHarness(t)
	})
}

func TestClient_FetchFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var lastInstance atomic.Value
	srv := newStoreServer(t, map[string]string{"42": recordJSON}, &lastInstance)

	c := New(Config{BaseURL: srv.URL, InstanceID: "install-abc"})
	m, err := c.FetchByID(ctx, "42")
	if err != nil {
		t.Fatalf("FetchByID: %v", err)
	}
	if got := m.Personal().FullName(); got != "Yuzuha Ukonami" {
		t.Fatalf("FullName = %q", got)
	}
	if got := lastInstance.Load(); got != "install-abc" {
		t.Fatalf("X-Client-Instance = %v", got)
	}
}

func TestClient_UndecodableRecordIsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srv := newStoreServer(t, map[string]string{"42": `"not an object"`}, nil)
	c := New(Config{BaseURL: srv.URL})

	_, err := c.FetchByID(ctx, "42")
	if !errors.Is(err, memberrepoport.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestClient_TransportFailureWithoutReplicaIsUnavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srv := newStoreServer(t, map[string]string{"42": recordJSON}, nil)
	base := srv.URL
	srv.Close()

	c := New(Config{BaseURL: base, ReplicaDir: t.TempDir(), Timeout: time.Second})
	c.Pin(ctx, "42")

	_, err := c.FetchByID(ctx, "42")
	if !errors.Is(err, memberrepoport.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestClient_ReplicaSurvivesRestart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srv := newStoreServer(t, map[string]string{"42": recordJSON}, nil)
	replicaDir := t.TempDir()

	c := New(Config{BaseURL: srv.URL, ReplicaDir: replicaDir})
	c.Pin(ctx, "42")
	if _, err := c.FetchByID(ctx, "42"); err != nil {
		t.Fatalf("online fetch: %v", err)
	}
	srv.Close()

	// A fresh client over the same replica dir models a process restart.
	c2 := New(Config{BaseURL: srv.URL, ReplicaDir: replicaDir, Timeout: time.Second})
	c2.Pin(ctx, "42")
	if _, err := c2.FetchByID(ctx, "42"); err != nil {
		t.Fatalf("fetch from replica after restart: %v", err)
	}
}

func TestClient_NotFoundIsNeverMaskedByReplica(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	records := map[string]string{"42": recordJSON}
	srv := newStoreServer(t, records, nil)
	replicaDir := t.TempDir()

	c := New(Config{BaseURL: srv.URL, ReplicaDir: replicaDir})
	c.Pin(ctx, "42")
	if _, err := c.FetchByID(ctx, "42"); err != nil {
		t.Fatalf("online fetch: %v", err)
	}

	// The record is deleted upstream while the store stays reachable: the
	// definitive miss wins over the stale replica.
	delete(records, "42")
	_, err := c.FetchByID(ctx, "42")
	if !errors.Is(err, memberrepoport.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
