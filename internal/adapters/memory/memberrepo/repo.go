package memberrepo

import (
	"context"
	"sync"

	"github.com/fitpoint-gym/member-client/internal/domain"
	"github.com/fitpoint-gym/member-client/internal/ports/out/memberrepo"
	"github.com/fitpoint-gym/member-client/internal/record"
)

// Repo is an in-memory implementation of memberrepo.Repository. It is safe
// for concurrent use.
//
// It doubles as the offline-behavior model for tests: a successful fetch of a
// pinned key captures a replica, and with SetOffline(true) only captured
// replicas still resolve, matching the contract the real store adapter honors.
type Repo struct {
	mu         sync.RWMutex
	records    map[domain.MemberID]record.Member
	replicas   map[domain.MemberID]record.Member
	pinned     map[domain.MemberID]struct{}
	offline    bool
	fetchCalls int
}

func NewRepo() *Repo {
	return &Repo{
		records:  make(map[domain.MemberID]record.Member),
		replicas: make(map[domain.MemberID]record.Member),
		pinned:   make(map[domain.MemberID]struct{}),
	}
}

// Put seeds a record. Sections are shallow-copied so later mutation of the
// caller's maps cannot leak into stored state.
func (r *Repo) Put(id domain.MemberID, m record.Member) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[id] = cloneRecord(m)
}

// SetOffline toggles simulated loss of connectivity.
func (r *Repo) SetOffline(offline bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offline = offline
}

// FetchCalls reports how many times FetchByID has been invoked.
func (r *Repo) FetchCalls() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fetchCalls
}

// Pinned reports whether the key has been pinned.
func (r *Repo) Pinned(id domain.MemberID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.pinned[id]
	return ok
}

func (r *Repo) FetchByID(ctx context.Context, id domain.MemberID) (record.Member, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetchCalls++

	if r.offline {
		if replica, ok := r.replicas[id]; ok {
			return cloneRecord(replica), nil
		}
		return record.Member{}, memberrepo.ErrUnavailable
	}
	m, exists := r.records[id]
	if !exists {
		return record.Member{}, memberrepo.ErrNotFound
	}
	if _, pinned := r.pinned[id]; pinned {
		r.replicas[id] = cloneRecord(m)
	}
	return cloneRecord(m), nil
}

func (r *Repo) Pin(ctx context.Context, id domain.MemberID) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pinned[id] = struct{}{}
}

func cloneRecord(m record.Member) record.Member {
	return record.Member{
		PersonalInfo:      cloneSection(m.PersonalInfo),
		Membership:        cloneSection(m.Membership),
		GymData:           cloneSection(m.GymData),
		AttendanceHistory: cloneSection(m.AttendanceHistory),
	}
}

func cloneSection(s map[string]any) map[string]any {
	if s == nil {
		return nil
	}
	out := make(map[string]any, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
