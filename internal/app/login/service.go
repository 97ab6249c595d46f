// Package login orchestrates the two session-establishing flows: verifying a
// fresh identity claim, and silently restoring a prior session at startup.
package login

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/fitpoint-gym/member-client/internal/domain"
	"github.com/fitpoint-gym/member-client/internal/ports/out/memberrepo"
	"github.com/fitpoint-gym/member-client/internal/record"
	"github.com/fitpoint-gym/member-client/internal/session"
)

type Service struct {
	repo     memberrepo.Repository
	sessions *session.Store

	// inFlight debounces duplicate submissions: at most one login attempt
	// runs at a time.
	inFlight atomic.Bool
}

func NewService(repo memberrepo.Repository, sessions *session.Store) *Service {
	return &Service{repo: repo, sessions: sessions}
}

// AttemptLogin verifies the claim against the member record and, on success,
// establishes the session and returns the record.
//
// Failure outcomes are *Error values: INVALID_INPUT (empty id or name, no
// fetch issued), MEMBER_NOT_FOUND, NETWORK_UNAVAILABLE, NAME_MISMATCH, and
// LOGIN_IN_PROGRESS. Only the successful outcome touches the session store.
func (s *Service) AttemptLogin(ctx context.Context, c Claim) (record.Member, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return record.Member{}, &Error{Code: "LOGIN_IN_PROGRESS", Message: "a login attempt is already running"}
	}
	defer s.inFlight.Store(false)

	id := domain.MemberID(strings.TrimSpace(c.MemberID))
	claimedName := domain.NormalizeHumanName(c.FullName)
	if id == "" || claimedName == "" {
		return record.Member{}, &Error{Code: "INVALID_INPUT", Message: "member id and full name are required"}
	}

	// Pin first so the successful fetch seeds the offline replica.
	s.repo.Pin(ctx, id)

	m, err := s.repo.FetchByID(ctx, id)
	switch {
	case errors.Is(err, memberrepo.ErrNotFound):
		return record.Member{}, &Error{Code: "MEMBER_NOT_FOUND", Message: "no member exists with that id"}
	case errors.Is(err, memberrepo.ErrUnavailable):
		return record.Member{}, &Error{Code: "NETWORK_UNAVAILABLE", Message: "the member store is unreachable"}
	case err != nil:
		return record.Member{}, err
	}

	p := m.Personal()
	if !domain.VerifyClaimedName(claimedName, p.FirstName(), p.LastName()) {
		slog.Info("login rejected", "member_id", id, "reason", "name mismatch")
		return record.Member{}, &Error{Code: "NAME_MISMATCH", Message: "the name does not match our records"}
	}

	s.sessions.Save(id, p.FullName())
	slog.Info("member authenticated", "member_id", id)
	return m, nil
}

// Restore re-establishes the dashboard from a stored session.
//
// NO_SESSION means nothing is stored and the user must log in. A stored
// session whose record can no longer be resolved anywhere, whether deleted
// upstream or unreachable with no replica, is cleared and reported as
// SESSION_INVALID, forcing re-login rather than trusting a session no record
// backs.
func (s *Service) Restore(ctx context.Context) (record.Member, error) {
	if !s.sessions.IsLoggedIn() {
		return record.Member{}, &Error{Code: "NO_SESSION", Message: "no stored session"}
	}
	id, ok := s.sessions.MemberID()
	if !ok {
		s.sessions.Clear()
		return record.Member{}, &Error{Code: "NO_SESSION", Message: "no stored session"}
	}

	s.repo.Pin(ctx, id)

	m, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		s.sessions.Clear()
		slog.Info("stored session invalidated", "member_id", id, "error", err)
		return record.Member{}, &Error{Code: "SESSION_INVALID", Message: "your session could not be restored, please log in again"}
	}
	slog.Info("session restored", "member_id", id)
	return m, nil
}

// Logout destroys the session. Logging out while logged out is a no-op.
func (s *Service) Logout() {
	s.sessions.Clear()
	slog.Info("logged out")
}
