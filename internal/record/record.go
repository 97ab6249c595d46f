// Package record models the loosely-structured member snapshot held in the
// remote store. Records arrive with fields missing, renamed by schema drift,
// or numerically encoded three different ways depending on which tool last
// wrote them; every accessor here is total and falls back to a documented
// default instead of failing.
package record

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Member is one member's stored profile. The four sections are raw key-value
// maps exactly as fetched; callers read them through the typed accessor views
// and never index the maps directly. A Member is immutable after construction.
type Member struct {
	PersonalInfo      map[string]any
	Membership        map[string]any
	GymData           map[string]any
	AttendanceHistory map[string]any // opaque, carried but not interpreted
}

// Personal returns the typed view over the personal_info section.
func (m Member) Personal() PersonalInfo { return PersonalInfo{section(m.PersonalInfo)} }

// Terms returns the typed view over the membership section.
func (m Member) Terms() MembershipTerms { return MembershipTerms{section(m.Membership)} }

// Gym returns the typed view over the gym_data section.
func (m Member) Gym() GymData { return GymData{section(m.GymData)} }

// PersonalInfo reads the personal_info section.
type PersonalInfo struct{ s section }

func (p PersonalInfo) FirstName() string { return p.s.str("firstname") }
func (p PersonalInfo) LastName() string  { return p.s.str("lastname") }
func (p PersonalInfo) Phone() string     { return p.s.str("phone") }

// FullName is the canonical "first last" display form. Either half may be
// absent; the result is trimmed so a missing half never leaves a stray space.
func (p PersonalInfo) FullName() string {
	return strings.TrimSpace(p.FirstName() + " " + p.LastName())
}

// MembershipTerms reads the membership section.
type MembershipTerms struct{ s section }

func (t MembershipTerms) Status() string     { return t.s.str("status") }
func (t MembershipTerms) StartDate() string  { return t.s.str("start_date") }
func (t MembershipTerms) EndDate() string    { return t.s.str("end_date") }
func (t MembershipTerms) PaymentAmount() int { return t.s.integer("payment_amount") }
func (t MembershipTerms) MonthsPaid() int    { return t.s.integer("months_paid") }
func (t MembershipTerms) RemainingDays() int { return t.s.integer("remaining_days") }

// GymData reads the gym_data section.
type GymData struct{ s section }

func (g GymData) CheckedIn() bool     { return g.s.boolean("is_checked_in") }
func (g GymData) TotalVisits() int    { return g.s.integer("total_visits") }
func (g GymData) TotalTimeSpent() int { return g.s.integer("total_time_spent") }

// UID is the member's opaque identity token, the payload encoded into the
// check-in QR code. Empty means no token can be derived for this member.
func (g GymData) UID() string { return g.s.str("uid") }

// section wraps one raw map. A nil section behaves like an empty one.
type section map[string]any

// str returns the field as a string: strings pass through, integer-like
// values render in decimal, everything else (including absence) is "".
func (s section) str(key string) string {
	v, ok := s[key]
	if !ok {
		return ""
	}
	if sv, ok := v.(string); ok {
		return sv
	}
	if n, ok := intValue(v); ok {
		return strconv.FormatInt(n, 10)
	}
	return ""
}

// integer returns the field as an int: integer-like values convert directly
// (wider types truncate), strings parse in base 10, everything else is 0.
func (s section) integer(key string) int {
	v, ok := s[key]
	if !ok {
		return 0
	}
	if n, ok := intValue(v); ok {
		return int(n)
	}
	if sv, ok := v.(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(sv))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// boolean returns the field as a bool, defaulting to false for anything that
// is not already a bool.
func (s section) boolean(key string) bool {
	b, _ := s[key].(bool)
	return b
}

// intValue reports whether v carries an integral value and returns it as
// int64. JSON decoding hands us float64 (or json.Number when the decoder is
// configured for it); records written by other clients can carry any native
// integer width.
func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
