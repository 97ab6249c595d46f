// Package dashboard derives the presentation metrics of a verified member
// record: remaining membership days, usage counters, and the identity token
// payload handed to the QR renderer.
package dashboard

import (
	"math"
	"time"

	clockport "github.com/fitpoint-gym/member-client/internal/ports/out/clock"
	"github.com/fitpoint-gym/member-client/internal/record"
)

// endDateLayout is the calendar-date form membership end dates are stored in.
const endDateLayout = "2006-01-02"

// RemainingDays reports the whole days left until the membership end date,
// rounded up and clamped at zero. An absent or unparsable end date reports 0:
// a record we cannot read an expiry from is shown as expired, never as valid.
func RemainingDays(m record.Member, today time.Time) int {
	endStr := m.Terms().EndDate()
	if endStr == "" {
		return 0
	}
	end, err := time.Parse(endDateLayout, endStr)
	if err != nil {
		return 0
	}
	days := int(math.Ceil(end.Sub(today).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// TokenPayload returns the string to encode into the check-in QR code.
// Empty means no token is derivable and nothing should be rendered.
func TokenPayload(m record.Member) string {
	return m.Gym().UID()
}

// Summary is everything the dashboard renders for one member.
type Summary struct {
	DisplayName      string
	MembershipStatus string
	RemainingDays    int
	TotalVisits      int
	TotalMinutes     int
	CheckedIn        bool
	TokenPayload     string
}

// Metrics computes dashboard summaries against an injected clock.
type Metrics struct {
	clk clockport.Clock
}

func NewMetrics(clk clockport.Clock) *Metrics {
	return &Metrics{clk: clk}
}

func (d *Metrics) Summarize(m record.Member) Summary {
	return Summary{
		DisplayName:      m.Personal().FullName(),
		MembershipStatus: m.Terms().Status(),
		RemainingDays:    RemainingDays(m, d.clk.Now()),
		TotalVisits:      m.Gym().TotalVisits(),
		TotalMinutes:     m.Gym().TotalTimeSpent(),
		CheckedIn:        m.Gym().CheckedIn(),
		TokenPayload:     TokenPayload(m),
	}
}
