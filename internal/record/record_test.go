package record

import (
	"encoding/json"
	"testing"
)

func TestAccessors_DefaultsOnAbsence(t *testing.T) {
	t.Parallel()

	// Fully absent sections.
	var m Member
	if got := m.Personal().FirstName(); got != "" {
		t.Fatalf("FirstName on nil section = %q, want empty", got)
	}
	if got := m.Terms().PaymentAmount(); got != 0 {
		t.Fatalf("PaymentAmount on nil section = %d, want 0", got)
	}
	if m.Gym().CheckedIn() {
		t.Fatalf("CheckedIn on nil section = true, want false")
	}

	// Sections present, fields missing.
	m = Member{
		PersonalInfo: map[string]any{},
		Membership:   map[string]any{"status": "active"},
		GymData:      map[string]any{},
	}
	if got := m.Personal().Phone(); got != "" {
		t.Fatalf("Phone = %q, want empty", got)
	}
	if got := m.Terms().EndDate(); got != "" {
		t.Fatalf("EndDate = %q, want empty", got)
	}
	if got := m.Gym().UID(); got != "" {
		t.Fatalf("UID = %q, want empty", got)
	}
}

func TestStringAccessor_NumericRepresentations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  any
		want string
	}{
		{"string", "0712345678", "0712345678"},
		{"int", 42, "42"},
		{"int64", int64(9000000001), "9000000001"},
		{"float64 integral", float64(42), "42"},
		{"json.Number", json.Number("42"), "42"},
		{"bool is not a string", true, ""},
		{"float64 fractional", 42.5, ""},
		{"nested map", map[string]any{"x": 1}, ""},
	}
	for _, tc := range cases {
		m := Member{PersonalInfo: map[string]any{"phone": tc.raw}}
		if got := m.Personal().Phone(); got != tc.want {
			t.Fatalf("%s: Phone = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestIntAccessor_HeterogeneousEncodings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  any
		want int
	}{
		{"int", 7, 7},
		{"int8", int8(7), 7},
		{"int16", int16(7), 7},
		{"int32", int32(7), 7},
		{"int64", int64(7), 7},
		{"uint", uint(7), 7},
		{"uint32", uint32(7), 7},
		{"float64 integral", float64(7), 7},
		{"json.Number", json.Number("7"), 7},
		{"decimal string", "7", 7},
		{"padded string", " 7 ", 7},
		{"garbage string", "seven", 0},
		{"float64 fractional", 7.25, 0},
		{"bool", true, 0},
		{"absent", nil, 0},
	}
	for _, tc := range cases {
		gym := map[string]any{}
		if tc.raw != nil {
			gym["total_visits"] = tc.raw
		}
		m := Member{GymData: gym}
		if got := m.Gym().TotalVisits(); got != tc.want {
			t.Fatalf("%s: TotalVisits = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestBoolAccessor(t *testing.T) {
	t.Parallel()

	m := Member{GymData: map[string]any{"is_checked_in": true}}
	if !m.Gym().CheckedIn() {
		t.Fatalf("CheckedIn = false, want true")
	}
	for _, raw := range []any{"true", 1, float64(1)} {
		m := Member{GymData: map[string]any{"is_checked_in": raw}}
		if m.Gym().CheckedIn() {
			t.Fatalf("CheckedIn with raw %v (%T) = true, want false", raw, raw)
		}
	}
}

func TestFullName(t *testing.T) {
	t.Parallel()

	m := Member{PersonalInfo: map[string]any{"firstname": "Yuzuha", "lastname": "Ukonami"}}
	if got := m.Personal().FullName(); got != "Yuzuha Ukonami" {
		t.Fatalf("FullName = %q", got)
	}

	// A missing half must not leave a stray separator.
	m = Member{PersonalInfo: map[string]any{"firstname": "Yuzuha"}}
	if got := m.Personal().FullName(); got != "Yuzuha" {
		t.Fatalf("FullName with missing last = %q", got)
	}
	var empty Member
	if got := empty.Personal().FullName(); got != "" {
		t.Fatalf("FullName on empty record = %q", got)
	}
}
