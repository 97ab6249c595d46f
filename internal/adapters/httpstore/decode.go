package httpstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fitpoint-gym/member-client/internal/record"
)

// memberDecoders is the ordered decode pipeline for raw record payloads:
// a strict typed decode first, then a tolerant field-by-field decode over the
// same bytes. Resilience to partially malformed records is expressed as this
// list, not as exception-style control flow scattered through the client.
var memberDecoders = []func([]byte) (record.Member, error){
	decodeTyped,
	decodeGeneric,
}

var errEmptyRecord = errors.New("record payload carries no sections")

// DecodeMember runs the decode pipeline, returning the first success.
// It is exported for reuse by seed-file loaders that store raw record JSON.
func DecodeMember(data []byte) (record.Member, error) {
	var firstErr error
	for _, decode := range memberDecoders {
		m, err := decode(data)
		if err == nil {
			return m, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return record.Member{}, fmt.Errorf("decoding member record: %w", firstErr)
}

// wireMember mirrors the remote record shape for the strict decode path.
type wireMember struct {
	PersonalInfo      map[string]any `json:"personal_info"`
	Membership        map[string]any `json:"membership"`
	GymData           map[string]any `json:"gym_data"`
	AttendanceHistory map[string]any `json:"attendance_history"`
}

// decodeTyped is the structured path: unknown top-level keys or a section
// that is not an object fail the decode, handing off to decodeGeneric.
func decodeTyped(data []byte) (record.Member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	dec.DisallowUnknownFields()

	var w wireMember
	if err := dec.Decode(&w); err != nil {
		return record.Member{}, err
	}
	m := record.Member{
		PersonalInfo:      w.PersonalInfo,
		Membership:        w.Membership,
		GymData:           w.GymData,
		AttendanceHistory: w.AttendanceHistory,
	}
	if emptyRecord(m) {
		return record.Member{}, errEmptyRecord
	}
	return m, nil
}

// decodeGeneric is the fallback path: read the payload as a bare object and
// pick out whichever known sections are well-formed, skipping the rest.
func decodeGeneric(data []byte) (record.Member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return record.Member{}, err
	}
	m := record.Member{
		PersonalInfo:      asSection(raw["personal_info"]),
		Membership:        asSection(raw["membership"]),
		GymData:           asSection(raw["gym_data"]),
		AttendanceHistory: asSection(raw["attendance_history"]),
	}
	if emptyRecord(m) {
		return record.Member{}, errEmptyRecord
	}
	return m, nil
}

func asSection(v any) map[string]any {
	s, _ := v.(map[string]any)
	return s
}

func emptyRecord(m record.Member) bool {
	return m.PersonalInfo == nil && m.Membership == nil &&
		m.GymData == nil && m.AttendanceHistory == nil
}
