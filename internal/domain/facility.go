// Package domain defines core types, interfaces, and errors for the
// accreditation pipeline.
package domain

import "encoding/json"

// Accreditation is a time-bounded certification attached to a facility.
// ValidUntil is an ISO-8601 date string as delivered by the upstream feed;
// it is parsed lazily so malformed values never abort a batch.
type Accreditation struct {
	Body       string `json:"accreditation_body"`
	ValidUntil string `json:"valid_until"`
}

// Facility is one record of the raw facility feed. Records are read-only to
// this system: the original JSON object is retained verbatim so that fields
// this pipeline does not model survive the round trip into the transformed
// artifact.
type Facility struct {
	Name           string          `json:"facility_name"`
	Accreditations []Accreditation `json:"accreditations"`

	raw json.RawMessage
}

// UnmarshalJSON decodes the modeled fields and keeps the original object.
func (f *Facility) UnmarshalJSON(data []byte) error {
	type alias Facility
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*f = Facility(a)
	f.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the original upstream object when the facility was
// decoded from the feed, falling back to the modeled fields for facilities
// constructed in code.
func (f Facility) MarshalJSON() ([]byte, error) {
	if len(f.raw) > 0 {
		return f.raw, nil
	}
	type alias Facility
	return json.Marshal(alias(f))
}
