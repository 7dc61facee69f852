package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RawMarathon is the union of the shapes a marathon record may arrive in:
// the canonical API shape (name/date/distances/participants/price) and the
// relational row shape (title/event_date/courses/participant_limit/fee).
// Both sets of fields are declared explicitly so the conversion in package
// normalize stays exhaustive instead of probing for field presence at
// runtime. A RawMarathon is consumed once by normalization and discarded.
type RawMarathon struct {
	ID FlexInt `json:"id"`

	// Canonical field on the left, relational column on the right.
	Name  string `json:"name"`
	Title string `json:"title"`

	Date      string `json:"date"`
	EventDate string `json:"event_date"`

	Location string `json:"location"`
	Country  string `json:"country"`
	Type     string `json:"type"`

	Distances []string `json:"distances"`
	Courses   string   `json:"courses"` // comma-delimited, e.g. "Full, 10km, 5km"

	Participants     string     `json:"participants"`
	ParticipantLimit FlexString `json:"participant_limit"`

	Difficulty string `json:"difficulty"` // easy/medium/hard or 하/중/상 or 초급/중급/고급

	Price string     `json:"price"`
	Fee   FlexString `json:"fee"`

	Scenery string  `json:"scenery"`
	Review  *string `json:"review"`

	Weather *RawWeather `json:"weather"`

	Website   string      `json:"website"`
	SourceURL string      `json:"source_url"`
	Details   *RawDetails `json:"details"`

	IsMajor bool `json:"is_major"`
}

// RawWeather is the optional nested weather object; every leaf may be empty.
type RawWeather struct {
	Condition   string `json:"condition"`
	Temperature string `json:"temperature"`
	Description string `json:"description"`
}

// RawDetails is the optional nested details object; every leaf may be empty.
type RawDetails struct {
	CourseDescription string   `json:"courseDescription"`
	Elevation         string   `json:"elevation"`
	Services          []string `json:"services"`
	Deadline          string   `json:"deadline"`
	Website           string   `json:"website"`
	StartTime         string   `json:"startTime"`
	Parking           string   `json:"parking"`
}

// FlexInt decodes a JSON number or a numeric string into an int. Anything
// else decodes to 0, the sentinel for an absent or invalid identifier.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

// FlexString decodes a JSON string or number into a string, preserving the
// original token so unparsable values can pass through display formatting
// unchanged.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}
