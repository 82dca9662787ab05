package csaf

import (
	"encoding/json"
	"time"

	"github.com/araddon/dateparse"
)

// Timestamp is a date-time kept in canonical RFC 3339 textual form. Input
// accepts any common representation (RFC 3339 with or without sub-second
// digits, plain dates, and the other formats dateparse recognizes); the
// stored form is normalized so a value always re-serializes to the same
// bytes.
type Timestamp string

// NewTimestamp returns the canonical form of t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.Format(time.RFC3339Nano))
}

// Time parses the canonical form back into a time.Time.
func (ts Timestamp) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, string(ts))
}

// UnmarshalJSON implements json.Unmarshaler, normalizing the input to the
// canonical form.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return &TypeMismatchError{Expected: "date-time", Found: s}
	}
	*ts = NewTimestamp(t)
	return nil
}
