package domain

import (
	"encoding/json"
	"time"
)

// Date is an optional calendar date extracted from the DD.MM.YYYY text
// format used throughout the Bundestag exports.
//
// Valid is false when the source element held no parseable date. Raw always
// preserves the source text, so a record stored and re-read keeps exactly
// what the XML contained.
type Date struct {
	// Time is the calendar date. Only meaningful when Valid is true.
	Time time.Time

	// Valid indicates whether Time holds a date.
	Valid bool

	// Raw is the original element text, parseable or not.
	Raw string
}

// NewDate constructs a valid Date for the given calendar day.
func NewDate(year int, month time.Month, day int, raw string) Date {
	return Date{
		Time:  time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Valid: true,
		Raw:   raw,
	}
}

// TextDate constructs an absent Date that passes the source text through.
func TextDate(raw string) Date {
	return Date{Raw: raw}
}

// Equal reports whether two dates denote the same value, including the
// preserved source text.
func (d Date) Equal(other Date) bool {
	if d.Valid != other.Valid || d.Raw != other.Raw {
		return false
	}
	return !d.Valid || d.Time.Equal(other.Time)
}

// String returns the ISO date for valid dates, the raw text otherwise.
func (d Date) String() string {
	if d.Valid {
		return d.Time.Format("2006-01-02")
	}
	return d.Raw
}

// MarshalJSON encodes valid dates as ISO "YYYY-MM-DD" strings and absent
// dates as the raw source text, mirroring how the upstream data set stores
// either a date or its unparsed placeholder.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts either an ISO date string or arbitrary raw text.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		d.Time = t
		d.Valid = true
		d.Raw = s
		return nil
	}

	*d = Date{Raw: s}
	return nil
}
