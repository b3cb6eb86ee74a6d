package model

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// dateTimeLayouts are tried in order when decoding a DateTime string. Values
// without a zone are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DateTime is a time.Time that decodes the date shapes session clients send:
// RFC 3339, a timestamp without zone, a bare date, or epoch milliseconds.
// It encodes as RFC 3339, and the zero value encodes as null.
type DateTime struct {
	time.Time
}

// MarshalJSON encodes d as RFC 3339, or null when zero.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return d.Time.MarshalJSON()
}

// UnmarshalJSON accepts null, epoch milliseconds or any of dateTimeLayouts.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	if len(data) > 0 && data[0] != '"' {
		ms, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid date %s", data)
		}
		d.Time = time.UnixMilli(ms).UTC()
		return nil
	}

	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid date %s", data)
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// Value reports nil for the zero DateTime, which makes it count as empty for
// validation.Required.
func (d DateTime) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}
