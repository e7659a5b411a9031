package request

import (
	"bytes"
	"fmt"
	"time"
)

// DateTimeLayout is the wire format for booking and request timestamps.
const DateTimeLayout = "2006-01-02T15:04:05"

var parseLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// DateTime is a time.Time that reads and writes the zone-less layout
// used by clients, falling back to RFC 3339 on input.
// It is a defined type over time.Time so the validator treats it as a time.
type DateTime time.Time

func NewDateTime(t time.Time) DateTime {
	return DateTime(t)
}

// Time returns the underlying time.Time.
func (d DateTime) Time() time.Time {
	return time.Time(d)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	t := d.Time()
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.In(time.Local).Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			*d = DateTime(t)
			return nil
		}
	}
	return fmt.Errorf("invalid datetime %q, expected %s", s, DateTimeLayout)
}
