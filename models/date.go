package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned by ParseDate for input that is not one of the
// accepted wire shapes.
var ErrInvalidDate = fmt.Errorf("invalid date")

// Date is a calendar date without time-of-day or zone. The zero value means
// "no date" and is legal for optional fields.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates an instant to its calendar date in UTC.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate accepts the wire shapes the booking form and older clients send:
// "yyyy-mm-dd" (dash: first segment is the year), "dd/mm/yyyy" (slash:
// segments already in display order), an RFC3339 timestamp, or epoch
// seconds. Empty input yields the zero Date and no error.
func ParseDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Date{}, nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return DateOf(time.Unix(n, 0)), nil
	}
	if strings.Contains(raw, "T") {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
		}
		return DateOf(t), nil
	}

	var parts []string
	var y, m, d string
	switch {
	case strings.Contains(raw, "-"):
		parts = strings.Split(raw, "-")
		if len(parts) != 3 {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
		}
		y, m, d = parts[0], parts[1], parts[2]
	case strings.Contains(raw, "/"):
		parts = strings.Split(raw, "/")
		if len(parts) != 3 {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
		}
		y, m, d = parts[2], parts[1], parts[0]
	default:
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	year, err := strconv.Atoi(y)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	month, err := strconv.Atoi(m)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	day, err := strconv.Atoi(d)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	date := Date{Year: year, Month: time.Month(month), Day: day}
	if !date.valid() {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return date, nil
}

// valid reports whether the triple names a real calendar day (rejects e.g.
// 31/02) by round-tripping through time.Date normalization.
func (d Date) valid() bool {
	t := d.Time()
	return t.Year() == d.Year && t.Month() == d.Month && t.Day() == d.Day
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns the date as UTC midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String renders the canonical display form "dd/mm/yyyy"; the zero Date
// renders empty.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// GormDataType tells the store to keep dates as text: the stored form is
// the canonical display form, never a timestamp.
func (Date) GormDataType() string {
	return "string"
}

// Value stores the canonical display text, keeping stored and displayed
// forms identical.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
