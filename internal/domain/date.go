package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04:05"
)

// Date is a calendar date without a time component, stored as a Postgres date.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date format: %s", s)
	}

	return Date{t}, nil
}

func (d Date) Before(o Date) bool {
	return d.Time.Before(o.Time)
}

func (d Date) Equal(o Date) bool {
	return d.Time.Equal(o.Time)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}

	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == `null` {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(strings.Trim(str, `"`))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.Format(dateLayout), nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("unsupported scan type for Date: %T", value)
	}

	return nil
}

func (d *Date) scanString(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("cannot scan date: %w", err)
	}
	*d = parsed

	return nil
}

func (Date) GormDataType() string {
	return "date"
}

// TimeOfDay is a wall clock time stored as a Postgres time.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay accepts "15:04" and "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	layout := timeOfDayLayout
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time format: %s", s)
	}

	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTimeOfDay(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *TimeOfDay) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*t = TimeOfDay{Hour: v.Hour(), Minute: v.Minute(), Second: v.Second()}
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	default:
		return fmt.Errorf("unsupported scan type for TimeOfDay: %T", value)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	// Postgres may append fractional seconds.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return fmt.Errorf("cannot scan time: %w", err)
	}
	*t = parsed

	return nil
}

func (TimeOfDay) GormDataType() string {
	return "time"
}
