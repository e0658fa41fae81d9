package models

import (
	"errors"
	"time"
)

// DayLayout is the calendar-day form appointment dates are matched on.
const DayLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	DayLayout,
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon Jan 02 2006",
}

var ErrInvalidDate = errors.New("invalid date")

// NormalizeDay parses the supplied date and returns its calendar day,
// dropping any time-of-day component.
func NormalizeDay(raw string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DayLayout), nil
		}
	}
	return "", ErrInvalidDate
}

// BookingKey extracts the (email, serviceName) pair used for the duplicate check.
func BookingKey(apt Document) (email, serviceName string) {
	email, _ = apt["email"].(string)
	serviceName, _ = apt["serviceName"].(string)
	return email, serviceName
}
