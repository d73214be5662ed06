package event

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidTitle       = errors.New("title must be between 2 and 200 characters")
	ErrDescriptionTooLong = errors.New("description must be at most 2000 characters")
	ErrPastEventDate      = errors.New("event date is in the past")
	ErrEndBeforeStart     = errors.New("end date is before the event date")
)

const MaxDescriptionLength = 2000

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if len(t) < 2 || len(t) > 200 {
		return Title{}, ErrInvalidTitle
	}
	return Title{value: t}, nil
}

func (t Title) String() string { return t.value }

type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{value: t}, nil
}

func (d Description) String() string { return d.value }

// Schedule is the date span an event runs over. Single-day events carry the
// same start and end date.
type Schedule struct {
	startDate time.Time
	endDate   time.Time
}

func NewSchedule(startDate, endDate time.Time, now time.Time) (Schedule, error) {
	start := truncateToDate(startDate)
	end := truncateToDate(endDate)
	today := truncateToDate(now)

	if start.Before(today) {
		return Schedule{}, ErrPastEventDate
	}
	if end.Before(start) {
		return Schedule{}, ErrEndBeforeStart
	}
	return Schedule{startDate: start, endDate: end}, nil
}

func ReconstructSchedule(startDate, endDate time.Time) Schedule {
	return Schedule{
		startDate: truncateToDate(startDate),
		endDate:   truncateToDate(endDate),
	}
}

func (s Schedule) StartDate() time.Time { return s.startDate }
func (s Schedule) EndDate() time.Time   { return s.endDate }

// IsUpcoming reports whether the event has not finished yet as of now.
func (s Schedule) IsUpcoming(now time.Time) bool {
	return !s.endDate.Before(truncateToDate(now))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
