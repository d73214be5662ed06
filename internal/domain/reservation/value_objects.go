package reservation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidSlotFormat      = errors.New("invalid date or time format")
	ErrPastDate               = errors.New("reservation date is in the past")
	ErrPastTime               = errors.New("reservation time is in the past")
	ErrInvalidPartySize       = errors.New("party size must be between 1 and 20")
	ErrInvalidGuestName       = errors.New("guest name must be between 2 and 100 characters")
	ErrInvalidGuestEmail      = errors.New("invalid guest email")
	ErrInvalidGuestPhone      = errors.New("guest phone must be between 10 and 20 characters")
	ErrSpecialRequestsTooLong = errors.New("special requests must be at most 500 characters")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	MinPartySize = 1
	MaxPartySize = 20

	MaxSpecialRequestsLength = 500
)

// Slot identifies a bookable timeframe: a calendar date plus a wall-clock
// time with minute precision, no timezone.
type Slot struct {
	date    time.Time // midnight UTC of the calendar date
	minutes int       // minutes since midnight
}

func NewSlot(dateStr, timeStr string) (Slot, error) {
	date, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return Slot{}, ErrInvalidSlotFormat
	}

	t, err := time.ParseInLocation(timeLayout, timeStr, time.UTC)
	if err != nil {
		return Slot{}, ErrInvalidSlotFormat
	}

	return Slot{
		date:    date,
		minutes: t.Hour()*60 + t.Minute(),
	}, nil
}

func NewSlotAt(date time.Time, minutes int) Slot {
	y, m, d := date.Date()
	return Slot{
		date:    time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		minutes: minutes,
	}
}

func (s Slot) Date() time.Time { return s.date }
func (s Slot) Minutes() int    { return s.minutes }

func (s Slot) DateString() string {
	return s.date.Format(dateLayout)
}

func (s Slot) TimeString() string {
	return fmt.Sprintf("%02d:%02d", s.minutes/60, s.minutes%60)
}

func (s Slot) String() string {
	return s.DateString() + " " + s.TimeString()
}

// IsPastDate reports whether the slot's date is strictly before now's calendar date.
func (s Slot) IsPastDate(now time.Time) bool {
	ny, nm, nd := now.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return s.date.Before(today)
}

// IsPastTime reports whether the slot falls on now's calendar date at an
// already-elapsed wall-clock time.
func (s Slot) IsPastTime(now time.Time) bool {
	ny, nm, nd := now.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	if !s.date.Equal(today) {
		return false
	}
	return s.minutes < now.Hour()*60+now.Minute()
}

type PartySize struct {
	value int
}

func NewPartySize(v int) (PartySize, error) {
	if v < MinPartySize || v > MaxPartySize {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: v}, nil
}

func (p PartySize) Value() int { return p.value }

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// GuestContact holds the free-text contact fields a visitor submits with a booking.
type GuestContact struct {
	name  string
	email string
	phone string
}

func NewGuestContact(name, email, phone string) (GuestContact, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 100 {
		return GuestContact{}, ErrInvalidGuestName
	}

	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return GuestContact{}, ErrInvalidGuestEmail
	}

	phone = strings.TrimSpace(phone)
	if len(phone) < 10 || len(phone) > 20 {
		return GuestContact{}, ErrInvalidGuestPhone
	}

	return GuestContact{name: name, email: email, phone: phone}, nil
}

func (g GuestContact) Name() string  { return g.name }
func (g GuestContact) Email() string { return g.email }
func (g GuestContact) Phone() string { return g.phone }

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(s string) (SpecialRequests, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxSpecialRequestsLength {
		return SpecialRequests{}, ErrSpecialRequestsTooLong
	}
	return SpecialRequests{value: s}, nil
}

func (r SpecialRequests) String() string { return r.value }
func (r SpecialRequests) IsEmpty() bool  { return r.value == "" }
