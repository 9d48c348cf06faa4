package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidSlot = errors.New("time slot must be an hour between 08:00 and 23:00")
	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
)

const (
	FirstHour    = 8
	LastHour     = 23
	SlotsPerDay  = LastHour - FirstHour + 1
	SlotDuration = 60 * time.Minute
	DateLayout   = "2006-01-02"
)

// Slot is the starting hour of a 60 minute interval.
type Slot int

// ParseSlot accepts only canonical "HH:00" labels.
func ParseSlot(label string) (Slot, error) {
	if len(label) != 5 || label[2] != ':' || label[3:] != "00" || !isDigit(label[0]) || !isDigit(label[1]) {
		return 0, ErrInvalidSlot
	}
	hour := int(label[0]-'0')*10 + int(label[1]-'0')
	if hour < FirstHour || hour > LastHour {
		return 0, ErrInvalidSlot
	}
	return Slot(hour), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (s Slot) Hour() int {
	return int(s)
}

func (s Slot) String() string {
	return fmt.Sprintf("%02d:00", int(s))
}

func (s Slot) IsValid() bool {
	return int(s) >= FirstHour && int(s) <= LastHour
}

// AllSlots returns the canonical slots of a day in ascending order.
func AllSlots() []Slot {
	slots := make([]Slot, 0, SlotsPerDay)
	for h := FirstHour; h <= LastHour; h++ {
		slots = append(slots, Slot(h))
	}
	return slots
}

// Date is a calendar day without time of day.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}
