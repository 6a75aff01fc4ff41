package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeSlot = errors.New("invalid time slot")

// TimeSlot is a half-open interval [start, start+duration).
type TimeSlot struct {
	start    time.Time
	duration time.Duration
}

func NewTimeSlot(start time.Time, durationMin int32) (TimeSlot, error) {
	if start.IsZero() || durationMin <= 0 {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{
		start:    start,
		duration: time.Duration(durationMin) * time.Minute,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.start.Add(ts.duration)
}

func (ts TimeSlot) DurationMinutes() int32 {
	return int32(ts.duration / time.Minute)
}

// Overlaps is the standard half-open test: touching endpoints do not conflict.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.End()) && other.start.Before(ts.End())
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.End().Format(time.RFC3339))
}
