package adapter

import "time"

// Clock is the time source of the engine. Offer expiry, income ticks and
// event timestamps all read it, so tests can move time by hand.
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewClock returns the wall clock, in UTC
func NewClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
