package clock

import "time"

// Clock abstracts "now" so services never read the wall clock directly.
// Every today/current-time rule in the stores goes through this, which is
// what makes the attendance upsert-by-today logic testable.
type Clock interface {
	Now() time.Time
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

type realClock struct{}

func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// Fixed is a test clock pinned to a single instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

// Today formats the clock's current day as an ISO date.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

// TimeOfDay formats the clock's current time as HH:MM:SS.
func TimeOfDay(c Clock) string {
	return c.Now().Format(TimeLayout)
}
