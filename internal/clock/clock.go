package clock

import "time"

// Clock abstracts wall-clock access so sources can be tested against a fixed time.
type Clock interface {
	Now() time.Time
}

var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
