package kernel

import "time"

// Clock abstracts the time source. Availability rules and audit timestamps
// depend on the current instant; injecting a Clock keeps them deterministic
// under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}
