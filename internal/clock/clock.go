package clock

import "time"

// Clock supplies the current instant. Usecases take one so tests can pin
// the date windows they depend on.
type Clock func() time.Time

// UTC is the production clock. Every stored date is a UTC calendar day.
func UTC() time.Time {
	return time.Now().UTC()
}

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

func (c Clock) Now() time.Time {
	if c == nil {
		return UTC()
	}
	return c().UTC()
}
