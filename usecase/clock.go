package usecase

import "time"

// Clock lets tests pin "now"
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type FixedClock struct {
	Fixed time.Time
}

func (fc FixedClock) Now() time.Time {
	return fc.Fixed
}
