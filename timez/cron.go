package timez

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ErrNoActivation is returned when a cron spec never activates after the given time.
var ErrNoActivation = errors.New("timez: cron spec has no next activation")

// UntilNext returns the delay from now to the next activation of the
// standard five field cron spec, for example "30 9 * * 1-5".
// Descriptors like "@hourly" are accepted too.
func UntilNext(spec string, now time.Time) (time.Duration, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return 0, fmt.Errorf("timez: parse cron spec %q: %w", spec, err)
	}
	next := sched.Next(now)
	if next.IsZero() {
		return 0, fmt.Errorf("%w: %q", ErrNoActivation, spec)
	}
	return next.Sub(now), nil
}
