// Package timez provides the time facilities used by the deferred decorators:
// a cancellable scheduler abstraction, a virtual clock for tests,
// cron based delays and a JSON friendly duration.
package timez

import (
	"fmt"
	"time"
)

// Duration is a wrapper for [time.Duration] with JSON support.
// It is encoded as a Go duration string, for example "150ms".
type Duration struct {
	time.Duration
}

func Dur(d time.Duration) Duration {
	return Duration{Duration: d}
}

func (d Duration) IsZero() bool {
	return d.Duration == 0
}

// Or returns def if d is zero.
func (d Duration) Or(def time.Duration) time.Duration {
	if d.IsZero() {
		return def
	}
	return d.Duration
}

func (d Duration) MarshalJSON() (b []byte, err error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Duration) UnmarshalJSON(b []byte) (err error) {
	length := len(b)
	if len(b) <= 2 || b[0] != '"' || b[length-1] != '"' {
		return fmt.Errorf("invalid token: %s", b)
	}
	d.Duration, err = time.ParseDuration(string(b[1 : length-1]))
	return
}
