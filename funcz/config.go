package funcz

import (
	"errors"
	"fmt"
	"time"

	"github.com/adobaai/underbar/encodingz/jsonz"
	"github.com/adobaai/underbar/timez"
)

// ErrInvalidConfig is returned by [ParseConfig] for out of range values.
var ErrInvalidConfig = errors.New("funcz: invalid config")

// Config holds the tunables of the decorators in a JSON friendly form:
//
//	{"wait": "250ms", "max_entries": 1000}
type Config struct {
	Wait       timez.Duration `json:"wait"`
	MaxEntries int            `json:"max_entries"` // 0 means unbounded
}

// ParseConfig decodes and validates a JSON config.
func ParseConfig(bs []byte) (*Config, error) {
	c, err := jsonz.Unmarshal[Config](bs)
	if err != nil {
		return nil, fmt.Errorf("funcz: parse config: %w", err)
	}
	if c.Wait.Duration < 0 {
		return nil, fmt.Errorf("%w: negative wait %s", ErrInvalidConfig, c.Wait)
	}
	if c.MaxEntries < 0 {
		return nil, fmt.Errorf("%w: negative max_entries %d", ErrInvalidConfig, c.MaxEntries)
	}
	return c, nil
}

// WaitOr returns the configured wait, or def if it is not set.
func (c *Config) WaitOr(def time.Duration) time.Duration {
	return c.Wait.Or(def)
}

// ConfigStore returns the memo store factory described by c:
// an [OtterStore] when MaxEntries is set, a [MapStore] otherwise.
func ConfigStore[R any](c *Config) StoreFactory[R] {
	if c.MaxEntries > 0 {
		return OtterStore[R](c.MaxEntries)
	}
	return MapStore[R]
}
