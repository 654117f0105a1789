package funcz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig([]byte(`{"wait":"250ms","max_entries":1000}`))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, c.WaitOr(time.Second))
	assert.Equal(t, 1000, c.MaxEntries)

	c, err = ParseConfig([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, time.Second, c.WaitOr(time.Second))

	_, err = ParseConfig([]byte(`{"wait":`))
	assert.ErrorContains(t, err, "funcz: parse config")

	_, err = ParseConfig([]byte(`{"wait":"1 day"}`))
	assert.Error(t, err)

	_, err = ParseConfig([]byte(`{"wait":"-1s"}`))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = ParseConfig([]byte(`{"max_entries":-1}`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigStore(t *testing.T) {
	s := ConfigStore[int](&Config{MaxEntries: 10})("ns")
	assert.IsType(t, otterStore[int]{}, s)

	s = ConfigStore[int](&Config{})("ns")
	assert.IsType(t, &mapStore[int]{}, s)

	var c int
	m := NewMemoizer(func(args ...any) int {
		c++
		return len(args)
	}, ConfigStore[int](&Config{MaxEntries: 10}))
	m.Call(1, 2)
	m.Call(1, 2)
	assert.Equal(t, 1, c)
}
