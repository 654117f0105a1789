package funcz

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adobaai/underbar/testingz"
	"github.com/adobaai/underbar/timez"
)

var start = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

func closed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestDelay(t *testing.T) {
	t.Run("Fires", func(t *testing.T) {
		v := timez.NewVirtual(start)
		var c testingz.Counter[string]
		task := Delay(Bind(c.Func, "a", "b"), 500*time.Millisecond, WithScheduler(v))
		assert.False(t, task.ID().IsNil())

		v.Advance(499 * time.Millisecond)
		assert.Zero(t, c.N())
		assert.False(t, task.Fired())
		assert.False(t, closed(task.Done()))

		v.Advance(time.Millisecond)
		assert.Equal(t, [][]string{{"a", "b"}}, c.Calls())
		assert.True(t, task.Fired())
		assert.True(t, closed(task.Done()))
		assert.NoError(t, task.Err())

		assert.False(t, task.Cancel())
		v.Advance(time.Hour)
		assert.Equal(t, 1, c.N())
	})

	t.Run("Cancel", func(t *testing.T) {
		v := timez.NewVirtual(start)
		var c testingz.Counter[int]
		task := Delay(Bind(c.Func, 1), time.Second, WithScheduler(v))
		v.Advance(time.Millisecond)
		assert.True(t, task.Cancel())
		assert.False(t, task.Cancel())
		assert.True(t, closed(task.Done()))
		assert.Zero(t, v.Pending())

		v.Advance(time.Minute)
		assert.Zero(t, c.N())
		assert.False(t, task.Fired())
	})

	t.Run("BindCopiesArgs", func(t *testing.T) {
		v := timez.NewVirtual(start)
		var c testingz.Counter[int]
		args := []int{1, 2}
		Delay(Bind(c.Func, args...), time.Second, WithScheduler(v))
		args[0] = 9
		v.Advance(time.Second)
		assert.Equal(t, []int{1, 2}, c.Last())
	})

	t.Run("Panic", func(t *testing.T) {
		v := timez.NewVirtual(start)
		task := Delay(func() { panic("boom") }, time.Second,
			WithScheduler(v),
			WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
			WithTracerProvider(noop.NewTracerProvider()),
		)
		assert.NotPanics(t, func() { v.Advance(time.Second) })
		require.ErrorIs(t, task.Err(), ErrPanicked)
		assert.EqualError(t, task.Err(), "funcz: delayed call panicked: boom")
		assert.True(t, closed(task.Done()))
	})

	t.Run("Order", func(t *testing.T) {
		v := timez.NewVirtual(start)
		var c testingz.Counter[string]
		Delay(Bind(c.Func, "late"), 2*time.Second, WithScheduler(v))
		Delay(Bind(c.Func, "early"), time.Second, WithScheduler(v))
		v.Advance(time.Minute)
		assert.Equal(t, [][]string{{"early"}, {"late"}}, c.Calls())
	})

	t.Run("System", func(t *testing.T) {
		var c testingz.Counter[int]
		begin := time.Now()
		task := Delay(Bind(c.Func, 7), 5*time.Millisecond)
		select {
		case <-task.Done():
		case <-time.After(time.Second):
			t.Fatal("delayed call did not run in time")
		}
		assert.GreaterOrEqual(t, time.Since(begin), 5*time.Millisecond)
		assert.Equal(t, []int{7}, c.Last())
	})
}

func TestDelayUntil(t *testing.T) {
	v := timez.NewVirtual(start)
	var c testingz.Counter[string]
	task, err := DelayUntil(Bind(c.Func, "standup"), "30 8 * * *", WithScheduler(v))
	require.NoError(t, err)

	v.Advance(29 * time.Minute)
	assert.Zero(t, c.N())
	v.Advance(time.Minute)
	assert.Equal(t, 1, c.N())
	assert.True(t, task.Fired())

	_, err = DelayUntil(func() {}, "61 * * * *", WithScheduler(v))
	assert.ErrorContains(t, err, "parse cron spec")
}
