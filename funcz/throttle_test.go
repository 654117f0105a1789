package funcz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adobaai/underbar/testingz"
	"github.com/adobaai/underbar/timez"
)

func TestThrottle(t *testing.T) {
	const wait = 100 * time.Millisecond

	t.Run("Burst", func(t *testing.T) {
		v := timez.NewVirtual(start)
		var c testingz.Counter[int]
		th := Throttle(c.Func, wait, WithScheduler(v))

		for i := range 10 {
			th.Call(i)
			v.Advance(time.Millisecond)
		}
		assert.Equal(t, [][]int{{0}}, c.Calls())
		assert.Equal(t, 1, v.Pending())

		v.AdvanceTo(start.Add(wait))
		assert.Equal(t, [][]int{{0}, {9}}, c.Calls())

		v.Advance(time.Second)
		assert.Equal(t, 2, c.N())
		assert.Zero(t, v.Pending())
	})

	t.Run("Idle", func(t *testing.T) {
		v := timez.NewVirtual(start)
		var c testingz.Counter[string]
		f := Throttle(c.Func, wait, WithScheduler(v)).Func()

		f("a")
		assert.Equal(t, 1, c.N())
		v.Advance(time.Second)
		assert.Equal(t, 1, c.N())

		f("b")
		assert.Equal(t, [][]string{{"a"}, {"b"}}, c.Calls())
	})

	t.Run("WindowAfterTrailing", func(t *testing.T) {
		v := timez.NewVirtual(start)
		var c testingz.Counter[int]
		th := Throttle(c.Func, wait, WithScheduler(v))

		th.Call(1) // t=0, runs
		v.Advance(50 * time.Millisecond)
		th.Call(2) // coalesced
		v.Advance(50 * time.Millisecond)
		assert.Equal(t, [][]int{{1}, {2}}, c.Calls()) // trailing at t=100

		v.Advance(50 * time.Millisecond)
		th.Call(3) // t=150, inside the window opened by the trailing run
		assert.Equal(t, 2, c.N())
		v.Advance(49 * time.Millisecond)
		assert.Equal(t, 2, c.N())
		v.Advance(time.Millisecond)
		assert.Equal(t, [][]int{{1}, {2}, {3}}, c.Calls()) // t=200

		v.Advance(150 * time.Millisecond)
		th.Call(4) // t=350, idle again
		assert.Equal(t, 4, c.N())
	})

	t.Run("OneTimer", func(t *testing.T) {
		v := timez.NewVirtual(start)
		var c testingz.Counter[int]
		th := Throttle(c.Func, wait, WithScheduler(v))
		th.Call(0)
		for i := 1; i <= 5; i++ {
			th.Call(i)
			assert.Equal(t, 1, v.Pending())
		}
		v.Advance(wait)
		assert.Equal(t, []int{5}, c.Last())
	})

	t.Run("Cancel", func(t *testing.T) {
		v := timez.NewVirtual(start)
		var c testingz.Counter[int]
		th := Throttle(c.Func, wait, WithScheduler(v))
		th.Call(1)
		assert.False(t, th.Cancel())
		th.Call(2)
		assert.True(t, th.Cancel())
		assert.Zero(t, v.Pending())
		v.Advance(time.Second)
		assert.Equal(t, [][]int{{1}}, c.Calls())
	})

	t.Run("StaleTimer", func(t *testing.T) {
		s := &heldScheduler{now: start}
		var c testingz.Counter[int]
		th := Throttle(c.Func, wait, WithScheduler(s))

		th.Call(1)
		th.Call(2)
		s.now = start.Add(50 * time.Millisecond)
		th.Cancel() // the first callback is already on its way
		th.Call(3)
		assert.Len(t, s.fns, 2)

		s.fns[0]()
		assert.Equal(t, [][]int{{1}}, c.Calls())
		s.now = start.Add(wait)
		s.fns[1]()
		assert.Equal(t, [][]int{{1}, {3}}, c.Calls())
	})

	t.Run("Independent", func(t *testing.T) {
		v := timez.NewVirtual(start)
		var c testingz.Counter[string]
		a := Throttle(c.Func, wait, WithScheduler(v))
		b := Throttle(c.Func, wait, WithScheduler(v))
		a.Call("a")
		b.Call("b")
		a.Call("a2")
		assert.Equal(t, [][]string{{"a"}, {"b"}}, c.Calls())
		v.Advance(wait)
		assert.Equal(t, []string{"a2"}, c.Last())
	})

	t.Run("System", func(t *testing.T) {
		var c testingz.Counter[int]
		th := Throttle(c.Func, 20*time.Millisecond)
		for i := range 5 {
			th.Call(i)
		}
		assert.Equal(t, 1, c.N())
		assert.Eventually(t, func() bool { return c.N() == 2 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, []int{4}, c.Last())
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, 2, c.N())
	})
}

// heldScheduler records callbacks without running them, and its timers
// always report that they already fired.
type heldScheduler struct {
	now time.Time
	fns []func()
}

func (s *heldScheduler) Now() time.Time { return s.now }

func (s *heldScheduler) AfterFunc(_ time.Duration, f func()) timez.Timer {
	s.fns = append(s.fns, f)
	return firedTimer{}
}

type firedTimer struct{}

func (firedTimer) Stop() bool { return false }
