package timez

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// Virtual is a [Scheduler] driven by a simulated clock.
// Time only moves when Advance or AdvanceTo is called,
// and due callbacks run synchronously on the advancing goroutine.
type Virtual struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*virtualTimer
}

type virtualTimer struct {
	v    *Virtual
	at   time.Time
	seq  uint64
	f    func()
	done bool
}

// NewVirtual returns a virtual scheduler whose clock starts at start.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

func (v *Virtual) AfterFunc(d time.Duration, f func()) Timer {
	v.mu.Lock()
	defer v.mu.Unlock()
	if d < 0 {
		d = 0
	}
	v.seq++
	t := &virtualTimer{v: v, at: v.now.Add(d), seq: v.seq, f: f}
	v.pending = append(v.pending, t)
	return t
}

func (t *virtualTimer) Stop() bool {
	t.v.mu.Lock()
	defer t.v.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.v.remove(t)
	return true
}

// Pending returns the number of callbacks that have not run or been stopped.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pending)
}

// Advance moves the clock forward by d, running every callback due on the way.
func (v *Virtual) Advance(d time.Duration) {
	v.AdvanceTo(v.Now().Add(d))
}

// AdvanceTo moves the clock to target, running due callbacks in deadline order.
// Callbacks with the same deadline run in the order they were scheduled.
// Callbacks scheduled by a callback run in the same call if they are due.
func (v *Virtual) AdvanceTo(target time.Time) {
	for {
		v.mu.Lock()
		next := v.earliest()
		if next == nil || next.at.After(target) {
			if target.After(v.now) {
				v.now = target
			}
			v.mu.Unlock()
			return
		}
		v.remove(next)
		next.done = true
		if next.at.After(v.now) {
			v.now = next.at
		}
		v.mu.Unlock()

		next.f()
	}
}

func (v *Virtual) earliest() *virtualTimer {
	if len(v.pending) == 0 {
		return nil
	}
	return slices.MinFunc(v.pending, func(a, b *virtualTimer) int {
		if c := a.at.Compare(b.at); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
}

func (v *Virtual) remove(t *virtualTimer) {
	v.pending = slices.DeleteFunc(v.pending, func(it *virtualTimer) bool {
		return it == t
	})
}
