// Package leaktest checks that a test body does not leave goroutines behind.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond
	checkTimeout = 2 * time.Second
)

// GoroutineChecker records the goroutine count at creation and compares
// against it in Check.
type GoroutineChecker struct {
	before  int
	timeout time.Duration
	t       testing.TB
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before:  runtime.NumGoroutine(),
		timeout: checkTimeout,
		t:       t,
	}
}

// Check polls until at most tolerance goroutines more than the baseline are
// running. Closed sql.DB connections exit asynchronously, hence the polling.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	if n, ok := waitFor(g.before+tolerance, g.timeout); !ok {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d (tolerance=%d)",
			g.before, n, n-g.before, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails t if it left goroutines running.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

func waitFor(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}
