//go:build !timeit_off

package timeit

import (
	"runtime"
	"time"
)

// # Timer
//
// Represents a running scoped timer.
// Its zero value has no meaning. A Timer should always be instantiated by
// calling either [Start] or [StartNamed], and must be stopped exactly once,
// on the goroutine that started it, normally with defer:
//
//	defer timeit.Start("parser").Stop()
//
// On the same goroutine timers follow a stack discipline: a timer must not
// outlive a timer started after it.
type Timer struct {
	name     string
	category string
	start    time.Time
	depth    int
}

// Start begins timing a scope, naming it after the calling function.
// The category tags related measurements; an empty category is replaced by
// the default category name (see [SetDefaultCategory]).
func Start(category string) *Timer {
	return StartNamed(callerName(), category)
}

// StartNamed begins timing a scope with a caller-supplied name instead of
// the enclosing function's. Names and categories are emitted verbatim:
// a comma inside either will break table-format consumers.
func StartNamed(name, category string) *Timer {
	if category == "" {
		category = default_category
	}

	t := &Timer{
		name:     name,
		category: category,
		depth:    enterDepth(),
	}
	t.start = time.Now()

	return t
}

// Stop ends the measurement and reports it to the configured sinks. The
// report is emitted before the goroutine's depth is wound back, so the line
// carries the depth the timer was started at. Stop never fails and never
// returns anything: a broken sink only costs the report itself.
func (t *Timer) Stop() {
	elapsed := time.Since(t.start).Nanoseconds()
	report(t.name, t.category, t.depth, elapsed)
	exitDepth()
}

// callerName resolves the name of the function that called [Start].
func callerName() string {
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}
