// Package timeit provides lightweight wall-clock instrumentation of nested
// code regions ("scopes").
//
// Each instrumented scope starts a [Timer] on entry and stops it on exit,
// normally in a single statement:
//
//	defer timeit.Start("parser").Stop()
//
// When a timer stops its elapsed time is reported immediately, in up to two
// formats: an indented tree for humans and a flat comma-separated table for
// machines. A nested run may produce:
//
//	main.run [cli]: 8.312e6
//	    main.parse [parser]: 1.742e6
//	        main.lex [parser]: 9.051e5
//
// Timers nest per goroutine: a report's depth is the number of enclosing
// timers still open on the same goroutine when the timer started. The two
// formats are enabled, disabled and redirected independently (see
// [EnableTree], [SetTreeSink] and their table counterparts), and
// [InstallFiles] redirects both to files for a bounded span of execution.
//
// Building with the timeit_off tag compiles the whole facility down to no-ops.
package timeit

import (
	"os"

	"golang.org/x/exp/slog"
)

var default_category = "base"

func init() {
	logLevel = new(slog.LevelVar)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(h)
}

var (
	logger   *slog.Logger
	logLevel *slog.LevelVar
)

// SetLogger set the logger used by timeit.
// [SetLogLevel] will not be enforced if a custom logger is used.
func SetLogger(newlogger *slog.Logger) {
	logger = newlogger
}

// SetLogLevel sets the level for timeit messages unless [SetLogger] has been called.
// The default log level is the zero value of [slog.LevelVar].
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

// SetDefaultCategory sets the category given to timers started with an empty
// category string. The default value is "base".
func SetDefaultCategory(name string) {
	default_category = name
}
