//go:build timeit_off

package timeit

// Stubbed no-op versions compiled when the timeit_off build tag is set.
// Call sites are identical to the instrumented build; nothing here measures,
// allocates per call, or writes.

// Timer is an inert stand-in for the instrumented timer.
type Timer struct{}

var nopTimer Timer

func Start(category string) *Timer            { return &nopTimer }
func StartNamed(name, category string) *Timer { return &nopTimer }

// Stop does nothing.
func (t *Timer) Stop() {}

// OutputFiles is an inert stand-in for the file-backed sink installer.
type OutputFiles struct{}

var nopFiles OutputFiles

func InstallFiles(basename string) *OutputFiles { return &nopFiles }

// Close does nothing.
func (f *OutputFiles) Close() {}
