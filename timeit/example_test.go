package timeit_test

import (
	"github.com/onegii/go-timeit/timeit"
)

// The usual pattern is one statement at the top of each function worth
// measuring.
func Example() {
	defer timeit.Start("request").Stop()

	decode := timeit.StartNamed("decode", "request")
	// decode the payload ...
	decode.Stop()

	query := timeit.StartNamed("query", "db")
	// hit the database ...
	query.Stop()
}

// Reports for a bounded span of execution can be redirected to
// basename-derived files.
func Example_outputFiles() {
	files := timeit.InstallFiles("run1")
	defer files.Close()

	defer timeit.StartNamed("batch", "job").Stop()
	// run the batch ...
}
