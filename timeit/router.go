package timeit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

const indentUnit = "    "

var (
	// process-wide output configuration; a nil sink falls back to stderr at
	// write time
	treeSink     io.Writer
	tableSink    io.Writer
	treeEnabled  = true
	tableEnabled = true
	// outLock manages access to the configuration and serializes report
	// emission across goroutines
	outLock sync.Mutex
)

// SetTreeSink redirects tree-format reports to w.
// A nil w resets the format to the fallback stream, [os.Stderr].
func SetTreeSink(w io.Writer) {
	outLock.Lock()
	treeSink = w
	outLock.Unlock()
}

// SetTableSink redirects table-format reports to w.
// A nil w resets the format to the fallback stream, [os.Stderr].
func SetTableSink(w io.Writer) {
	outLock.Lock()
	tableSink = w
	outLock.Unlock()
}

// EnableTree turns tree-format reporting on or off.
// Both formats start enabled.
func EnableTree(enable bool) {
	outLock.Lock()
	treeEnabled = enable
	outLock.Unlock()
}

// EnableTable turns table-format reporting on or off.
// Both formats start enabled.
func EnableTable(enable bool) {
	outLock.Lock()
	tableEnabled = enable
	outLock.Unlock()
}

// report emits one completed measurement to every enabled format. Each line
// is assembled in full and written with a single Write call so lines from
// concurrent goroutines never interleave. Write errors are dropped:
// instrumentation must not perturb the instrumented program.
func report(name, category string, depth int, elapsed int64) {
	recordSample(name, category, depth, elapsed)

	sci := Scientific(elapsed)

	outLock.Lock()
	defer outLock.Unlock()

	if treeEnabled {
		w := treeSink
		if w == nil {
			w = os.Stderr
		}
		var b bytes.Buffer
		b.WriteString(strings.Repeat(indentUnit, depth))
		fmt.Fprintf(&b, "%s [%s]: %s\n", name, category, sci)
		_, _ = w.Write(b.Bytes())
	}

	if tableEnabled {
		w := tableSink
		if w == nil {
			w = os.Stderr
		}
		var b bytes.Buffer
		fmt.Fprintf(&b, "%d,%s,%s,%s\n", depth, name, category, sci)
		_, _ = w.Write(b.Bytes())
	}
}
