package timeit

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

var (
	// gdepths (goroutine depths) maps a goroutine ID to the number of timers
	// currently open on that goroutine
	gdepths = make(map[uint64]int)
	// gdLock manages access to gdepths
	gdLock sync.Mutex
)

// goid returns the calling goroutine's ID, parsed from the header line of
// [runtime.Stack] ("goroutine 123 [running]:"). Go exposes no goroutine-local
// storage, so per-goroutine depth lives in a registry keyed by this ID.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(header, ' '); i >= 0 {
		header = header[:i]
	}
	id, _ := strconv.ParseUint(string(header), 10, 64)
	return id
}

// enterDepth returns the calling goroutine's current depth and increments it.
func enterDepth() int {
	id := goid()

	gdLock.Lock()
	d := gdepths[id]
	gdepths[id] = d + 1
	gdLock.Unlock()

	return d
}

// exitDepth decrements the calling goroutine's depth. The counter is removed
// once it reaches zero so finished goroutines leave nothing behind.
func exitDepth() {
	id := goid()

	gdLock.Lock()
	if d := gdepths[id] - 1; d <= 0 {
		delete(gdepths, id)
	} else {
		gdepths[id] = d
	}
	gdLock.Unlock()
}

// depth reports the calling goroutine's current depth.
func depth() int {
	id := goid()

	gdLock.Lock()
	d := gdepths[id]
	gdLock.Unlock()

	return d
}
