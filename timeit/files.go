//go:build !timeit_off

package timeit

import (
	"io"
	"os"

	"golang.org/x/exp/slog"
)

// # OutputFiles
//
// Redirects both report formats to files for a bounded span of execution.
// Its zero value has no meaning. An OutputFiles should always be
// instantiated by calling [InstallFiles] and closed exactly once, normally
// with defer.
type OutputFiles struct {
	treeFile  *os.File
	tableFile *os.File

	prevTree  io.Writer
	prevTable io.Writer
}

// InstallFiles opens basename+".log" and basename+".csv" for appending and
// installs them as the tree and table sinks. A file that cannot be opened
// resets its format to the fallback stream instead; the other format is
// unaffected.
//
// Installers stack: [OutputFiles.Close] restores the sinks that were active
// when InstallFiles ran, so an inner installer hands the sinks back to the
// outer one, and the outermost hands back the defaults.
func InstallFiles(basename string) *OutputFiles {
	f := &OutputFiles{}

	outLock.Lock()
	f.prevTree = treeSink
	f.prevTable = tableSink
	outLock.Unlock()

	treePath := basename + ".log"
	tablePath := basename + ".csv"

	if tf, err := os.OpenFile(treePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		f.treeFile = tf
		SetTreeSink(tf)
	} else {
		logger.Warn("failed to open tree output file, falling back to stderr",
			slog.String("path", treePath), slog.String("error", err.Error()))
		SetTreeSink(nil)
	}

	if cf, err := os.OpenFile(tablePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		f.tableFile = cf
		SetTableSink(cf)
	} else {
		logger.Warn("failed to open table output file, falling back to stderr",
			slog.String("path", tablePath), slog.String("error", err.Error()))
		SetTableSink(nil)
	}

	return f
}

// Close restores the sink configuration captured by [InstallFiles] and
// closes the files it opened. The fallback stream is never closed.
func (f *OutputFiles) Close() {
	SetTreeSink(f.prevTree)
	SetTableSink(f.prevTable)

	if f.treeFile != nil {
		_ = f.treeFile.Close()
		f.treeFile = nil
	}
	if f.tableFile != nil {
		_ = f.tableFile.Close()
		f.tableFile = nil
	}
}
