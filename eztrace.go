// Package eztrace provides a zero-fuss trace marker for debugging.
//
// Drop eztrace.Trace() anywhere you want to confirm control flow gets
// there. Each invocation prints a single line
//
//	<file>:<line>
//
// to stderr, identifying the call site. Nothing else: no values, no
// levels, no fields, no configuration. It is a one-line affordance,
// not a logging framework — reach for log/slog when you need one.
//
// The file path is the one the compiler recorded for the call site:
// module-relative when built with -trimpath, absolute otherwise.
//
// Trace calls are scaffolding and should not survive into committed
// code. The eztracecheck analyzer in this repository reports leftover
// markers, see its package documentation.
package eztrace

import (
	"io"
	"os"
	"runtime"
	"strconv"
)

// stderr is the marker destination. Package tests swap it to capture
// output; it is deliberately unexported so there is no configuration
// surface.
var stderr io.Writer = os.Stderr

// Trace prints the call site as "<file>:<line>" to stderr.
//
// It takes no arguments and returns nothing. The line is emitted with
// a single Write, so whole-line atomicity under concurrent use is
// whatever the stderr descriptor provides. Write failures are ignored:
// a debug probe must never fail the program it is instrumenting.
func Trace() {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		// Unreachable for a direct call, but degrade instead of panicking.
		file, line = "???", 0
	}

	buf := make([]byte, 0, len(file)+8)
	buf = append(buf, file...)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(line), 10)
	buf = append(buf, '\n')

	_, _ = stderr.Write(buf)
}
