package eztrace

import "runtime"

// traceFromAnotherFile calls Trace from this file and reports the
// location the marker is expected to print. Kept in a separate file so
// tests can check that the file field follows the call site.
func traceFromAnotherFile() (file string, line int) {
	_, file, line, _ = runtime.Caller(0)
	Trace()
	return file, line + 1
}
