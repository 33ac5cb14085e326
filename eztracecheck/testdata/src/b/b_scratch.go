package b

import (
	"github.com/sirkon/eztrace"
	"probe"
)

// Scratch file, muted by the allow pattern in the test config.
func scratch() {
	eztrace.Trace()
	probe.Here()
}
