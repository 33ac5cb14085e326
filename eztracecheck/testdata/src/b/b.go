package b

import (
	"github.com/sirkon/eztrace"
	"probe"
)

func work() {
	probe.Here()    // want `leftover trace marker call probe\.Here`
	eztrace.Trace() // want `leftover trace marker call github\.com/sirkon/eztrace\.Trace`
}
