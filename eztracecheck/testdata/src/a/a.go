package a

import (
	"github.com/sirkon/eztrace"
)

func sum(xs []int) int {
	eztrace.Trace() // want `leftover trace marker call github\.com/sirkon/eztrace\.Trace`

	total := 0
	for _, x := range xs {
		total += x
	}

	return total
}

func smuggled() {
	probe := eztrace.Trace // want `leftover trace marker github\.com/sirkon/eztrace\.Trace used as a value`
	defer probe()
}

func handed() {
	run(eztrace.Trace) // want `leftover trace marker github\.com/sirkon/eztrace\.Trace used as a value`
}

func run(f func()) {
	f()
}

// Trace shares the name but not the package, must stay silent.
func Trace() {}

func clean() {
	Trace()
}
