// Command eztracecheck reports leftover trace markers in Go packages.
// It exits non-zero when any marker is found.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/eztrace/eztracecheck"
)

func main() {
	singlechecker.Main(eztracecheck.Analyzer)
}
