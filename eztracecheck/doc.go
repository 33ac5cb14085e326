// Package eztracecheck implements a go/analysis linter reporting
// leftover trace markers.
//
// Markers like eztrace.Trace are scaffolding: they answer "does control
// flow reach this point" during a debugging session and have no
// business surviving into committed code. This analyzer finds the ones
// that did.
//
// # What it reports
//
//   - every call of a known trace marker;
//   - every use of a known trace marker as a function value (stored in
//     a variable, passed as an argument, deferred through a binding) —
//     still a leftover, just a better hidden one.
//
// # Markers
//
// github.com/sirkon/eztrace.Trace is always a marker. Homegrown probes
// can be registered through the config file:
//
//	markers:
//	  - pkg: corp.example/tools/dbg
//	    name: Here
//	allow:
//	  - "*_scratch.go"
//
// The allow list names files where markers are tolerated, matched with
// path.Match against the full slash-normalized path and the base name.
//
// # Usage
//
// Standalone:
//
//	go run github.com/sirkon/eztrace/cmd/eztracecheck@latest ./...
//
// or within a vet-style pipeline via the exported Analyzer. The
// -config flag points at the YAML file described above. The standalone
// binary exits non-zero when any marker is found, which makes it fit
// for CI gates.
package eztracecheck
