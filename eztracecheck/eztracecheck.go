package eztracecheck

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `eztracecheck reports leftover trace markers (eztrace.Trace calls and friends)`

// Analyzer is the main entry point for the linter.
var Analyzer = &analysis.Analyzer{
	Name:     "eztracecheck",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var configPath string

func init() {
	Analyzer.Flags.StringVar(
		&configPath,
		"config",
		"",
		"path to a YAML file with extra markers and allow patterns",
	)
}

func run(pass *analysis.Pass) (any, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load eztracecheck config: %w", err)
	}

	c := newMarkerChecker(pass, cfg)

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.Ident)(nil),
	}

	// Every leftover marker shows up as an identifier resolving to a
	// known marker function, whether it is called in place or smuggled
	// around as a value. The stack tells the two apart.
	pector.WithStack(nodeFilter, func(node ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return false
		}

		c.checkIdent(node.(*ast.Ident), stack)
		return true
	})

	return nil, nil
}

// markerChecker holds the effective marker set for a single pass.
type markerChecker struct {
	known map[Reference]struct{}
	cfg   *Config
	pass  *analysis.Pass
}

func newMarkerChecker(pass *analysis.Pass, cfg *Config) *markerChecker {
	known := map[Reference]struct{}{
		{Pkg: "github.com/sirkon/eztrace", Name: "Trace"}: {},
	}

	// Custom markers extend the predefined set, they never shrink it.
	for _, ref := range cfg.Markers {
		known[ref] = struct{}{}
	}

	return &markerChecker{known: known, cfg: cfg, pass: pass}
}

// checkIdent reports the identifier if it resolves to a known trace
// marker outside an allowed file.
func (c *markerChecker) checkIdent(id *ast.Ident, stack []ast.Node) {
	fn, ok := c.pass.TypesInfo.Uses[id].(*types.Func)
	if !ok {
		return
	}
	if fn.Pkg() == nil {
		// Universe or builtin, cannot be a marker.
		return
	}

	ref := Reference{Pkg: fn.Pkg().Path(), Name: fn.Name()}
	if _, ok := c.known[ref]; !ok {
		return
	}

	if c.cfg.Allowed(c.pass.Fset.Position(id.Pos()).Filename) {
		return
	}

	if isCallee(id, stack) {
		c.pass.Reportf(id.Pos(), "leftover trace marker call %s.%s", ref.Pkg, ref.Name)
		return
	}

	c.pass.Reportf(id.Pos(), "leftover trace marker %s.%s used as a value", ref.Pkg, ref.Name)
}

// isCallee reports whether the identifier at the top of the stack is
// the function being called, either directly or through a package
// selector.
func isCallee(id *ast.Ident, stack []ast.Node) bool {
	if len(stack) < 2 {
		return false
	}

	switch parent := stack[len(stack)-2].(type) {
	case *ast.CallExpr:
		// Dot-imported or package-local marker: the ident is the Fun itself.
		return parent.Fun == ast.Expr(id)
	case *ast.SelectorExpr:
		if parent.Sel != id {
			return false
		}
		if len(stack) < 3 {
			return false
		}
		call, ok := stack[len(stack)-3].(*ast.CallExpr)
		if !ok {
			return false
		}
		return call.Fun == ast.Expr(parent)
	default:
		return false
	}
}
