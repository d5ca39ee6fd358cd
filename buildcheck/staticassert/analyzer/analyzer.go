// Package analyzer implements the go/analysis pass that evaluates
// staticassert markers at build time.
//
// Run it through `go vet -vettool` or the cmd/staticassert binary. Every
// call to staticassert.That or staticassert.Expr is constant-folded with
// the type checker's information; a violated or non-constant condition is
// reported as a diagnostic, which fails the build.
package analyzer

import (
	"go/ast"
	"go/constant"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const doc = `evaluate buildcheck static assertions at build time

Calls to staticassert.That and staticassert.Expr are checked against the
type checker's constant folding. A constant-false condition fails with the
assertion message; a condition that is not a compile-time constant is an
error in its own right, since a runtime-only condition belongs in the
assert package instead.`

// markerPkgPath identifies the package whose markers this pass evaluates.
const markerPkgPath = "github.com/LerianStudio/lib-buildcheck/buildcheck/staticassert"

// Analyzer is the staticassert build-time assertion checker.
var Analyzer = &analysis.Analyzer{
	Name:     "staticassert",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		call := node.(*ast.CallExpr) // filter admits calls only

		if !isMarkerCall(pass, call) {
			return
		}

		// The marker signature is (cond bool, msg string); anything else
		// was already rejected by the type checker.
		if len(call.Args) != 2 {
			return
		}

		checkCondition(pass, call)
	})

	return nil, nil
}

// isMarkerCall reports whether call statically resolves to one of the
// staticassert markers.
func isMarkerCall(pass *analysis.Pass, call *ast.CallExpr) bool {
	callee := typeutil.StaticCallee(pass.TypesInfo, call)
	if callee == nil || callee.Pkg() == nil {
		return false
	}

	if callee.Pkg().Path() != markerPkgPath {
		return false
	}

	return callee.Name() == "That" || callee.Name() == "Expr"
}

func checkCondition(pass *analysis.Pass, call *ast.CallExpr) {
	msg, msgConst := messageArg(pass, call)
	if !msgConst {
		pass.ReportRangef(call.Args[1], "assertion message must be a compile-time constant string")
	}

	cond := call.Args[0]

	tv, ok := pass.TypesInfo.Types[cond]
	if !ok || tv.Value == nil {
		pass.ReportRangef(cond, "condition is not a compile-time constant")
		return
	}

	if constant.BoolVal(tv.Value) {
		return
	}

	if msg == "" {
		pass.ReportRangef(call, "static assertion failed")
		return
	}

	pass.ReportRangef(call, "static assertion failed: %s", msg)
}

// messageArg extracts the constant message string, reporting whether the
// argument is a constant at all.
func messageArg(pass *analysis.Pass, call *ast.CallExpr) (string, bool) {
	tv, ok := pass.TypesInfo.Types[call.Args[1]]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}
