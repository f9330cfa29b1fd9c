// Package boolcmp defines an Analyzer that reports identity comparisons
// of boolean objects.
package boolcmp

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

const doc = `report == and != comparisons between boolean objects

Comparing two *boolval.Bool values compares identity, which only works
when both sides are canonical singletons. Independently constructed
instances carry the same truth value but their own identity, so identity
comparisons silently misbehave for them. Compare Bool() results instead,
or resolve both sides with Coerce first.`

var Analyzer = &analysis.Analyzer{
	Name: "boolcmp",
	Doc:  doc,
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			expr, ok := n.(*ast.BinaryExpr)
			if !ok || (expr.Op != token.EQL && expr.Op != token.NEQ) {
				return true
			}
			if !isBoolObject(pass.TypesInfo.TypeOf(expr.X)) || !isBoolObject(pass.TypesInfo.TypeOf(expr.Y)) {
				return true
			}
			pass.Reportf(expr.OpPos, "identity comparison of boolean objects, compare Bool() results instead")
			return false
		})
	}
	return nil, nil
}

func isBoolObject(t types.Type) bool {
	ptr, ok := t.(*types.Pointer)
	if !ok {
		return false
	}
	named, ok := ptr.Elem().(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == "Bool" && obj.Pkg() != nil && obj.Pkg().Name() == "boolval"
}
