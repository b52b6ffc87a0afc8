// Package walk drives a tree-order traversal of a parsed program and
// reports scope boundaries and name references to a Visitor. The lint
// engine never walks the tree itself; it only reacts to these callbacks.
package walk

import (
	"github.com/funvibe/funlint/internal/ast"
)

// Visitor receives scope enter/exit events in strict pre/post-order and a
// NameReference event for every bare identifier use, interleaved in
// source order.
type Visitor interface {
	DeclarationEnter(params []ast.Pattern)
	DeclarationExit(params []ast.Pattern)

	LambdaEnter(params []ast.Pattern)
	LambdaExit(params []ast.Pattern)

	LetEnter(decls []*ast.LetDeclaration)
	LetExit(decls []*ast.LetDeclaration)

	// Match branches are bracketed one at a time: a branch is fully
	// entered, traversed and exited before the next branch's pattern is
	// registered. Sibling branches never see each other's bindings.
	CaseBranchEnter(arm *ast.MatchArm)
	CaseBranchExit(arm *ast.MatchArm)

	NameReference(name string)
}

// Declaration walks one top-level function declaration.
func Declaration(decl *ast.FunctionDeclaration, v Visitor) {
	if decl == nil {
		return
	}
	v.DeclarationEnter(decl.Params)
	Expression(decl.Body, v)
	v.DeclarationExit(decl.Params)
}

// Expression walks an expression subtree in source order.
func Expression(expr ast.Expression, v Visitor) {
	if expr == nil {
		return
	}
	switch n := expr.(type) {
	case *ast.Identifier:
		v.NameReference(n.Value)

	case *ast.AccessExpression:
		// The base is a use; the field name is not an identifier
		// reference of its own.
		Expression(n.Base, v)

	case *ast.CallExpression:
		Expression(n.Callee, v)
		for _, arg := range n.Arguments {
			Expression(arg, v)
		}

	case *ast.PrefixExpression:
		Expression(n.Right, v)

	case *ast.InfixExpression:
		Expression(n.Left, v)
		Expression(n.Right, v)

	case *ast.TupleLiteral:
		for _, el := range n.Elements {
			Expression(el, v)
		}

	case *ast.ListLiteral:
		for _, el := range n.Elements {
			Expression(el, v)
		}

	case *ast.RecordLiteral:
		for _, f := range n.Fields {
			Expression(f.Value, v)
		}

	case *ast.LambdaExpression:
		v.LambdaEnter(n.Params)
		Expression(n.Body, v)
		v.LambdaExit(n.Params)

	case *ast.LetExpression:
		v.LetEnter(n.Declarations)
		for _, d := range n.Declarations {
			Expression(d.Value, v)
		}
		Expression(n.Body, v)
		v.LetExit(n.Declarations)

	case *ast.MatchExpression:
		// The scrutinee is outside every branch scope.
		Expression(n.Expression, v)
		for _, arm := range n.Arms {
			v.CaseBranchEnter(arm)
			Expression(arm.Expression, v)
			v.CaseBranchExit(arm)
		}
	}
	// Literals carry no names and have no children.
}
