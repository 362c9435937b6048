// Package semantic walks the AST with a scoped symbol table, checking for
// redeclaration in the same scope, undeclared references, and undeclared
// assignment targets. It never aborts the walk on a diagnostic — every
// check continues past the faulting node, matching the parser's own
// collect-and-continue posture.
package semantic

import (
	"github.com/simplec-lang/simplec/internal/compiler/ast"
	"github.com/simplec-lang/simplec/internal/compiler/errors"
)

// Analyzer walks a Program and produces semantic diagnostics. The AST
// itself is never mutated.
type Analyzer struct {
	symbols  *SymbolTable
	diags    errors.List
	reported map[string]bool
}

// New creates an Analyzer with a fresh, single top-level scope.
func New() *Analyzer {
	return &Analyzer{
		symbols:  NewSymbolTable(),
		reported: make(map[string]bool),
	}
}

// Analyze walks program and returns the accumulated diagnostics. Each call
// uses a fresh Analyzer, so no symbols or reported names carry over between
// calls.
func Analyze(program *ast.Program) errors.List {
	a := New()
	for _, stmt := range program.Children {
		a.visitStmt(stmt)
	}
	return a.diags
}

func (a *Analyzer) emit(d *errors.Diagnostic) {
	a.diags = append(a.diags, d)
}

// visitStmt dispatches on statement shape. ErrorNode is skipped, never
// recursed into.
func (a *Analyzer) visitStmt(stmt ast.StmtNode) {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		a.visitVarDecl(n)
	case *ast.If:
		a.visitIf(n)
	case *ast.Block:
		a.visitBlock(n)
	case *ast.Assign:
		a.visitAssign(n)
	case *ast.Variable:
		a.visitVariableRef(n)
	case *ast.ErrorNode:
		// skipped
	}
}

func (a *Analyzer) visitVarDecl(n *ast.VarDecl) {
	if n.AssignNode != nil {
		a.visitExpr(n.AssignNode)
	}

	name := n.VarNode.Name
	if name == "<error>" {
		// Placeholder from parser recovery, not a real declaration.
		return
	}
	if a.symbols.DeclaredInCurrentScope(name) {
		a.emit(errors.NewRedeclared(n.VarNode.Loc, name))
		return
	}
	a.symbols.Declare(name, Symbol{DeclaredType: n.TypeNode.Name, DeclLine: n.Loc.Line})
}

func (a *Analyzer) visitIf(n *ast.If) {
	a.visitExpr(n.Condition)
	a.visitStmt(n.IfBlock)
	if n.ElseBlock != nil {
		a.visitStmt(n.ElseBlock)
	}
}

func (a *Analyzer) visitBlock(n *ast.Block) {
	a.symbols.Push()
	for _, stmt := range n.Statements {
		a.visitStmt(stmt)
	}
	a.symbols.Pop()
}

// visitAssign implements the "target must be a declared identifier" rule:
// a missing target still lets the RHS be analyzed.
func (a *Analyzer) visitAssign(n *ast.Assign) {
	if target, ok := n.Left.(*ast.Variable); ok {
		a.visitVariableRef(target)
	} else {
		a.visitExpr(n.Left)
	}
	a.visitExpr(n.Right)
}

// visitExpr dispatches on expression shape, reporting undeclared references
// and recursing into operands. ErrorNode is skipped.
func (a *Analyzer) visitExpr(expr ast.ExprNode) {
	switch n := expr.(type) {
	case *ast.Variable:
		a.visitVariableRef(n)
	case *ast.Number:
		// no binding to check
	case *ast.BinOp:
		a.visitExpr(n.Left)
		a.visitExpr(n.Right)
	case *ast.Assign:
		a.visitAssign(n)
	case *ast.ErrorNode:
		// skipped
	}
}

// visitVariableRef reports an undeclared name once: the first reference
// produces the diagnostic, later ones are suppressed so a single missing
// declaration doesn't cascade into a report per use site.
func (a *Analyzer) visitVariableRef(n *ast.Variable) {
	if n.Name == "<error>" {
		return
	}
	if _, found := a.symbols.Lookup(n.Name); found {
		return
	}
	if a.reported[n.Name] {
		return
	}
	a.reported[n.Name] = true
	a.emit(errors.NewNotDeclared(n.Loc, n.Name))
}
