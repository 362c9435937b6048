package ast

import (
	"fmt"
	"strings"
)

// Dump renders a node and its children as an indented tree, one field per
// line. It is intended for CLI `--format tree` output and for tests that
// want to assert on tree shape rather than hand-building structs.
func Dump(node Node) string {
	var b strings.Builder
	dump(&b, node, 0)
	return b.String()
}

func dump(b *strings.Builder, node Node, level int) {
	indent := strings.Repeat("  ", level)
	if node == nil {
		fmt.Fprintf(b, "%s<nil>\n", indent)
		return
	}

	switch n := node.(type) {
	case *Program:
		fmt.Fprintf(b, "%sProgram\n", indent)
		for i, child := range n.Children {
			fmt.Fprintf(b, "%s  .Children[%d]:\n", indent, i)
			dump(b, child, level+2)
		}
	case *VarDecl:
		fmt.Fprintf(b, "%sVarDecl\n", indent)
		fmt.Fprintf(b, "%s  .TypeNode:\n", indent)
		dump(b, n.TypeNode, level+2)
		fmt.Fprintf(b, "%s  .VarNode:\n", indent)
		dump(b, n.VarNode, level+2)
		if n.AssignNode != nil {
			fmt.Fprintf(b, "%s  .AssignNode:\n", indent)
			dump(b, n.AssignNode, level+2)
		}
	case *Assign:
		fmt.Fprintf(b, "%sAssign [Op: %s]\n", indent, n.Op)
		fmt.Fprintf(b, "%s  .Left:\n", indent)
		dump(b, n.Left, level+2)
		fmt.Fprintf(b, "%s  .Right:\n", indent)
		dump(b, n.Right, level+2)
	case *If:
		fmt.Fprintf(b, "%sIf\n", indent)
		fmt.Fprintf(b, "%s  .Condition:\n", indent)
		dump(b, n.Condition, level+2)
		fmt.Fprintf(b, "%s  .IfBlock:\n", indent)
		dump(b, n.IfBlock, level+2)
		if n.ElseBlock != nil {
			fmt.Fprintf(b, "%s  .ElseBlock:\n", indent)
			dump(b, n.ElseBlock, level+2)
		}
	case *Block:
		fmt.Fprintf(b, "%sBlock\n", indent)
		for i, stmt := range n.Statements {
			fmt.Fprintf(b, "%s  .Statements[%d]:\n", indent, i)
			dump(b, stmt, level+2)
		}
	case *BinOp:
		fmt.Fprintf(b, "%sBinOp [Op: %s]\n", indent, n.Op)
		fmt.Fprintf(b, "%s  .Left:\n", indent)
		dump(b, n.Left, level+2)
		fmt.Fprintf(b, "%s  .Right:\n", indent)
		dump(b, n.Right, level+2)
	case *Variable:
		fmt.Fprintf(b, "%sVariable [Name: %s]\n", indent, n.Name)
	case *Number:
		fmt.Fprintf(b, "%sNumber [Value: %s]\n", indent, n.Value)
	case *TypeNode:
		fmt.Fprintf(b, "%sTypeNode [Name: %s]\n", indent, n.Name)
	case *ErrorNode:
		fmt.Fprintf(b, "%sErrorNode\n", indent)
	default:
		fmt.Fprintf(b, "%s%T\n", indent, n)
	}
}
