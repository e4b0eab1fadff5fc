// Package ast defines the code tree produced by the SimpleLang parser.
//
// A Node is an unevaluated syntax element tagged by its operation. Literal
// ops (int, float, str, list, name) carry their payload directly; the eval
// op wraps a single target node. Nodes are created by the parser and never
// mutated afterwards, so they can be shared freely across evaluations.
package ast

import (
	"strconv"
	"strings"
)

// Op identifies the operation of a code node.
type Op int

// Node operations.
const (
	OpInt Op = iota
	OpFloat
	OpStr
	OpList
	OpName
	OpEval
)

// opNames maps operations to the tag names used in string forms.
var opNames = map[Op]string{
	OpInt:   "int",
	OpFloat: "float",
	OpStr:   "str",
	OpList:  "list",
	OpName:  "name",
	OpEval:  "eval",
}

// String returns the tag name of the operation.
func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "unknown"
}

// Node is a single element of the parsed code tree. Exactly one payload
// field is meaningful, selected by Op:
//
//	OpInt    IntVal
//	OpFloat  FloatVal
//	OpStr    StrVal
//	OpName   StrVal
//	OpList   Children
//	OpEval   Target
type Node struct {
	StrVal   string
	Children []*Node
	Target   *Node
	IntVal   int64
	FloatVal float64
	Op       Op
}

// String returns the debug form "<Code op : arg>".
func (n *Node) String() string {
	var sb strings.Builder
	sb.WriteString("<Code ")
	sb.WriteString(n.Op.String())
	sb.WriteString(" : ")
	sb.WriteString(n.argString())
	sb.WriteString(">")
	return sb.String()
}

// argString renders the payload of the node.
func (n *Node) argString() string {
	switch n.Op {
	case OpInt:
		return strconv.FormatInt(n.IntVal, 10)
	case OpFloat:
		return strconv.FormatFloat(n.FloatVal, 'g', -1, 64)
	case OpStr, OpName:
		return n.StrVal
	case OpList:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = c.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case OpEval:
		return n.Target.String()
	}
	return ""
}
