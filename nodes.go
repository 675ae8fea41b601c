package safeexpr

import (
	"strconv"
	"strings"
)

// node is a node in the syntax tree of an expression. Nodes are created
// during parsing and never modified afterward.
type node struct {
	kind nodeKind

	// text is the source text of a literal.
	text string

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push literal

	nodeNop // evaluate left
	nodeNeg // evaluate left, then negate

	nodeAdd      // evaluate left, add right
	nodeSub      // evaluate left, sub right
	nodeMul      // evaluate left, mul right
	nodeDiv      // evaluate left, true-divide by right
	nodeFloorDiv // evaluate left, floor-divide by right
	nodeMod      // evaluate left, mod by right
	nodePow      // evaluate left, exp by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeNop:
		return "Nop"
	case nodeNeg:
		return "Neg"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodeFloorDiv:
		return "FloorDiv"
	case nodeMod:
		return "Mod"
	case nodePow:
		return "Pow"
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

// opSymbol is the source spelling of a binary operator node kind.
func opSymbol(k nodeKind) string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodeFloorDiv:
		return "//"
	case nodeMod:
		return "%"
	case nodePow:
		return "**"
	}
	panic("safeexpr: no symbol for node kind " + k.String())
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.text)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeFloorDiv, nodeMod, nodePow:
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(opSymbol(n.kind))
		b.WriteByte(' ')
		n.right.fmt(b)
	default:
		panic("safeexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
