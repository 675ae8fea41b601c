package safeexpr

import (
	"io"
	"strings"
)

// unaryFunc and binaryFunc implement single operators over Numbers.
type (
	unaryFunc  func(Number) (Number, error)
	binaryFunc func(Number, Number) (Number, error)
)

// unaryOps and binaryOps are the operator tables: the closed mapping from
// node kind to the arithmetic implementing it. They are built once and
// only read afterward. A kind missing from its table fails evaluation
// with an UnsupportedError rather than falling through to anything.
var (
	unaryOps = map[nodeKind]unaryFunc{
		nodeNop: pos,
		nodeNeg: neg,
	}
	binaryOps = map[nodeKind]binaryFunc{
		nodeAdd:      add,
		nodeSub:      sub,
		nodeMul:      mul,
		nodeDiv:      quo,
		nodeFloorDiv: floordiv,
		nodeMod:      mod,
		nodePow:      pow,
	}
)

// Evaluate reduces a parsed expression to a single number. Evaluation is
// pure: it touches no state beyond the tree and the read-only operator
// tables, so concurrent calls, including on the same Expr, need no
// coordination. Errors implement EvalError.
func Evaluate(e *Expr) (Number, error) {
	return e.n.eval()
}

// eval reduces the subtree rooted at n in post order: children first, left
// before right, then the node's own operator.
func (n *node) eval() (Number, error) {
	if n.kind == nodeNum {
		return parseNumber(n.text)
	}
	if fn, ok := unaryOps[n.kind]; ok {
		x, err := n.left.eval()
		if err != nil {
			return Number{}, err
		}
		return fn(x)
	}
	if fn, ok := binaryOps[n.kind]; ok {
		l, err := n.left.eval()
		if err != nil {
			return Number{}, err
		}
		r, err := n.right.eval()
		if err != nil {
			return Number{}, err
		}
		return fn(l, r)
	}
	return Number{}, &UnsupportedError{Kind: n.kind.String()}
}

// Eval is a shortcut to parse an expression and evaluate it.
func Eval(src io.RuneScanner, opts ...ParseOption) (Number, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return Number{}, err
	}
	return Evaluate(a)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (Number, error) {
	return Eval(strings.NewReader(src), opts...)
}
