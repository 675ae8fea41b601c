package safeexpr

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// maxdepth is the nesting depth at which parsing gives up.
	maxdepth int
	// depth is the current nesting depth.
	depth int
}

// DefaultMaxDepth is the nesting depth limit used when no MaxDepth option
// is given. Evaluation recurses over the tree, so the limit bounds stack
// use on input like thousands of nested parentheses.
const DefaultMaxDepth = 1000

type depthopt int

// MaxDepth sets the nesting depth at which parsing fails with a
// DepthError. Nonpositive values panic.
func MaxDepth(n int) ParseOption {
	if n <= 0 {
		panic("safeexpr: nonpositive depth limit")
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}
