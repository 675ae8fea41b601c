package safeexpr

import "strconv"

// EvalError is implemented by every error produced while reducing a
// syntax tree to a number. Evaluation errors are always recoverable; the
// tree that produced one can be evaluated again.
type EvalError interface {
	error
	evalError()
}

// DivisionError is an error indicating division or modulo with a zero
// divisor, or zero raised to a negative power. It implements EvalError.
type DivisionError struct {
	// Op is the operator symbol.
	Op string
}

func (err *DivisionError) Error() string {
	switch err.Op {
	case "%":
		return "modulo by zero"
	case "**":
		return "zero raised to a negative power"
	default:
		return "division by zero"
	}
}

func (err *DivisionError) evalError() {}

// DomainError is an error indicating operands outside an operator's
// domain, such as a fractional power of a negative base. It implements
// EvalError.
type DomainError struct {
	// Op is the operator symbol.
	Op string
	// Reason describes why the operands are outside the domain.
	Reason string
}

func (err *DomainError) Error() string {
	return "invalid operands for " + strconv.Quote(err.Op) + ": " + err.Reason
}

func (err *DomainError) evalError() {}

// RangeError is an error indicating a result too large to compute, such
// as an enormous integer exponent. It implements EvalError.
type RangeError struct {
	// Op is the operator symbol.
	Op string
}

func (err *RangeError) Error() string {
	return "exponent too large in " + strconv.Quote(err.Op)
}

func (err *RangeError) evalError() {}

// LiteralError is an error indicating a literal node whose text is not a
// supported numeric constant. A correct parser never produces one; the
// evaluator checks anyway. It implements EvalError.
type LiteralError struct {
	// Text is the literal's source text.
	Text string
}

func (err *LiteralError) Error() string {
	return "invalid numeric literal " + strconv.Quote(err.Text)
}

func (err *LiteralError) evalError() {}

// UnsupportedError is an error indicating a node kind with no entry in the
// operator tables. A correct parser never produces one; the evaluator
// checks anyway. It implements EvalError.
type UnsupportedError struct {
	// Kind is the name of the node kind.
	Kind string
}

func (err *UnsupportedError) Error() string {
	return "unsupported operator " + err.Kind
}

func (err *UnsupportedError) evalError() {}

var (
	_ EvalError = (*DivisionError)(nil)
	_ EvalError = (*DomainError)(nil)
	_ EvalError = (*RangeError)(nil)
	_ EvalError = (*LiteralError)(nil)
	_ EvalError = (*UnsupportedError)(nil)
)
