package safeexpr

import "strconv"

// SyntaxError is an error with position information. Every error resulting
// from input text that is not a member of the supported grammar implements
// SyntaxError.
type SyntaxError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

// OperatorError is an error indicating an operator token used where the
// grammar has no operator of that shape, e.g. * at the start of an
// expression. It implements SyntaxError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements SyntaxError.
type BracketError struct {
	// Col is the position of the parenthesis.
	Col int
	// Left is the opening parenthesis, or the empty string if a closing
	// parenthesis appeared with nothing to match.
	Left string
	// Right is the closing parenthesis, or the empty string if an opening
	// parenthesis was never matched.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// IdentError is an error indicating a name in the input. The grammar has
// no names: no variables, no constants, and no function calls. It
// implements SyntaxError.
type IdentError struct {
	// Col is the position of the name.
	Col int
	// Name is the name.
	Name string
}

func (err *IdentError) Error() string {
	return errpos(err.Col, "name "+strconv.Quote(err.Name)+" is not allowed")
}

func (err *IdentError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a token where none can follow, such as
// two literals with no operator between them or text trailing a complete
// expression. It implements SyntaxError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the token.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// DepthError is an error indicating input nested more deeply than the
// parser's configured limit. It implements SyntaxError.
type DepthError struct {
	// Col is the position at which the limit was exceeded.
	Col int
	// Limit is the nesting depth limit in effect.
	Limit int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nests more than "+strconv.Itoa(err.Limit)+" levels deep")
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ SyntaxError = (*OperatorError)(nil)
	_ SyntaxError = (*BracketError)(nil)
	_ SyntaxError = (*EmptyExpressionError)(nil)
	_ SyntaxError = (*IdentError)(nil)
	_ SyntaxError = (*TokenError)(nil)
	_ SyntaxError = (*DepthError)(nil)
	_ SyntaxError = (*LexError)(nil)
)
