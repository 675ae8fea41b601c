// Package safeexpr evaluates plain arithmetic without ever executing code.
//
// The grammar is deliberately closed: numeric literals, unary + and -, the
// binary operators + - * / // % **, and parentheses for grouping. There
// are no variables, no functions, no strings, and no comparisons;
// anything outside the grammar fails the parse rather than evaluating
// partially.
//
// Results follow the usual calculator promotion rules. An operation on
// two integers yields an integer, except true division /, which always
// yields a floating-point value. Floor division // and modulo % take the
// sign of the divisor. Exponentiation ** binds tighter than unary minus,
// so "-5**2" is -25.
package safeexpr
