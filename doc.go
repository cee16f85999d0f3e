// Package mathparse parses and evaluates plain-text mathematical
// expressions with arbitrary precision.
//
// Expressions are sequences of decimal numbers, named variables, the
// operators + - * / ^, round brackets, |x| for magnitude, and calls to a
// vocabulary of named functions such as sqrt(x), ln(x), log(x, base),
// and the circular and hyperbolic trigonometric families. Parsing splits
// an expression at its least binding operator and recurs on the two
// sides, so precedence and bracket matching fall out of one scan per
// subexpression rather than a grammar.
//
// Values are big.Float. Operations that leave the reals, like the square
// root of a negative number or a logarithm of zero, are reported as
// errors rather than NaN. Division by exact zero is an error as well.
//
// The simplest entry point is Evaluate:
//
//	r, err := mathparse.Evaluate("x^2 + 1", map[string]*big.Float{
//		"x": big.NewFloat(3),
//	})
//
// Parse and Expr.Eval separate the two phases so a parse can be reused
// against many variable bindings, and Context carries bindings and the
// working precision across evaluations. The token vocabulary itself is
// open: Recognize and RecognizeFunc extend the parser with new spellings
// and new functions.
package mathparse
