package mathparse

import "strconv"

// Token is a lexical unit of an expression. Every token remembers the exact
// source text it was recognized from and its position in the input, and its
// kind decides how the partition engine treats it: how tightly it binds, how
// a scan advances past it, and how it carves its surrounding slice into
// child slices.
type Token struct {
	// Kind is the token's variant.
	Kind TokenKind
	// Text is the source substring the token was recognized from. For
	// function tokens it includes the trailing open bracket.
	Text string
	// Pos is the 1-based byte position of the token in the input.
	Pos int

	// fn is the behavior of a function token.
	fn Func
	// unary marks a subtraction token with no operand on its left. It is
	// decided during the backpatch pass.
	unary bool
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind enumerates the closed set of token variants.
type TokenKind int8

const (
	KindNone TokenKind = iota
	// KindNumber is a numeric literal.
	KindNumber
	// KindPi is the constant pi.
	KindPi
	// KindE is the constant e.
	KindE
	// KindVariable is a free variable name.
	KindVariable
	// KindAdd, KindSub, KindMul, KindDiv, and KindPow are the binary
	// operators. A KindSub token directly following another operator, a
	// separator, or an opening bracket denotes negation instead.
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindPow
	// KindOpen and KindClose are the grouping brackets ( and ).
	KindOpen
	KindClose
	// KindMod is a modulus bar |. Opening and closing bars share one
	// spelling; they pair up positionally.
	KindMod
	// KindSep is a function argument separator, either , or ;.
	KindSep
	// KindFunc is a function head such as "sqrt(". Its partner is the
	// matching close bracket and its whole interior is one argument.
	KindFunc
	// KindArgFunc is a function head whose interior is split at every
	// top-level separator into one argument per segment.
	KindArgFunc
)

func (k TokenKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNumber:
		return "Number"
	case KindPi:
		return "Pi"
	case KindE:
		return "E"
	case KindVariable:
		return "Variable"
	case KindAdd:
		return "Add"
	case KindSub:
		return "Sub"
	case KindMul:
		return "Mul"
	case KindDiv:
		return "Div"
	case KindPow:
		return "Pow"
	case KindOpen:
		return "Open"
	case KindClose:
		return "Close"
	case KindMod:
		return "Mod"
	case KindSep:
		return "Sep"
	case KindFunc:
		return "Func"
	case KindArgFunc:
		return "ArgFunc"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token priorities. A higher priority binds tighter and sits deeper in the
// tree; the partition engine roots each slice at its least-binding token.
const (
	prioAddSub int8 = 1
	prioMulDiv int8 = 2
	prioPow    int8 = 3
	prioNeg    int8 = 4
	prioFunc   int8 = 5
	prioMax    int8 = 127
)

// priority reports how tightly the token binds.
func (t Token) priority() int8 {
	switch t.Kind {
	case KindAdd:
		return prioAddSub
	case KindSub:
		if t.unary {
			return prioNeg
		}
		return prioAddSub
	case KindMul, KindDiv:
		return prioMulDiv
	case KindPow:
		return prioPow
	case KindFunc, KindArgFunc:
		return prioFunc
	default:
		// Numerics, variables, constants, brackets, bars, and separators
		// are all innermost.
		return prioMax
	}
}

// needsPair reports whether a token of kind k must have a matching partner
// resolved before partitioning.
func needsPair(k TokenKind) bool {
	switch k {
	case KindOpen, KindClose, KindMod, KindFunc, KindArgFunc:
		return true
	}
	return false
}

// partners reports whether u closes the pair opened by t. Brackets and
// function heads demand a close bracket; a stray close bracket can only pair
// with another close bracket; modulus bars accept the next bar
// unconditionally.
func partners(t, u Token) bool {
	switch t.Kind {
	case KindOpen, KindFunc, KindArgFunc, KindClose:
		return u.Kind == KindClose
	case KindMod:
		return u.Kind == KindMod
	}
	return false
}
