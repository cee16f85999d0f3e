package mathparse

import (
	"math/big"
	"strconv"
)

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based byte position of the token that caused the
	// error.
	Pos() int
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the text the tokenizer was scanning when the invalid byte was
	// encountered, including it.
	Text string
	// Kind is the type of token being scanned, e.g. "number", or the empty
	// string if no recognizer matched at all.
	Kind string
	// Col is the position of the offending byte.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "unrecognized character "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int { return err.Col }

// MatchError indicates a pair token with no matching partner in the token
// sequence. It implements InputError.
type MatchError struct {
	// Col is the position of the unmatched token.
	Col int
	// Text is the unmatched token.
	Text string
}

func (err *MatchError) Error() string {
	return errpos(err.Col, "no matching token for "+strconv.Quote(err.Text))
}

func (err *MatchError) Pos() int { return err.Col }

// SeparatorError indicates an argument separator outside a function's
// argument list. It implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "separator "+strconv.Quote(err.Sep)+" outside a function")
}

func (err *SeparatorError) Pos() int { return err.Col }

// ArityError indicates a token with the wrong number of subexpressions.
// It implements InputError.
type ArityError struct {
	// Col is the position of the token.
	Col int
	// Token is the token's text.
	Token string
	// Want and Got are the expected and actual subexpression counts.
	Want, Got int
}

func (err *ArityError) Error() string {
	return errpos(err.Col, "wrong subexpression count for "+strconv.Quote(err.Token)+
		": want "+strconv.Itoa(err.Want)+", got "+strconv.Itoa(err.Got))
}

func (err *ArityError) Pos() int { return err.Col }

// CallError indicates a function call with an argument count the function
// does not accept. It implements InputError.
type CallError struct {
	// Col is the position of the function head.
	Col int
	// Func is the function's spelling.
	Func string
	// Len is the number of arguments the call supplied.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+"...) with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int { return err.Col }

// TypeError indicates a token that cannot appear where it was found. It is
// a defense against malformed trees and implements InputError.
type TypeError struct {
	// Col is the position of the token.
	Col int
	// Text is the token's text.
	Text string
}

func (err *TypeError) Error() string {
	return errpos(err.Col, "token "+strconv.Quote(err.Text)+" is not evaluable here")
}

func (err *TypeError) Pos() int { return err.Col }

// EmptyExpressionError indicates an empty input. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position at which an expression was expected.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int { return err.Col }

// NestingError indicates nesting beyond the supported depth. It implements
// InputError.
type NestingError struct {
	// Col is the position of the token at which the limit was exceeded.
	Col int
}

func (err *NestingError) Error() string {
	return errpos(err.Col, "expression nested too deeply")
}

func (err *NestingError) Pos() int { return err.Col }

// NameError is an error from a lookup for a variable that is missing from
// the evaluation context. It implements InputError.
type NameError struct {
	// Name is the name that was missing.
	Name string
	// Col is the position of the variable token.
	Col int
}

func (err *NameError) Error() string {
	return errpos(err.Col, "undefined variable "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int { return err.Col }

// DomainError is an error from applying an operation to arguments outside
// its domain, such as the root of a negative number. It implements
// InputError.
type DomainError struct {
	// X is the out-of-domain argument, if known.
	X *big.Float
	// Func is a name identifying the operation.
	Func string
	// Col is the position of the operation's token.
	Col int
}

func (err *DomainError) Error() string {
	msg := "argument outside domain"
	if err.X != nil {
		msg = err.X.String() + " outside domain"
	}
	if err.Func != "" {
		msg += " of " + err.Func
	}
	return errpos(err.Col, msg)
}

func (err *DomainError) Pos() int { return err.Col }

// ZeroDivisionError is an error from a division whose divisor evaluated to
// exactly zero. It implements InputError.
type ZeroDivisionError struct {
	// Col is the position of the division token.
	Col int
}

func (err *ZeroDivisionError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *ZeroDivisionError) Pos() int { return err.Col }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*MatchError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*ArityError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*TypeError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*NestingError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*ZeroDivisionError)(nil)
)
