package mathparse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Recognizer tries to match one token at a byte position in the source.
// It returns the recognized token and the position of the first byte after
// it. A nil token with an advanced position consumes insignificant text
// (whitespace); a nil token at the same position is no match. The tokenizer
// fills in the token's Pos.
//
// The tokenizer tries recognizers in order and commits to the first one
// that advances, so a recognizer's position in the list is its precedence:
// "pi" must be tried before free variable names, and longer function
// spellings before shorter ones sharing a prefix.
type Recognizer func(src string, pos int) (*Token, int, error)

// Exact recognizes any of the given spellings as a token of kind k. Earlier
// spellings win, so list longer spellings of a shared prefix first.
func Exact(k TokenKind, spellings ...string) Recognizer {
	return func(src string, pos int) (*Token, int, error) {
		for _, s := range spellings {
			if strings.HasPrefix(src[pos:], s) {
				return &Token{Kind: k, Text: s}, pos + len(s), nil
			}
		}
		return nil, pos, nil
	}
}

// Function recognizes a fixed-argument function head under any of the given
// spellings, each of which must include the trailing open bracket, and
// attaches fn as its behavior.
func Function(fn Func, spellings ...string) Recognizer {
	return funcRecognizer(KindFunc, fn, spellings)
}

// Variadic recognizes a function head whose bracketed interior is split at
// every top-level separator, one argument per segment.
func Variadic(fn Func, spellings ...string) Recognizer {
	return funcRecognizer(KindArgFunc, fn, spellings)
}

func funcRecognizer(k TokenKind, fn Func, spellings []string) Recognizer {
	return func(src string, pos int) (*Token, int, error) {
		for _, s := range spellings {
			if strings.HasPrefix(src[pos:], s) {
				return &Token{Kind: k, Text: s, fn: fn}, pos + len(s), nil
			}
		}
		return nil, pos, nil
	}
}

// whitespace consumes space without yielding a token.
func whitespace(src string, pos int) (*Token, int, error) {
	for pos < len(src) {
		r, sz := utf8.DecodeRuneInString(src[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += sz
	}
	return nil, pos, nil
}

// number recognizes a numeric literal: digits with at most one decimal
// point. A second point is a lexical error rather than a new token.
func number(src string, pos int) (*Token, int, error) {
	i := pos
	dig, dot := false, false
loop:
	for i < len(src) {
		switch c := src[i]; {
		case c >= '0' && c <= '9':
			dig = true
		case c == '.':
			if dot {
				return nil, pos, &LexError{Text: src[pos : i+1], Kind: "number", Col: i + 1}
			}
			dot = true
		default:
			break loop
		}
		i++
	}
	if !dig {
		return nil, pos, nil
	}
	return &Token{Kind: KindNumber, Text: src[pos:i]}, i, nil
}

// variable recognizes a run of letters as a free variable name.
func variable(src string, pos int) (*Token, int, error) {
	i := pos
	for i < len(src) {
		r, sz := utf8.DecodeRuneInString(src[i:])
		if !unicode.IsLetter(r) {
			break
		}
		i += sz
	}
	if i == pos {
		return nil, pos, nil
	}
	return &Token{Kind: KindVariable, Text: src[pos:i]}, i, nil
}

// brackets recognizes ( and ).
func brackets(src string, pos int) (*Token, int, error) {
	switch src[pos] {
	case '(':
		return &Token{Kind: KindOpen, Text: "("}, pos + 1, nil
	case ')':
		return &Token{Kind: KindClose, Text: ")"}, pos + 1, nil
	}
	return nil, pos, nil
}

// baseRecognizers is the head of the default registry in matching order:
// whitespace, grouping, operators, then the builtin functions. Extension
// recognizers are spliced in after it, so custom function spellings take
// precedence over separators, constants, and variables but cannot shadow
// operators.
var baseRecognizers = []Recognizer{
	whitespace,

	brackets,
	Exact(KindMod, "|"),

	Exact(KindAdd, "+"),
	Exact(KindSub, "-"),
	Exact(KindMul, "*"),
	Exact(KindDiv, "/"),
	Exact(KindPow, "^"),

	Function(fnLn, "ln("),
	Function(fnLog2, "log2("),
	Function(fnLog10, "log10("),
	Variadic(fnLog, "log("),
	Function(fnExp, "exp("),
	Function(fnSqrt, "sqrt("),
	Function(fnSign, "sign("),
	Function(fnSinh, "sinh("),
	Function(fnCosh, "cosh("),
	Function(fnTanh, "tanh(", "tgh("),
	Function(fnAsinh, "asinh(", "arcsinh("),
	Function(fnAcosh, "acosh(", "arccosh("),
	Function(fnAtanh, "atanh(", "arctanh(", "atgh(", "arctgh("),
	Function(fnSin, "sin("),
	Function(fnCos, "cos("),
	Function(fnTan, "tan(", "tg("),
	Function(fnCtan, "ctan(", "ctg("),
	Function(fnAsin, "asin(", "arcsin("),
	Function(fnAcos, "acos(", "arccos("),
	Function(fnAtan, "atan(", "arctan(", "atg(", "arctg("),
}

// tailRecognizers closes the registry: separators, then literals with "pi"
// and "e" ahead of free variable names.
var tailRecognizers = []Recognizer{
	Exact(KindSep, ",", ";"),

	number,
	Exact(KindPi, "pi"),
	Exact(KindE, "e"),
	variable,
}

// DefaultRecognizers returns a copy of the default recognizer registry.
func DefaultRecognizers() []Recognizer {
	rs := make([]Recognizer, 0, len(baseRecognizers)+len(tailRecognizers))
	rs = append(rs, baseRecognizers...)
	return append(rs, tailRecognizers...)
}

// tokenize converts src into a flat token sequence by repeatedly applying
// the recognizer list at the cursor.
func tokenize(src string, rs []Recognizer) ([]Token, error) {
	var toks []Token
	pos := 0
	for pos < len(src) {
		matched := false
		for _, r := range rs {
			t, next, err := r(src, pos)
			if err != nil {
				return nil, err
			}
			if next <= pos {
				continue
			}
			if t != nil {
				t.Pos = pos + 1
				toks = append(toks, *t)
			}
			pos = next
			matched = true
			break
		}
		if !matched {
			r, _ := utf8.DecodeRuneInString(src[pos:])
			return nil, &LexError{Text: string(r), Col: pos + 1}
		}
	}
	return toks, nil
}
