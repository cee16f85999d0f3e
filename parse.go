package mathparse

import (
	"slices"
	"strings"
)

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// root is the root node of the expression.
	root *node
	// toks is the flat token sequence the tree was built from.
	toks []Token
	// src is the original input.
	src string
	// names is the sorted list of variable names used in the expression.
	names []string
}

// Parse tokenizes src, resolves pair tokens, and partitions the token
// sequence into a tree. The given options are applied in order. Empty input
// is an error.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	var cfg parsecfg
	for _, opt := range opts {
		cfg = opt.parseOption(cfg)
	}
	toks, err := tokenize(src, cfg.recognizers())
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{Col: 1}
	}
	s := &session{src: src, toks: toks, pairs: make(map[int]int)}
	if err := s.backpatch(); err != nil {
		return nil, err
	}
	root, err := s.build(0, len(toks), 0)
	if err != nil {
		return nil, err
	}
	e := &Expr{root: root, toks: toks, src: src}
	seen := make(map[string]bool)
	for _, t := range toks {
		if t.Kind == KindVariable && !seen[t.Text] {
			seen[t.Text] = true
			e.names = append(e.names, t.Text)
		}
	}
	slices.Sort(e.names)
	return e, nil
}

// build partitions the token slice [lo, hi) into a tree. A single token is
// a leaf. Otherwise a linear scan selects the slice's least-binding token
// as its root, replacing the candidate whenever it binds at least as
// tightly as the scanned token; equal binary operators therefore root at
// the rightmost occurrence, which is what makes them left-associative. The
// selected root then splits the remainder into child slices by its own
// rule and build recurses into each.
func (s *session) build(lo, hi, depth int) (*node, error) {
	if depth > maxNesting {
		return nil, &NestingError{Col: s.toks[lo].Pos}
	}
	if hi-lo == 1 {
		t := s.toks[lo]
		if t.Kind == KindSep {
			return nil, &SeparatorError{Col: t.Pos, Sep: t.Text}
		}
		return &node{tok: t}, nil
	}
	cand := lo
	for i := lo; i < hi; i = s.next(i) {
		t := s.toks[i]
		if t.Kind == KindSep {
			// A separator surviving to a precedence scan is outside any
			// function's argument list.
			return nil, &SeparatorError{Col: t.Pos, Sep: t.Text}
		}
		if s.toks[cand].priority() >= t.priority() {
			cand = i
		}
	}
	root := s.toks[cand]
	switch root.Kind {
	case KindSep:
		return nil, &SeparatorError{Col: root.Pos, Sep: root.Text}
	case KindNumber, KindPi, KindE, KindVariable:
		// A childless token rooting a multi-token slice means adjacent
		// operands with no operator between them.
		return nil, &ArityError{Col: root.Pos, Token: root.Text, Want: 0, Got: hi - lo - 1}
	case KindAdd, KindSub, KindMul, KindDiv, KindPow:
		n := &node{tok: root}
		if err := s.attach(n, lo, cand, depth); err != nil {
			return nil, err
		}
		if err := s.attach(n, cand+1, hi, depth); err != nil {
			return nil, err
		}
		return n, nil
	case KindOpen, KindClose, KindMod, KindFunc:
		j, err := s.span(cand, lo, hi)
		if err != nil {
			return nil, err
		}
		n := &node{tok: root}
		if err := s.attach(n, cand+1, j, depth); err != nil {
			return nil, err
		}
		return n, nil
	case KindArgFunc:
		j, err := s.span(cand, lo, hi)
		if err != nil {
			return nil, err
		}
		n := &node{tok: root}
		start := cand + 1
		for k := cand + 1; k < j; k = s.next(k) {
			if s.toks[k].Kind != KindSep {
				continue
			}
			if err := s.attach(n, start, k, depth); err != nil {
				return nil, err
			}
			start = k + 1
		}
		if err := s.attach(n, start, j, depth); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, &TypeError{Col: root.Pos, Text: root.Text}
	}
}

// span returns the partner position of the pair token at cand, which roots
// the slice [lo, hi). A pair token may root a slice only when its matched
// range is the whole slice; any token outside it would be an operand with
// no operator.
func (s *session) span(cand, lo, hi int) (int, error) {
	root := s.toks[cand]
	j, ok := s.pairs[cand]
	if !ok {
		return 0, &MatchError{Col: root.Pos, Text: root.Text}
	}
	if cand != lo || j != hi-1 {
		return 0, &ArityError{Col: root.Pos, Token: root.Text, Want: 0, Got: hi - lo - (j - cand + 1)}
	}
	return j, nil
}

// attach builds the child slice [lo, hi) and appends it to n. An empty
// slice contributes no child; whether the resulting child count is legal is
// the parent token's business, checked when it evaluates.
func (s *session) attach(n *node, lo, hi, depth int) error {
	if hi <= lo {
		return nil
	}
	kid, err := s.build(lo, hi, depth+1)
	if err != nil {
		return err
	}
	n.kids = append(n.kids, kid)
	return nil
}

// Vars returns the names of the variables used in the expression, sorted.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// Tokens returns a copy of the expression's token sequence.
func (e *Expr) Tokens() []Token {
	return append(([]Token)(nil), e.toks...)
}

// String reconstructs the expression's source text from its tree. The
// result re-parses to an equivalent tree.
func (e *Expr) String() string {
	var b strings.Builder
	e.root.fmt(&b)
	return b.String()
}

// AST returns a read-only view of the expression's tree.
func (e *Expr) AST() *Node {
	return e.root.view()
}

// Node is an exported view of a node in a parsed expression's tree. The
// children are ordered; for asymmetric operations the order is the
// argument order.
type Node struct {
	Token    Token
	Children []*Node
}
