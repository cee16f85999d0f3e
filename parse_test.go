package mathparse

import (
	"reflect"
	"strings"
	"testing"
)

// ungroup looks through grouping brackets so that trees differing only in
// redundant parentheses compare equal.
func ungroup(n *node) *node {
	for n != nil && n.tok.Kind == KindOpen && len(n.kids) == 1 {
		n = n.kids[0]
	}
	return n
}

// diff finds the first in-order pair of nodes at which two trees disagree,
// or nil, nil if the trees are equal up to grouping brackets.
func (n *node) diff(m *node) (*node, *node) {
	n, m = ungroup(n), ungroup(m)
	if n == nil || m == nil {
		if n != nil || m != nil {
			return n, m
		}
		return nil, nil
	}
	if n.tok.Kind != m.tok.Kind {
		return n, m
	}
	switch n.tok.Kind {
	case KindNumber, KindVariable, KindFunc, KindArgFunc:
		if n.tok.Text != m.tok.Text {
			return n, m
		}
	}
	if len(n.kids) != len(m.kids) {
		return n, m
	}
	for i := range n.kids {
		if d, e := n.kids[i].diff(m.kids[i]); d != nil || e != nil {
			return d, e
		}
	}
	return nil, nil
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"paren", "(x)", "x"},
		{"multi", "(((x)))", "x"},
		{"spaces", " 1 + 2 ", "1+2"},

		{"addmul", "2+3*4", "2+(3*4)"},
		{"muladd", "2*3+4", "(2*3)+4"},
		{"mulpow", "2*3^4", "2*(3^4)"},
		{"grouped", "(2+3)*4", "(2+3)*(4)"},
		{"desc", "2^3*4+5", "((2^3)*4)+5"},
		{"asc", "2+3*4^5", "2+(3*(4^5))"},

		{"add4", "1+2+3+4", "((1+2)+3)+4"},
		{"sub4", "1-2-3-4", "((1-2)-3)-4"},
		{"div4", "1/2/3/4", "((1/2)/3)/4"},
		{"pow4", "2^3^4", "(2^3)^4"},

		{"neg", "-x", "-(x)"},
		{"negadd", "-5+3", "(-5)+3"},
		{"doubleneg", "3--2", "3-(-2)"},
		{"negmul", "2*-3", "2*(-3)"},
		{"powneg", "2^-3", "2^(-3)"},
		{"negpow", "-2^2", "(-2)^2"},
		{"negneg", "--x", "-(-x)"},
		{"negsub", "-x-x", "(-x)-x"},

		{"modadd", "|x|+|y|", "(|x|)+(|y|)"},
		{"modneg", "|-x|", "|(-x)|"},
		{"funcgroup", "sqrt(2+3)", "sqrt((2+3))"},
		{"funcneg", "-sin(x)", "-(sin(x))"},
		{"argfunc", "log(8,2)", "log(8 , 2)"},
		{"argfuncsemi", "log(8;2)", "log(8, 2)"},
		{"argfuncexpr", "log(2^3, 1+1)", "log((2^3), (1+1))"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.a)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.a, err)
			}
			b, err := Parse(c.b)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.b, err)
			}
			d, e := a.root.diff(b.root)
			if d != nil || e != nil {
				t.Errorf("mismatched trees:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.a, a.root, d, c.b, b.root, e)
			}
		})
	}
}

func TestParseExact(t *testing.T) {
	cases := []struct {
		name string
		src  string
		n    *node
	}{
		{
			name: "leaf",
			src:  "5",
			n:    &node{tok: Token{Kind: KindNumber, Text: "5"}},
		},
		{
			name: "neg",
			src:  "-x",
			n: &node{
				tok: Token{Kind: KindSub, Text: "-"},
				kids: []*node{
					{tok: Token{Kind: KindVariable, Text: "x"}},
				},
			},
		},
		{
			name: "mod",
			src:  "|x|",
			n: &node{
				tok: Token{Kind: KindMod, Text: "|"},
				kids: []*node{
					{tok: Token{Kind: KindVariable, Text: "x"}},
				},
			},
		},
		{
			name: "argfunc",
			src:  "log(8,2)",
			n: &node{
				tok: Token{Kind: KindArgFunc, Text: "log("},
				kids: []*node{
					{tok: Token{Kind: KindNumber, Text: "8"}},
					{tok: Token{Kind: KindNumber, Text: "2"}},
				},
			},
		},
		{
			name: "sub",
			src:  "4-5-6",
			n: &node{
				tok: Token{Kind: KindSub, Text: "-"},
				kids: []*node{
					{
						tok: Token{Kind: KindSub, Text: "-"},
						kids: []*node{
							{tok: Token{Kind: KindNumber, Text: "4"}},
							{tok: Token{Kind: KindNumber, Text: "5"}},
						},
					},
					{tok: Token{Kind: KindNumber, Text: "6"}},
				},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			d, e := a.root.diff(c.n)
			if d != nil || e != nil {
				t.Errorf("mismatched tree:\n\twant %v which has %v\n\tgot  %v which has %v from %q", c.n, e, a.root, d, c.src)
			}
		})
	}
}

func TestExprString(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"num", "1"},
		{"paren", "(x)"},
		{"add", "x+y"},
		{"sub4", "1-2-3-4"},
		{"pow", "2^3"},
		{"neg", "-x"},
		{"negparen", "-(2+3)"},
		{"powneg", "2^-3"},
		{"mod", "|2-5|"},
		{"func", "sqrt(16)*2"},
		{"argfunc", "log(8, 2)"},
		{"nestfunc", "sin(cos(x))"},
		{"mixed", "2^3*4+|x|/sqrt(2)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			s := a.String()
			b, err := Parse(s)
			if err != nil {
				t.Fatalf("%q -> %q failed to parse: %v", c.src, s, err)
			}
			d, e := a.root.diff(b.root)
			if d != nil || e != nil {
				t.Errorf("mismatched trees:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.src, a.root, d, s, b.root, e)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  InputError
	}{
		{"empty", "", new(EmptyExpressionError)},
		{"spaces", " \t ", new(EmptyExpressionError)},
		{"left", "(2+3", new(MatchError)},
		{"right", "2+3)", new(MatchError)},
		{"bar", "|2+3", new(MatchError)},
		{"funchead", "sqrt(16", new(MatchError)},
		{"lonely", "(", new(MatchError)},
		{"sep", "2,3", new(SeparatorError)},
		{"sepparen", "(2,3)", new(SeparatorError)},
		{"sepfunc", "sqrt(1,2)", new(SeparatorError)},
		{"seplead", ",2", new(SeparatorError)},
		{"adjacent", "2 3", new(ArityError)},
		{"adjacentvar", "2x", new(ArityError)},
		{"adjacentparen", "2(3)", new(ArityError)},
		{"twodots", "1.2.3", new(LexError)},
		{"symbol", "2+$", new(LexError)},
		{"deepneg", strings.Repeat("-", 5000) + "1", new(NestingError)},
		{"deepparen", strings.Repeat("(", 5000) + "1" + strings.Repeat(")", 5000), new(MatchError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src)
			if a != nil {
				t.Errorf("%q parsed non-nil to %v", c.src, a.root)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Errorf("wrong error type from %q: want %T, got %T (%v)", c.src, c.err, err, err)
			}
			if err == nil {
				return
			}
			if ierr, ok := err.(InputError); !ok {
				t.Errorf("error %#v from %q is not an InputError", err, c.src)
			} else if ierr.Pos() < 1 {
				t.Errorf("error from %q blames col %d", c.src, ierr.Pos())
			}
		})
	}
}

func TestTokens(t *testing.T) {
	a, err := Parse("2+3")
	if err != nil {
		t.Fatal(err)
	}
	got := a.Tokens()
	if len(got) != 3 {
		t.Fatalf("wrong token count: want 3, got %d (%v)", len(got), got)
	}
	got[0] = Token{}
	if b := a.Tokens(); b[0].Kind != KindNumber {
		t.Error("Tokens aliases the expression's sequence")
	}
}

func BenchmarkParse(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"desc", "2^3*4+5"},
		{"asc", "2+3*4^5"},
		{"parens", "((2+3)*(4+5))^(1/2)"},
		{"func", "sqrt(x^2+y^2)"},
		{"argfunc", "log(x, 2)+log(y; 2)"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Parse(c.src)
			}
		})
	}
}
