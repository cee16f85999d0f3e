package mathparse

import "strings"

// node is a node in the abstract syntax tree of an expression. A node owns
// its token and its children outright; there are no back-references and no
// sharing between trees.
type node struct {
	tok  Token
	kids []*node
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt reconstructs the node's source text. Each variant interleaves its own
// source span with its children's text in its own order; closing brackets
// and bars are not part of the tree, so pair variants synthesize them.
func (n *node) fmt(b *strings.Builder) {
	switch n.tok.Kind {
	case KindNumber, KindPi, KindE, KindVariable, KindSep:
		b.WriteString(n.tok.Text)
	case KindAdd, KindSub, KindMul, KindDiv, KindPow:
		if len(n.kids) == 1 {
			// Negation: sign then operand.
			b.WriteString(n.tok.Text)
			n.kids[0].fmt(b)
			return
		}
		if len(n.kids) == 0 {
			b.WriteString(n.tok.Text)
			return
		}
		n.kids[0].fmt(b)
		b.WriteString(n.tok.Text)
		n.kids[1].fmt(b)
	case KindOpen, KindClose, KindMod:
		b.WriteString(n.tok.Text)
		for _, kid := range n.kids {
			kid.fmt(b)
		}
		if n.tok.Kind == KindMod {
			b.WriteByte('|')
		} else {
			b.WriteByte(')')
		}
	case KindFunc, KindArgFunc:
		b.WriteString(n.tok.Text)
		for i, kid := range n.kids {
			if i > 0 {
				b.WriteString(", ")
			}
			kid.fmt(b)
		}
		b.WriteByte(')')
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
	}
}

// view copies the tree into its exported form.
func (n *node) view() *Node {
	v := &Node{Token: n.tok}
	for _, kid := range n.kids {
		v.Children = append(v.Children, kid.view())
	}
	return v
}
