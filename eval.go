package mathparse

import (
	"math/big"
	"strings"
	"sync"

	"github.com/zephyrtronium/bigfloat"
)

// Context is a context for evaluating expressions: the variable bindings
// and the working precision. The bindings are never modified by
// evaluation, so a single context may serve any number of concurrent
// evaluations as long as no one calls Set meanwhile.
type Context struct {
	names map[string]*big.Float
	prec  uint

	// mu guards nums, which evaluation fills lazily.
	mu   sync.Mutex
	nums map[string]*big.Float
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  *big.Float
	}
	varsopt map[string]*big.Float
	precopt uint
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}
func (precopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val *big.Float) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]*big.Float) ContextOption {
	return varsopt(vars)
}

// Prec sets the precision of calculations.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given,
// the default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		names: make(map[string]*big.Float, len(ctx.names)),
		nums:  make(map[string]*big.Float, len(ctx.nums)),
		prec:  ctx.prec,
	}
	// Apply the last precision first so variables are copied at the
	// precision they will be used at.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			n.prec = uint(p)
			break
		}
	}
	// Literal caches carry over only when they are at least as precise as
	// the new precision needs.
	if n.prec <= ctx.prec {
		ctx.mu.Lock()
		for k, v := range ctx.nums {
			n.nums[k] = new(big.Float).SetPrec(n.prec).Set(v)
		}
		ctx.mu.Unlock()
	}
	for name, val := range ctx.names {
		n.names[name] = new(big.Float).SetPrec(n.prec).Set(val)
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = new(big.Float).SetPrec(n.prec).Set(opt.val)
		case varsopt:
			for k, v := range opt {
				n.names[k] = new(big.Float).SetPrec(n.prec).Set(v)
			}
		case precopt:
			// Already done.
		case nil:
			// Skip.
		default:
			panic("mathparse: unknown option type")
		}
	}
	return &n
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, value *big.Float) *Context {
	if ctx.names == nil {
		ctx.names = make(map[string]*big.Float)
	}
	ctx.names[name] = new(big.Float).SetPrec(ctx.prec).Set(value)
	return ctx
}

// Lookup returns a copy of the value of a variable. If there is no such
// variable in the context, then the result is nil.
func (ctx *Context) Lookup(name string) *big.Float {
	v := ctx.names[name]
	if v == nil {
		return nil
	}
	return new(big.Float).Copy(v)
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// num gets a possibly cached literal value from its text. The cache is
// shared by every evaluation using the context; the returned value must be
// treated as read-only.
func (ctx *Context) num(s string) *big.Float {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if r := ctx.nums[s]; r != nil {
		return r
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
	if err != nil {
		// The tokenizer admits only digits and a single point.
		panic("mathparse: invalid number: " + s + " (" + err.Error() + ")")
	}
	if ctx.nums == nil {
		ctx.nums = make(map[string]*big.Float)
	}
	ctx.nums[s] = r
	return r
}

// Eval evaluates the expression and returns the result. Evaluation is a
// pure function of the expression and the context's bindings; the same
// expression may be evaluated any number of times.
func (e *Expr) Eval(ctx *Context) (*big.Float, error) {
	if ctx == nil {
		ctx = NewContext()
	}
	return ctx.eval(e.root)
}

// eval computes the node's value: children first, in order, then the
// node's own rule applied to their values. Arity is checked before the
// rule.
func (ctx *Context) eval(n *node) (*big.Float, error) {
	t := n.tok
	switch t.Kind {
	case KindNumber:
		return new(big.Float).SetPrec(ctx.prec).Set(ctx.num(t.Text)), nil
	case KindPi:
		return bigfloat.Pi(new(big.Float).SetPrec(ctx.prec)), nil
	case KindE:
		return bigfloat.Exp(new(big.Float).SetPrec(ctx.prec), floatOne), nil
	case KindVariable:
		v := ctx.names[t.Text]
		if v == nil {
			return nil, &NameError{Name: t.Text, Col: t.Pos}
		}
		return new(big.Float).SetPrec(ctx.prec).Set(v), nil
	case KindSep:
		return nil, &SeparatorError{Col: t.Pos, Sep: t.Text}
	}
	args, err := ctx.evalKids(n)
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case KindAdd:
		if len(args) < 2 {
			return nil, &ArityError{Col: t.Pos, Token: t.Text, Want: 2, Got: len(args)}
		}
		r := args[0]
		for _, a := range args[1:] {
			r.Add(r, a)
		}
		return r, nil
	case KindSub:
		switch len(args) {
		case 1:
			// Negation.
			return args[0].Neg(args[0]), nil
		case 2:
			return args[0].Sub(args[0], args[1]), nil
		case 0:
			return nil, &ArityError{Col: t.Pos, Token: t.Text, Want: 1, Got: 0}
		default:
			return nil, &ArityError{Col: t.Pos, Token: t.Text, Want: 2, Got: len(args)}
		}
	case KindMul:
		if len(args) < 2 {
			return nil, &ArityError{Col: t.Pos, Token: t.Text, Want: 2, Got: len(args)}
		}
		r := args[0]
		for _, a := range args[1:] {
			r.Mul(r, a)
		}
		return r, nil
	case KindDiv:
		if len(args) < 2 {
			return nil, &ArityError{Col: t.Pos, Token: t.Text, Want: 2, Got: len(args)}
		}
		r := args[0]
		for _, a := range args[1:] {
			if a.Sign() == 0 {
				return nil, &ZeroDivisionError{Col: t.Pos}
			}
			r.Quo(r, a)
		}
		return r, nil
	case KindPow:
		if len(args) != 2 {
			return nil, &ArityError{Col: t.Pos, Token: t.Text, Want: 2, Got: len(args)}
		}
		return ctx.pow(t, args[0], args[1])
	case KindOpen, KindClose:
		if len(args) != 1 {
			return nil, &ArityError{Col: t.Pos, Token: t.Text, Want: 1, Got: len(args)}
		}
		return args[0], nil
	case KindMod:
		if len(args) != 1 {
			return nil, &ArityError{Col: t.Pos, Token: t.Text, Want: 1, Got: len(args)}
		}
		return args[0].Abs(args[0]), nil
	case KindFunc, KindArgFunc:
		if t.fn == nil {
			return nil, &TypeError{Col: t.Pos, Text: t.Text}
		}
		if !t.fn.CanCall(len(args)) {
			return nil, &CallError{Col: t.Pos, Func: strings.TrimSuffix(t.Text, "("), Len: len(args)}
		}
		r := new(big.Float).SetPrec(ctx.prec)
		if err := t.fn.Call(ctx, args, r); err != nil {
			if de, ok := err.(*DomainError); ok {
				if de.Col == 0 {
					de.Col = t.Pos
				}
				if de.Func == "" {
					de.Func = strings.TrimSuffix(t.Text, "(")
				}
			}
			return nil, err
		}
		return r, nil
	default:
		return nil, &TypeError{Col: t.Pos, Text: t.Text}
	}
}

// evalKids evaluates the node's children in order.
func (ctx *Context) evalKids(n *node) ([]*big.Float, error) {
	if len(n.kids) == 0 {
		return nil, nil
	}
	args := make([]*big.Float, len(n.kids))
	for i, kid := range n.kids {
		v, err := ctx.eval(kid)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// pow raises l to r. A negative base is legal only with an integer
// exponent of at least one: exponents below one take roots, and roots of
// negative numbers leave the reals, cube roots included. big.Float has no
// NaN, so the remaining fractional exponents are domain errors too.
// bigfloat.Pow requires a non-negative base; legal negative bases go
// through their magnitude with the sign restored by the exponent's parity.
func (ctx *Context) pow(t Token, l, r *big.Float) (*big.Float, error) {
	if l.Sign() == 0 {
		out := new(big.Float).SetPrec(ctx.prec)
		switch r.Sign() {
		case -1:
			return out.SetInf(false), nil
		case 0:
			return out.SetInt64(1), nil
		default:
			return out, nil
		}
	}
	if l.Sign() < 0 {
		if r.Cmp(floatOne) < 0 || !r.IsInt() {
			return nil, &DomainError{X: l, Func: t.Text, Col: t.Pos}
		}
		exp, _ := r.Int(nil)
		mag := new(big.Float).SetPrec(ctx.prec).Abs(l)
		out := bigfloat.Pow(new(big.Float).SetPrec(ctx.prec), mag, r)
		if exp.Bit(0) == 1 {
			out.Neg(out)
		}
		return out, nil
	}
	return bigfloat.Pow(new(big.Float).SetPrec(ctx.prec), l, r), nil
}

// Evaluate parses src and evaluates it against the given variable
// bindings. It is the one-call entry point; use Parse and Expr.Eval to
// reuse a parse or to inspect tokens and tree.
func Evaluate(src string, env map[string]*big.Float) (*big.Float, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return e.Eval(NewContext(SetVars(env)))
}

// EvalString is a shortcut to parse and evaluate a string expression with
// context options.
func EvalString(src string, opts ...ContextOption) (*big.Float, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return e.Eval(NewContext(opts...))
}

var floatOne = big.NewFloat(1)
