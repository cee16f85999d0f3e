package mathparse

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a function from reals to reals. Functions may but generally
// should not look up variables. The function should set r to its result
// and should not use the value of r otherwise.
type Func interface {
	// Call evaluates the function on args. args has a length for which
	// CanCall returned true. Call may modify the elements of args. The
	// function must set r to its result, at r's precision, and should not
	// use the value of r otherwise.
	Call(ctx *Context, args []*big.Float, r *big.Float) error

	// CanCall returns whether the function can be called with n arguments.
	// The evaluator checks CanCall before Call and reports a CallError for
	// argument counts the function rejects.
	CanCall(n int) bool
}

type monadic struct {
	f func(out, in *big.Float) *big.Float
}

func (m monadic) Call(ctx *Context, args []*big.Float, r *big.Float) (err error) {
	defer func() { err = domainRecover(recover(), args[0], err) }()
	m.f(r, args[0])
	return nil
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func. f must set out to
// its result, to out's precision; its return value is always ignored. If f
// is called on an argument outside f's domain, it should panic with an
// error of type big.ErrNaN, or that unwraps to it.
func Monadic(f func(out, in *big.Float) *big.Float) Func {
	return monadic{f}
}

type dyadic struct {
	f func(out, a, b *big.Float) *big.Float
}

func (d dyadic) Call(ctx *Context, args []*big.Float, r *big.Float) (err error) {
	defer func() { err = domainRecover(recover(), args[0], err) }()
	d.f(r, args[0], args[1])
	return nil
}

func (d dyadic) CanCall(n int) bool {
	return n == 2
}

// Dyadic wraps a function of two variables into a Func, under the same
// contract as Monadic.
func Dyadic(f func(out, a, b *big.Float) *big.Float) Func {
	return dyadic{f}
}

type niladic struct {
	f func(out *big.Float) *big.Float
}

func (n niladic) Call(ctx *Context, args []*big.Float, r *big.Float) error {
	n.f(r)
	return nil
}

func (n niladic) CanCall(k int) bool {
	return k == 0
}

// Niladic wraps a function of zero variables, generally one computing a
// constant, into a Func. f must set out to its result; its return value is
// always ignored. Unlike Monadic, the wrapped function is expected never
// to panic.
func Niladic(f func(out *big.Float) *big.Float) Func {
	return niladic{f}
}

// domainRecover converts a big.ErrNaN panic into a DomainError. Any other
// panic resumes.
func domainRecover(p interface{}, arg *big.Float, err error) error {
	if p == nil {
		return err
	}
	e, ok := p.(error)
	if !ok {
		panic(p)
	}
	var de *DomainError
	if errors.As(e, &de) {
		return de
	}
	if errors.As(e, &big.ErrNaN{}) {
		return &DomainError{X: new(big.Float).Copy(arg)}
	}
	panic(e)
}

// fromFloat64 lifts a float64 function into the big.Float contract.
// Results are exact only to float64 precision. A NaN result panics in
// SetFloat64, which the Monadic wrapper reports as a DomainError.
func fromFloat64(f func(float64) float64) func(out, in *big.Float) *big.Float {
	return func(out, in *big.Float) *big.Float {
		x, _ := in.Float64()
		return out.SetFloat64(f(x))
	}
}

// logE is the natural logarithm with an explicit domain check, since
// bigfloat.Log does not terminate for every argument outside its domain.
func logE(out, in *big.Float) *big.Float {
	if in.Sign() <= 0 {
		panic(big.ErrNaN{})
	}
	return bigfloat.Log(out, in)
}

// logBase computes the logarithm of x in the given base.
func logBase(out, x, base *big.Float) *big.Float {
	if base.Sign() <= 0 || base.Cmp(floatOne) == 0 {
		panic(big.ErrNaN{})
	}
	den := logE(new(big.Float).SetPrec(out.Prec()), base)
	logE(out, x)
	return out.Quo(out, den)
}

// logFunc is log with an optional base: log(x) is base ten and
// log(x, base) is explicit.
type logFunc struct{}

func (logFunc) Call(ctx *Context, args []*big.Float, r *big.Float) (err error) {
	defer func() { err = domainRecover(recover(), args[0], err) }()
	base := big.NewFloat(10)
	if len(args) == 2 {
		base = args[1]
	}
	logBase(r, args[0], base)
	return nil
}

func (logFunc) CanCall(n int) bool {
	return n == 1 || n == 2
}

// expm computes e**x and, unless inv is nil, e**-x at out's precision.
func expm(out, inv, x *big.Float) *big.Float {
	bigfloat.Exp(out, x)
	if inv != nil {
		inv.SetPrec(out.Prec()).Quo(floatOne, out)
	}
	return out
}

var (
	fnLn    = Monadic(logE)
	fnLog2  = Monadic(func(out, in *big.Float) *big.Float { return logBase(out, in, big.NewFloat(2)) })
	fnLog10 = Monadic(func(out, in *big.Float) *big.Float { return logBase(out, in, big.NewFloat(10)) })
	fnLog   = Func(logFunc{})
	fnExp   = Monadic(bigfloat.Exp)
	fnSqrt  = Monadic((*big.Float).Sqrt)
	fnSign  = Monadic(func(out, in *big.Float) *big.Float { return out.SetInt64(int64(in.Sign())) })

	fnSinh = Monadic(func(out, in *big.Float) *big.Float {
		inv := new(big.Float)
		expm(out, inv, in)
		out.Sub(out, inv)
		return out.Quo(out, floatTwo)
	})
	fnCosh = Monadic(func(out, in *big.Float) *big.Float {
		inv := new(big.Float)
		expm(out, inv, in)
		out.Add(out, inv)
		return out.Quo(out, floatTwo)
	})
	fnTanh = Monadic(func(out, in *big.Float) *big.Float {
		inv := new(big.Float)
		expm(out, inv, in)
		num := new(big.Float).SetPrec(out.Prec()).Sub(out, inv)
		out.Add(out, inv)
		return out.Quo(num, out)
	})
	fnAsinh = Monadic(func(out, in *big.Float) *big.Float {
		// ln(x + sqrt(x**2 + 1))
		t := new(big.Float).SetPrec(out.Prec()).Mul(in, in)
		t.Add(t, floatOne).Sqrt(t)
		t.Add(t, in)
		return logE(out, t)
	})
	fnAcosh = Monadic(func(out, in *big.Float) *big.Float {
		// ln(x + sqrt(x**2 - 1)), x >= 1
		if in.Cmp(floatOne) < 0 {
			panic(big.ErrNaN{})
		}
		t := new(big.Float).SetPrec(out.Prec()).Mul(in, in)
		t.Sub(t, floatOne).Sqrt(t)
		t.Add(t, in)
		return logE(out, t)
	})
	fnAtanh = Monadic(func(out, in *big.Float) *big.Float {
		// ln((1+x)/(1-x)) / 2, |x| < 1
		den := new(big.Float).SetPrec(out.Prec()).Sub(floatOne, in)
		if den.Sign() <= 0 || in.Cmp(floatNegOne) <= 0 {
			panic(big.ErrNaN{})
		}
		t := new(big.Float).SetPrec(out.Prec()).Add(floatOne, in)
		t.Quo(t, den)
		logE(out, t)
		return out.Quo(out, floatTwo)
	})

	fnSin  = Monadic(fromFloat64(math.Sin))
	fnCos  = Monadic(fromFloat64(math.Cos))
	fnTan  = Monadic(fromFloat64(math.Tan))
	fnCtan = Monadic(fromFloat64(func(x float64) float64 { return 1 / math.Tan(x) }))
	fnAsin = Monadic(fromFloat64(math.Asin))
	fnAcos = Monadic(fromFloat64(math.Acos))
	fnAtan = Monadic(fromFloat64(math.Atan))
)

var (
	floatTwo    = big.NewFloat(2)
	floatNegOne = big.NewFloat(-1)
)
