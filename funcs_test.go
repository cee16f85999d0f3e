package mathparse

import (
	"math/big"
	"testing"
)

func TestMonadicDomain(t *testing.T) {
	f := Monadic(func(out, in *big.Float) *big.Float {
		panic(big.ErrNaN{})
	})
	if f.CanCall(2) || !f.CanCall(1) {
		t.Error("monadic function has wrong arity")
	}
	err := f.Call(NewContext(), []*big.Float{big.NewFloat(-3)}, new(big.Float))
	if err == nil {
		t.Fatal("no error from a domain panic")
	}
	derr, ok := err.(*DomainError)
	if !ok {
		t.Fatalf("error %#v is not *DomainError", err)
	}
	if derr.X == nil || derr.X.Cmp(big.NewFloat(-3)) != 0 {
		t.Errorf("error does not carry the argument: %v", derr.X)
	}
}

func TestMonadicPanic(t *testing.T) {
	f := Monadic(func(out, in *big.Float) *big.Float {
		panic("unrelated")
	})
	defer func() {
		if recover() == nil {
			t.Error("non-domain panic was swallowed")
		}
	}()
	f.Call(NewContext(), []*big.Float{new(big.Float)}, new(big.Float))
}

func TestDyadicArity(t *testing.T) {
	f := Dyadic(func(out, a, b *big.Float) *big.Float { return out.Add(a, b) })
	if f.CanCall(1) || f.CanCall(3) || !f.CanCall(2) {
		t.Error("dyadic function has wrong arity")
	}
	r := new(big.Float).SetPrec(64)
	if err := f.Call(NewContext(), []*big.Float{big.NewFloat(2), big.NewFloat(3)}, r); err != nil {
		t.Fatal(err)
	}
	if f, _ := r.Float64(); f != 5 {
		t.Errorf("want 5, got %g", r)
	}
}

func TestLogArity(t *testing.T) {
	if !fnLog.CanCall(1) || !fnLog.CanCall(2) {
		t.Error("log should accept one or two arguments")
	}
	if fnLog.CanCall(0) || fnLog.CanCall(3) {
		t.Error("log accepts a wrong argument count")
	}
}
