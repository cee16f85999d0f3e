package mathparse_test

import (
	"fmt"
	"math/big"

	"github.com/halfmoss/mathparse"
)

type mean struct{}

func (mean) CanCall(n int) bool {
	return n > 0
}

func (mean) Call(ctx *mathparse.Context, args []*big.Float, r *big.Float) error {
	r.SetInt64(0)
	for _, a := range args {
		r.Add(r, a)
	}
	r.Quo(r, big.NewFloat(float64(len(args))))
	return nil
}

func ExampleFunc() {
	opt := mathparse.Recognize(mathparse.Variadic(mean{}, "mean("))

	a, _ := mathparse.Parse("mean(1, 2, 3, 4)", opt)
	b, _ := mathparse.Parse("mean(2^10)", opt)
	ctx := mathparse.NewContext(mathparse.Prec(32))
	x, _ := a.Eval(ctx)
	y, _ := b.Eval(ctx)
	fmt.Println(x, a)
	fmt.Println(y, b)

	// Output:
	// 2.5 mean(1, 2, 3, 4)
	// 1024 mean(2^10)
}
