//go:build go1.18
// +build go1.18

package mathparse_test

import (
	"math/big"
	"testing"

	"github.com/halfmoss/mathparse"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("2+3*4")
	f.Add("sqrt(-1)")
	f.Add("1/(2-2)")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := mathparse.EvalString(s, mathparse.SetVar("x", new(big.Float)), mathparse.Prec(16))
		if (r == nil) == (err == nil) {
			t.Errorf("%q gave result %v and error %v", s, r, err)
		}
	})
}
