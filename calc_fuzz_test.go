package veq_test

import (
	"math"
	"testing"

	"github.com/wciesialka/veq"
)

func FuzzCalculate(f *testing.F) {
	f.Add("sin(x)^2+log(x*2)")
	f.Add("2^3^2")
	f.Add("-x*(1--1)")
	f.Add("tan(t%pi)/g")
	f.Add("1/(x-1)")
	f.Fuzz(func(t *testing.T, src string) {
		calc := veq.New(src)
		bindings := map[string]float64{"x": 1, "t": 2}
		r1, err := calc.Calculate(bindings)
		if err != nil {
			return
		}
		if math.IsNaN(r1) || math.IsInf(r1, 0) {
			t.Errorf("%q returned non-finite %g without error", src, r1)
		}
		r2, err := calc.Calculate(bindings)
		if err != nil {
			t.Errorf("%q errored on the second call: %v", src, err)
		}
		if r1 != r2 {
			t.Errorf("%q is not deterministic: %g then %g", src, r1, r2)
		}
	})
}
