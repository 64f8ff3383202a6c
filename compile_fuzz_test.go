package veq_test

import (
	"testing"

	"github.com/wciesialka/veq"
)

func FuzzCompile(f *testing.F) {
	f.Add("sin(x)^2+log(x*2)")
	f.Add("((((x))))")
	f.Add("2--3%4^5")
	f.Add(")(")
	f.Add("asinh(acosh(atanh(x)))")
	f.Fuzz(func(t *testing.T, src string) {
		calc := veq.New(src)
		err := calc.Compile()
		if err != nil {
			switch err.(type) {
			case *veq.LexError, *veq.ParseError: // do nothing
			default:
				t.Errorf("compiling %q gave a non-syntax error %#v", src, err)
			}
			return
		}
		// A program that compiled can only fail per call; syntax errors
		// never surface at evaluation time.
		if _, err := calc.Calculate(nil); err != nil {
			switch err.(type) {
			case *veq.LexError, *veq.ParseError:
				t.Errorf("compiled %q but evaluation gave syntax error %v", src, err)
			}
		}
	})
}
