package veq_test

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/wciesialka/veq"
)

func TestCalculate(t *testing.T) {
	type vc struct {
		vars map[string]float64
		r    float64
	}
	cases := []struct {
		name string
		src  string
		r    []vc
	}{
		{"num", "1", []vc{{nil, 1}}},
		{"variable", "x", []vc{
			{map[string]float64{"x": 4}, 4},
			{map[string]float64{"x": 5}, 5},
			{map[string]float64{"x": 6}, 6},
		}},
		{"square", "x^2", []vc{
			{map[string]float64{"x": 3}, 9},
			{map[string]float64{"x": 4}, 16},
		}},
		{"precedence", "2+3*4", []vc{{nil, 14}}},
		{"group", "(2+3)*4", []vc{{nil, 20}}},
		{"power", "2+2^3", []vc{{nil, 10}}},
		{"power-left-assoc", "2^3^2", []vc{{nil, 64}}},
		{"sub", "4-5-6", []vc{{nil, 4 - 5 - 6}}},
		{"div", "4/5/6", []vc{{nil, 4.0 / 5.0 / 6.0}}},
		{"mod", "7%3", []vc{{nil, 1}}},
		{"neg", "-x", []vc{{map[string]float64{"x": 4}, -4}}},
		{"neg-exponent", "2^-2", []vc{{nil, 0.25}}},
		{"neg-base", "-2^2", []vc{{nil, 4}}},
		{"double-neg", "--2", []vc{{nil, 2}}},
		{"sin", "sin(0)", []vc{{nil, 0}}},
		{"log", "log(1)", []vc{{nil, 0}}},
		{"log-e", "log(e)", []vc{{nil, math.Log(math.E)}}},
		{"nested", "sin(cos(x))", []vc{{map[string]float64{"x": 0}, math.Sin(1)}}},
		{"abs", "abs(0-3)", []vc{{nil, 3}}},
		{"sign", "sign(0-2)+sign(2)", []vc{{nil, 0}}},
		{"round", "round(2.5)", []vc{{nil, 3}}},
		{"asinh", "asinh(0)", []vc{{nil, 0}}},
		{"pi", "pi", []vc{{nil, math.Pi}}},
		{"e", "e", []vc{{nil, math.E}}},
		{"g", "g", []vc{{nil, 9.80665}}},
		{"binding-shadows-constant", "pi", []vc{{map[string]float64{"pi": 3}, 3}}},
		{"time", "x+t", []vc{{map[string]float64{"x": 1, "t": 2}, 3}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			calc := veq.New(c.src)
			for _, v := range c.r {
				r, err := calc.Calculate(v.vars)
				if err != nil {
					t.Fatalf("%q failed to calculate: %v", c.src, err)
				}
				if r != v.r {
					t.Errorf("%q with %v: want %g, got %g", c.src, v.vars, v.r, r)
				}
			}
		})
	}
}

func TestDegRad(t *testing.T) {
	r, err := veq.Evaluate("deg(pi)", nil)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r-180) > 1e-12 {
		t.Errorf("deg(pi): want 180, got %g", r)
	}
	r, err = veq.Evaluate("rad(180)", nil)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r-math.Pi) > 1e-12 {
		t.Errorf("rad(180): want pi, got %g", r)
	}
	// The conversions invert each other to within rounding.
	r, err = veq.Evaluate("deg(rad(x))", map[string]float64{"x": 37})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r-37) > 1e-12 {
		t.Errorf("deg(rad(37)): want 37, got %g", r)
	}
}

func TestCalculateReusesProgram(t *testing.T) {
	calc := veq.New("sin(2)^2+log(2*2)")
	first, err := calc.Calculate(nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		r, err := calc.Calculate(map[string]float64{})
		if err != nil {
			t.Fatal(err)
		}
		if r != first {
			t.Fatalf("call %d drifted: want %g, got %g", i, first, r)
		}
	}
	calc.Invalidate()
	r, err := calc.Calculate(nil)
	if err != nil {
		t.Fatal(err)
	}
	if r != first {
		t.Errorf("result changed after recompile: want %g, got %g", first, r)
	}
}

func TestUndefinedVariable(t *testing.T) {
	calc := veq.New("y+1")
	_, err := calc.Calculate(map[string]float64{"x": 5})
	u, ok := err.(*veq.UndefinedVariableError)
	if !ok {
		t.Fatalf("error is %#v, not *UndefinedVariableError", err)
	}
	if u.Name != "y" {
		t.Errorf("wrong name: want %q, got %q", "y", u.Name)
	}
	if msg := err.Error(); !strings.Contains(msg, "y") {
		t.Errorf("%q doesn't name the variable", msg)
	}
	// The same expression succeeds once y is bound.
	r, err := calc.Calculate(map[string]float64{"y": 1})
	if err != nil {
		t.Fatalf("calculating with y bound: %v", err)
	}
	if r != 2 {
		t.Errorf("want 2, got %g", r)
	}
}

func TestDomainErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		vars map[string]float64
	}{
		{"div-zero", "1/x", map[string]float64{"x": 0}},
		{"mod-zero", "5%0", nil},
		{"log-neg", "log(x)", map[string]float64{"x": -1}},
		{"log-zero", "log(0)", nil},
		{"pow-neg-frac", "(0-1)^0.5", nil},
		{"asin-domain", "asin(2)", nil},
		{"acos-domain", "acos(0-2)", nil},
		{"acosh-domain", "acosh(0)", nil},
		{"atanh-domain", "atanh(1)", nil},
		{"overflow", "cosh(1000)", nil},
		{"inf-product", "10^400", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := veq.New(c.src).Calculate(c.vars)
			if err == nil {
				t.Fatalf("%q with %v gave no error", c.src, c.vars)
			}
			if _, ok := err.(*veq.DomainError); !ok {
				t.Errorf("error is %#v, not *DomainError", err)
			}
		})
	}
}

func TestCompileErrorsAreFatal(t *testing.T) {
	calc := veq.New("2 3 +")
	if err := calc.Compile(); err == nil {
		t.Fatal("malformed expression compiled")
	}
	_, err := calc.Calculate(nil)
	if _, ok := err.(*veq.ParseError); !ok {
		t.Errorf("error is %#v, not *ParseError", err)
	}
}

func TestVars(t *testing.T) {
	cases := []struct {
		name string
		src  string
		vars []string
	}{
		{"none", "1+2+3", nil},
		{"one", "x^2", []string{"x"}},
		{"sorted", "t*sin(x)", []string{"t", "x"}},
		{"reuse", "x+x*x", []string{"x"}},
		{"constants-excluded", "pi*x+e", []string{"x"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			vars, err := veq.New(c.src).Vars()
			if err != nil {
				t.Fatalf("%q didn't compile: %v", c.src, err)
			}
			if !reflect.DeepEqual(vars, c.vars) {
				t.Errorf("%q gave wrong variable names:\n\twant %q\n\tgot  %q", c.src, c.vars, vars)
			}
		})
	}
}

func TestIndependentCalculators(t *testing.T) {
	a := veq.New("x+1")
	b := veq.New("x*2")
	ra, err := a.Calculate(map[string]float64{"x": 10})
	if err != nil {
		t.Fatal(err)
	}
	rb, err := b.Calculate(map[string]float64{"x": 10})
	if err != nil {
		t.Fatal(err)
	}
	if ra != 11 || rb != 20 {
		t.Errorf("want 11 and 20, got %g and %g", ra, rb)
	}
}

func BenchmarkCalculate(b *testing.B) {
	calc := veq.New("sin(x)^2+log(x*2)")
	bindings := map[string]float64{"x": 1}
	if _, err := calc.Calculate(bindings); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bindings["x"] = 1 + float64(i%100)/100
		if _, err := calc.Calculate(bindings); err != nil {
			b.Fatal(err)
		}
	}
}

func Example() {
	calc := veq.New("x^2 - 1")
	for i := 0; i < 4; i++ {
		y, _ := calc.Calculate(map[string]float64{"x": float64(i)})
		fmt.Printf("f(%d) = %g\n", i, y)
	}
	// Output:
	// f(0) = -1
	// f(1) = 0
	// f(2) = 3
	// f(3) = 8
}
