package veq

import "math"

// Arithmetic for the registered operators and functions. Inputs outside
// an operation's mathematical domain return a DomainError rather than
// producing NaN or an infinity; whatever non-finite values still arise
// from overflow are caught when the final result is checked.

func init() {
	registerBinary("+", precAdditive, func(a, b float64) (float64, error) {
		return a + b, nil
	})
	registerBinary("-", precAdditive, func(a, b float64) (float64, error) {
		return a - b, nil
	})
	registerBinary("*", precMultiplicative, func(a, b float64) (float64, error) {
		return a * b, nil
	})
	registerBinary("/", precMultiplicative, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, &DomainError{X: b, Func: "/"}
		}
		return a / b, nil
	})
	registerBinary("%", precMultiplicative, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, &DomainError{X: b, Func: "%"}
		}
		return math.Mod(a, b), nil
	})
	registerBinary("^", precPower, func(a, b float64) (float64, error) {
		// A negative base with a fractional exponent has no real result.
		if a < 0 && b != math.Trunc(b) {
			return 0, &DomainError{X: a, Func: "^"}
		}
		return math.Pow(a, b), nil
	})
}

func init() {
	registerFunction("sin", real1(math.Sin))
	registerFunction("cos", real1(math.Cos))
	registerFunction("tan", real1(math.Tan))
	registerFunction("log", func(a float64) (float64, error) {
		if a <= 0 {
			return 0, &DomainError{X: a, Func: "log"}
		}
		return math.Log(a), nil
	})
	registerFunction("sinh", real1(math.Sinh))
	registerFunction("cosh", real1(math.Cosh))
	registerFunction("tanh", real1(math.Tanh))
	registerFunction("asin", func(a float64) (float64, error) {
		if a < -1 || a > 1 {
			return 0, &DomainError{X: a, Func: "asin"}
		}
		return math.Asin(a), nil
	})
	registerFunction("acos", func(a float64) (float64, error) {
		if a < -1 || a > 1 {
			return 0, &DomainError{X: a, Func: "acos"}
		}
		return math.Acos(a), nil
	})
	registerFunction("atan", real1(math.Atan))
	registerFunction("asinh", real1(math.Asinh))
	registerFunction("acosh", func(a float64) (float64, error) {
		if a < 1 {
			return 0, &DomainError{X: a, Func: "acosh"}
		}
		return math.Acosh(a), nil
	})
	registerFunction("atanh", func(a float64) (float64, error) {
		if a <= -1 || a >= 1 {
			return 0, &DomainError{X: a, Func: "atanh"}
		}
		return math.Atanh(a), nil
	})
	registerFunction("abs", real1(math.Abs))
	registerFunction("sign", func(a float64) (float64, error) {
		switch {
		case a < 0:
			return -1, nil
		case a > 0:
			return 1, nil
		}
		return 0, nil
	})
	registerFunction("round", real1(math.Round))
	registerFunction("rad", func(a float64) (float64, error) {
		return a * (math.Pi / 180), nil
	})
	registerFunction("deg", func(a float64) (float64, error) {
		return a * (180 / math.Pi), nil
	})
}

// real1 wraps a total function of one real variable.
func real1(f func(float64) float64) func(float64) (float64, error) {
	return func(a float64) (float64, error) {
		return f(a), nil
	}
}

// negation is the token compiled for unary minus. It lives in the
// function precedence class, not the additive class of binary minus.
func negation() token {
	return token{
		kind: tokenUnary,
		prec: precFunction,
		name: "-",
		un: func(a float64) (float64, error) {
			return -a, nil
		},
	}
}
