// Package riemann approximates definite integrals with midpoint
// Riemann sums.
package riemann

import (
	"errors"

	"github.com/wciesialka/veq"
)

// Sum computes the midpoint Riemann sum of f over [left, right] with n
// subdivisions: each subdivision contributes dx * f(midpoint). Errors
// from f abort the sum.
func Sum(f func(float64) (float64, error), left, right float64, n int) (float64, error) {
	if left > right {
		return 0, errors.New("riemann: left bound must not be greater than right bound")
	}
	if n <= 0 {
		return 0, errors.New("riemann: subdivisions must be positive")
	}
	dx := (right - left) / float64(n)
	sum := 0.0
	for x := left + dx/2; x < right; x += dx {
		y, err := f(x)
		if err != nil {
			return 0, err
		}
		sum += dx * y
	}
	return sum, nil
}

// Equation computes the midpoint Riemann sum of a compiled expression,
// binding x at each midpoint. The expression is compiled once and
// evaluated n times.
func Equation(c *veq.Calculator, left, right float64, n int) (float64, error) {
	bindings := make(map[string]float64, 1)
	return Sum(func(x float64) (float64, error) {
		bindings["x"] = x
		return c.Calculate(bindings)
	}, left, right, n)
}
