// Package plot renders compiled equations as text plots: one sample
// per output column, mapped from math coordinates into screen rows.
package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/wciesialka/veq"
)

// Interval is a closed window along one axis.
type Interval struct {
	Lo, Hi float64
}

// Span returns the width of the interval.
func (iv Interval) Span() float64 {
	return iv.Hi - iv.Lo
}

// Equation pairs a calculator with its current view window. The
// calculator is compiled when the Equation is created, so rendering
// never hits a syntax error; it only skips points the expression is
// undefined at.
type Equation struct {
	Calc   *veq.Calculator
	Domain Interval
	Range  Interval
}

// NewEquation compiles the calculator and attaches the initial view
// window. Compile errors mean there is nothing to render.
func NewEquation(c *veq.Calculator, domain, rng Interval) (*Equation, error) {
	if err := c.Compile(); err != nil {
		return nil, err
	}
	return &Equation{Calc: c, Domain: domain, Range: rng}, nil
}

// Zoom grows (positive by) or shrinks (negative by) both windows
// symmetrically. A change that would invert either window is ignored.
func (e *Equation) Zoom(by float64) {
	if e.Range.Lo-by/2 < e.Range.Hi+by/2 && e.Domain.Lo-by/2 < e.Domain.Hi+by/2 {
		e.Range.Lo -= by / 2
		e.Range.Hi += by / 2
		e.Domain.Lo -= by / 2
		e.Domain.Hi += by / 2
	}
}

// Shift moves the view window.
func (e *Equation) Shift(dx, dy float64) {
	e.Domain.Lo += dx
	e.Domain.Hi += dx
	e.Range.Lo += dy
	e.Range.Hi += dy
}

// Plot renders an equation's graph. One Plot can render any number of
// frames; the equation is compiled once and evaluated width times per
// frame.
type Plot struct {
	eq     *Equation
	width  int
	height int
	step   float64
	axis   bool
	prec   int
}

// Option configures a Plot.
type Option interface {
	plotOption(*Plot)
}

type (
	sizeopt struct{ w, h int }
	stepopt float64
	axisopt bool
	precopt int
)

func (o sizeopt) plotOption(p *Plot) { p.width, p.height = o.w, o.h }
func (o stepopt) plotOption(p *Plot) { p.step = float64(o) }
func (o axisopt) plotOption(p *Plot) { p.axis = bool(o) }
func (o precopt) plotOption(p *Plot) { p.prec = int(o) }

// Size sets the plot dimensions in columns and rows.
func Size(w, h int) Option {
	if w < 1 || h < 1 {
		panic("plot: size must be positive")
	}
	return sizeopt{w, h}
}

// Grid enables gridlines at multiples of step. Zero disables them.
func Grid(step float64) Option {
	return stepopt(step)
}

// Axis toggles drawing the x and y axes.
func Axis(on bool) Option {
	return axisopt(on)
}

// Precision sets the number of digits shown for the window bounds.
func Precision(digits int) Option {
	if digits < 0 {
		panic("plot: precision must not be negative")
	}
	return precopt(digits)
}

// New creates a Plot for an equation. The given options are applied in
// order over the defaults: 72x24, axes on, no grid, precision 2.
func New(eq *Equation, opts ...Option) *Plot {
	p := &Plot{eq: eq, width: 72, height: 24, axis: true, prec: 2}
	for _, o := range opts {
		o.plotOption(p)
	}
	return p
}

// col maps a math x coordinate to a column index.
func (p *Plot) col(x float64) int {
	return int(math.Floor((x - p.eq.Domain.Lo) / p.eq.Domain.Span() * float64(p.width)))
}

// row maps a math y coordinate to a row index. Row 0 is the top of the
// range window; the bottom edge maps one past the last row.
func (p *Plot) row(y float64) int {
	f := float64(p.height) * (1 - (y-p.eq.Range.Lo)/p.eq.Range.Span())
	return int(math.Floor(f))
}

// Render draws one frame to w: a header naming the equation and the
// current window, then the grid, axes, and curve. t is the animation
// time bound to the variable t for every sample. Columns where the
// expression is undefined are left blank; per-sample failures never
// abort the frame.
func (p *Plot) Render(w io.Writer, t float64) error {
	cells := make([][]byte, p.height)
	for i := range cells {
		cells[i] = make([]byte, p.width)
		for j := range cells[i] {
			cells[i][j] = ' '
		}
	}
	if p.step > 0 {
		p.grid(cells)
	}
	if p.axis {
		p.axes(cells)
	}
	p.curve(cells, t)

	if err := p.header(w); err != nil {
		return err
	}
	for _, row := range cells {
		if _, err := fmt.Fprintf(w, "%s\n", row); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plot) header(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Equation: %s\nDomain: [%.*f, %.*f]\nRange: [%.*f, %.*f]\n",
		p.eq.Calc.Text(),
		p.prec, p.eq.Domain.Lo, p.prec, p.eq.Domain.Hi,
		p.prec, p.eq.Range.Lo, p.prec, p.eq.Range.Hi)
	return err
}

func (p *Plot) set(cells [][]byte, col, row int, c byte) {
	if col < 0 || col >= p.width || row < 0 || row >= p.height {
		return
	}
	cells[row][col] = c
}

func (p *Plot) grid(cells [][]byte) {
	for x := math.Ceil(p.eq.Domain.Lo/p.step) * p.step; x <= p.eq.Domain.Hi; x += p.step {
		col := p.col(x)
		for row := 0; row < p.height; row++ {
			p.set(cells, col, row, '.')
		}
	}
	for y := math.Ceil(p.eq.Range.Lo/p.step) * p.step; y <= p.eq.Range.Hi; y += p.step {
		row := p.row(y)
		for col := 0; col < p.width; col++ {
			p.set(cells, col, row, '.')
		}
	}
}

func (p *Plot) axes(cells [][]byte) {
	col := p.col(0)
	row := p.row(0)
	for r := 0; r < p.height; r++ {
		p.set(cells, col, r, '|')
	}
	for c := 0; c < p.width; c++ {
		p.set(cells, c, row, '-')
	}
	p.set(cells, col, row, '+')
}

func (p *Plot) curve(cells [][]byte, t float64) {
	dx := p.eq.Domain.Span() / float64(p.width)
	bindings := map[string]float64{"t": t}
	for i := 0; i < p.width; i++ {
		x := p.eq.Domain.Lo + dx*float64(i)
		bindings["x"] = x
		y, err := p.eq.Calc.Calculate(bindings)
		if err != nil {
			// Undefined at this x; skip the column.
			continue
		}
		p.set(cells, i, p.row(y), '*')
	}
}
