package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/wciesialka/veq"
	"github.com/wciesialka/veq/plot"
	"github.com/wciesialka/veq/riemann"
)

var intervalPattern = regexp.MustCompile(`^\[(-?\d+\.?\d*),\s*(-?\d+\.?\d*)\]$`)

func main() {
	log.SetFlags(0)
	var (
		inname, verb  string
		domain, rng   string
		given         [][2]string
		doPlot        bool
		width, height int
		step          float64
		noaxis        bool
		precision     int
		integrate     int
	)
	addgiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		given = append(given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file with one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addgiven)
	flag.BoolVar(&doPlot, "plot", false, "render a text plot instead of printing a value")
	flag.IntVar(&width, "width", 72, "plot width in columns")
	flag.IntVar(&height, "height", 24, "plot height in rows")
	flag.StringVar(&domain, "domain", "[-1, 1]", `domain as "[a,b]"`)
	flag.StringVar(&rng, "range", "[-1, 1]", `range as "[a,b]"`)
	flag.Float64Var(&step, "step", 0, "enable plot gridlines with this step")
	flag.BoolVar(&noaxis, "noaxis", false, "disable plot axes")
	flag.IntVar(&precision, "precision", 2, "number precision for plot text")
	flag.IntVar(&integrate, "integrate", 0, "print the midpoint Riemann sum over the domain with this many subdivisions")
	flag.Parse()
	if precision < 0 {
		log.Fatal("minimum precision is zero")
	}
	if width < 1 || height < 1 {
		log.Fatal("plot size must be positive")
	}

	dom, err := parseInterval(domain)
	if err != nil {
		log.Fatalf("invalid -domain: %v", err)
	}
	rg, err := parseInterval(rng)
	if err != nil {
		log.Fatalf("invalid -range: %v", err)
	}

	exprs := flag.Args()
	if inname != "" {
		lines, err := readExprFile(inname)
		if err != nil {
			log.Fatal(err)
		}
		exprs = append(exprs, lines...)
	}
	if len(exprs) == 0 {
		scan := bufio.NewScanner(os.Stdin)
		for scan.Scan() {
			if s := strings.TrimSpace(scan.Text()); s != "" {
				exprs = append(exprs, s)
			}
		}
		if err := scan.Err(); err != nil {
			log.Fatal(err)
		}
	}

	bindings := make(map[string]float64, len(given))
	for _, d := range given {
		v, err := veq.Evaluate(d[1], nil)
		if err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
		bindings[d[0]] = v
	}

	verb += "\n"
	for _, src := range exprs {
		c := veq.New(strings.ToLower(src))
		switch {
		case doPlot:
			eq, err := plot.NewEquation(c, dom, rg)
			if err != nil {
				log.Fatal(err)
			}
			opts := []plot.Option{plot.Size(width, height), plot.Axis(!noaxis), plot.Precision(precision)}
			if step > 0 {
				opts = append(opts, plot.Grid(step))
			}
			if err := plot.New(eq, opts...).Render(os.Stdout, 0); err != nil {
				log.Fatal(err)
			}
		case integrate > 0:
			r, err := riemann.Equation(c, dom.Lo, dom.Hi, integrate)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf(verb, r)
		default:
			r, err := c.Calculate(bindings)
			if err != nil {
				// Syntax errors are fatal; evaluation errors are per
				// expression.
				if _, ok := err.(veq.InputError); ok {
					log.Fatal(err)
				}
				fmt.Println(err)
				continue
			}
			fmt.Printf(verb, r)
		}
	}
}

func parseInterval(s string) (plot.Interval, error) {
	m := intervalPattern.FindStringSubmatch(s)
	if m == nil {
		return plot.Interval{}, fmt.Errorf("%q is not of the form [a,b]", s)
	}
	lo, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return plot.Interval{}, err
	}
	hi, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return plot.Interval{}, err
	}
	return plot.Interval{Lo: lo, Hi: hi}, nil
}

func readExprFile(name string) ([]string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(convertIfUTF16(string(data)), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, nil
}

// convertIfUTF16 converts UTF-16 input to UTF-8. Expression files saved
// by Windows editors are frequently UTF-16.
func convertIfUTF16(s string) string {
	b := []byte(s)
	if len(b) > 7 && b[1] == 0 && b[3] == 0 && b[5] == 0 && b[7] == 0 {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if out, err := decoder.String(s); err == nil {
			return out
		}
	}
	return s
}
