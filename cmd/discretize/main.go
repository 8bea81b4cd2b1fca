// Command discretize samples one of a few built-in curves and writes the
// resulting points as CSV.
//
// Exactly one of -max-length, -points, -deflection and -split selects the
// sampling method:
//
//	discretize -curve helix -max-length 0.1
//	discretize -curve bezier -points 25
//	discretize -curve arc -deflection 0.001 -relative
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/QiquWong/discretize"
)

var curves = map[string]discretize.BoundedCurve{
	"line":   discretize.Line3{P0: discretize.Pt(0, 0, 0), P1: discretize.Pt(10, 0, 0)},
	"arc":    discretize.CircleArc(discretize.Pt(0, 0, 0), 1, 0, math.Pi/2),
	"circle": discretize.CircleArc(discretize.Pt(0, 0, 0), 1, 0, 2*math.Pi),
	"helix":  discretize.Helix{Radius: 1, Pitch: 0.4 * math.Pi, Turns: 2},
	"bezier": discretize.CubicBez3{
		P0: discretize.Pt(0, 0, 0),
		P1: discretize.Pt(1, 2, 0),
		P2: discretize.Pt(3, -1, 1),
		P3: discretize.Pt(4, 1, 2),
	},
}

var errUsage = errors.New("usage error")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("discretize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		curveName  = fs.String("curve", "helix", "curve to sample: line, arc, circle, helix or bezier")
		maxLen     = fs.Float64("max-length", 0, "maximum distance between consecutive points")
		points     = fs.Int("points", 0, "exact number of points")
		deflection = fs.Float64("deflection", 0, "maximum deflection")
		relative   = fs.Bool("relative", false, "interpret -deflection relative to the segment length")
		split      = fs.Int("split", 0, "number of intervals of equal parameter length")
		refine     = fs.Int("max-refinements", discretize.DefaultMaxRefinements, "maximum number of oversampling attempts")
		verbose    = fs.Bool("v", false, "log sampling progress to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, ok := curves[*curveName]
	if !ok {
		fmt.Fprintf(stderr, "unknown curve %q\n", *curveName)
		return errUsage
	}
	var method string
	set := 0
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-length", "points", "deflection", "split":
			method = f.Name
			set++
		}
	})
	if set != 1 {
		fmt.Fprintln(stderr, "exactly one of -max-length, -points, -deflection and -split is required")
		return errUsage
	}
	if *refine < 1 {
		fmt.Fprintln(stderr, "-max-refinements must be positive")
		return errUsage
	}

	if *verbose {
		discretize.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer discretize.SetLogger(nil)
	}

	s := discretize.NewSamplerFor(c, discretize.WithMaxRefinements(*refine))
	var d *discretize.Discretization
	var err error
	switch method {
	case "max-length":
		d, err = s.DiscretizeMaxLength(*maxLen)
	case "points":
		d, err = s.DiscretizeNPoints(*points)
	case "deflection":
		d, err = s.DiscretizeMaxDeflection(*deflection, *relative)
	case "split":
		d, err = s.Split(*split)
	}
	if err != nil {
		return err
	}

	w := csv.NewWriter(stdout)
	if err := w.Write([]string{"t", "x", "y", "z"}); err != nil {
		return err
	}
	for t, p := range d.All() {
		rec := []string{formatFloat(t), formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z)}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if al, ok := c.(discretize.Arclener); ok {
		fmt.Fprintf(stderr, "%d points, length %g of %g\n", d.Len(), d.TotalLength(), al.Arclen())
	} else {
		fmt.Fprintf(stderr, "%d points, length %g\n", d.Len(), d.TotalLength())
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
