package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lebedev/internal/export"
	"github.com/katalvlaran/lebedev/order"
	"github.com/katalvlaran/lebedev/quadrature"
	"github.com/katalvlaran/lebedev/table"
)

type command func(args []string, stdout, stderr io.Writer) int

var commands = map[string]command{
	"catalog":    cmdCatalog,
	"points":     cmdPoints,
	"generators": cmdGenerators,
	"integrate":  cmdIntegrate,
	"verify":     cmdVerify,
}

// setup parses args for the named command. extra registers command-specific
// flags. A nil env means the returned exit code should be used.
func setup(name string, args []string, stdout, stderr io.Writer, extra func(*flag.FlagSet)) (*env, int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cf commonFlags
	cf.register(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "lebedev %s: unexpected arguments %v\n", name, fs.Args())
		return nil, exitUsage
	}
	e, err := cf.resolve(fs, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "lebedev %s: %v\n", name, err)
		return nil, exitFail
	}

	return e, exitOK
}

func (e *env) fail(cmd string, err error) int {
	e.log.Error().Err(err).Str("cmd", cmd).Msg("failed")

	return exitFail
}

func cmdCatalog(args []string, stdout, stderr io.Writer) int {
	e, code := setup("catalog", args, stdout, stderr, nil)
	if e == nil {
		return code
	}
	rows := export.Catalog()
	if err := e.emit("catalog", func(w io.Writer) error { return export.WriteCatalog(w, e.format, rows) }); err != nil {
		return e.fail("catalog", err)
	}

	return exitOK
}

func cmdPoints(args []string, stdout, stderr io.Writer) int {
	e, code := setup("points", args, stdout, stderr, nil)
	if e == nil {
		return code
	}
	ps, err := e.pointSet()
	if err != nil {
		return e.fail("points", err)
	}
	e.log.Info().Stringer("order", ps.Order()).Int("degree", ps.Degree()).Int("points", ps.Len()).Msg("rule built")

	rule := export.NewRule(ps)
	if err = e.emit("points", func(w io.Writer) error { return export.WriteRule(w, e.format, rule) }); err != nil {
		return e.fail("points", err)
	}

	return exitOK
}

func cmdGenerators(args []string, stdout, stderr io.Writer) int {
	e, code := setup("generators", args, stdout, stderr, nil)
	if e == nil {
		return code
	}
	o := e.cfg.Order
	if o == 0 {
		ps, err := e.pointSet()
		if err != nil {
			return e.fail("generators", err)
		}
		o = ps.Order()
	}
	reps, err := table.Representatives(o)
	if err != nil {
		return e.fail("generators", err)
	}

	gens := export.Generators(reps)
	if err = e.emit("generators", func(w io.Writer) error { return export.WriteGenerators(w, e.format, gens) }); err != nil {
		return e.fail("generators", err)
	}

	return exitOK
}

func cmdIntegrate(args []string, stdout, stderr io.Writer) int {
	var px, py, pz int
	e, code := setup("integrate", args, stdout, stderr, func(fs *flag.FlagSet) {
		fs.IntVar(&px, "px", 0, "power of x")
		fs.IntVar(&py, "py", 0, "power of y")
		fs.IntVar(&pz, "pz", 0, "power of z")
	})
	if e == nil {
		return code
	}
	if px < 0 || py < 0 || pz < 0 {
		return e.fail("integrate", fmt.Errorf("negative power (%d, %d, %d)", px, py, pz))
	}
	ps, err := e.pointSet()
	if err != nil {
		return e.fail("integrate", err)
	}

	res := export.Integral{
		Order:    ps.Order(),
		Degree:   ps.Degree(),
		Monomial: export.Monomial(px, py, pz),
		Value: ps.Integrate(func(x, y, z float64) float64 {
			return math.Pow(x, float64(px)) * math.Pow(y, float64(py)) * math.Pow(z, float64(pz))
		}),
		Exact: monomialIntegral(px, py, pz, ps.Radius()),
	}
	if res.Exact != 0 {
		res.RelErr = math.Abs(res.Value-res.Exact) / math.Abs(res.Exact)
	} else {
		res.RelErr = math.Abs(res.Value)
	}
	if px+py+pz > ps.Degree() {
		e.log.Warn().Int("total_power", px+py+pz).Int("degree", ps.Degree()).Msg("monomial exceeds rule degree")
	}

	if err = e.emit("integrate", func(w io.Writer) error { return export.WriteIntegral(w, e.format, res) }); err != nil {
		return e.fail("integrate", err)
	}

	return exitOK
}

// monomialIntegral is the closed-form surface integral of x^px y^py z^pz over
// the sphere of radius r.
func monomialIntegral(px, py, pz int, r float64) float64 {
	if px%2 != 0 || py%2 != 0 || pz%2 != 0 {
		return 0
	}

	return 4 * math.Pi * math.Pow(r, float64(2+px+py+pz)) * quadrature.Moment(px/2, py/2, pz/2)
}

func cmdVerify(args []string, stdout, stderr io.Writer) int {
	var all bool
	e, code := setup("verify", args, stdout, stderr, func(fs *flag.FlagSet) {
		fs.BoolVar(&all, "all", false, "verify every supported order")
	})
	if e == nil {
		return code
	}

	var orders []order.Order
	if all {
		orders = table.SupportedOrders()
	} else {
		ps, err := e.pointSet()
		if err != nil {
			return e.fail("verify", err)
		}
		orders = []order.Order{ps.Order()}
	}

	reports, err := verifyOrders(context.Background(), e, orders)
	if err != nil && !errors.Is(err, quadrature.ErrNotExact) {
		return e.fail("verify", err)
	}
	if werr := e.emit("verify", func(w io.Writer) error { return export.WriteReports(w, e.format, reports) }); werr != nil {
		return e.fail("verify", werr)
	}
	if err != nil {
		return e.fail("verify", err)
	}
	e.log.Info().Int("orders", len(reports)).Msg("all rules exact")

	return exitOK
}

// verifyOrders runs VerifyExactness for each order, at most cfg.Workers at a
// time. Reports keep the order of orders. The first non-exactness error is
// returned alongside the complete report list.
func verifyOrders(ctx context.Context, e *env, orders []order.Order) ([]quadrature.Report, error) {
	reports := make([]quadrature.Report, len(orders))
	inexact := make([]error, len(orders))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for i, o := range orders {
		i, o := i, o
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ps, err := quadrature.New(o, quadrature.WithRadius(e.cfg.Radius), quadrature.WithTolerance(e.cfg.Tolerance))
			if err != nil {
				return err
			}
			reports[i], inexact[i] = ps.VerifyExactness()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, rep := range reports {
		e.log.Debug().Stringer("order", rep.Order).Float64("max_rel_err", rep.MaxRelErr).Bool("exact", rep.Exact).Msg("verified")
	}

	return reports, errors.Join(inexact...)
}
