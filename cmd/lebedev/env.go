package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lebedev/internal/config"
	"github.com/katalvlaran/lebedev/internal/export"
	"github.com/katalvlaran/lebedev/internal/logging"
	"github.com/katalvlaran/lebedev/order"
	"github.com/katalvlaran/lebedev/quadrature"
)

// env is the per-invocation state shared by all commands.
type env struct {
	cfg    config.Config
	format export.Format
	log    zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

// commonFlags registers the shared flags on fs. Values are applied over the
// config file by resolve, and only for flags actually given.
type commonFlags struct {
	configPath string
	order      string
	degree     int
	format     string
	output     string
	workers    int
	radius     float64
	tolerance  float64
	logLevel   string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "path to lebedev.toml")
	fs.StringVar(&c.order, "order", "", "rule order, e.g. 590 or Order590")
	fs.IntVar(&c.degree, "degree", 0, "select the smallest rule exact to this degree")
	fs.StringVar(&c.format, "format", "", "output format: text|csv|json|yaml")
	fs.StringVar(&c.output, "o", "", "output file (default stdout)")
	fs.IntVar(&c.workers, "workers", 0, "concurrent workers")
	fs.Float64Var(&c.radius, "radius", 0, "sphere radius")
	fs.Float64Var(&c.tolerance, "tolerance", 0, "relative tolerance for verify")
	fs.StringVar(&c.logLevel, "log-level", "", "trace|debug|info|warn|error|off")
}

// resolve merges defaults, the config file and flags, then builds the logger.
func (c *commonFlags) resolve(fs *flag.FlagSet, stdout, stderr io.Writer) (*env, error) {
	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "order":
			cfg.Order, err = order.Parse(c.order)
		case "degree":
			cfg.Degree, cfg.Order = c.degree, 0
		case "format":
			cfg.Format = c.format
		case "o":
			cfg.Output = c.output
		case "workers":
			cfg.Workers = c.workers
		case "radius":
			cfg.Radius = c.radius
		case "tolerance":
			cfg.Tolerance = c.tolerance
		case "log-level":
			cfg.Log.Level = c.logLevel
		}
	})
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	logging.ApplyEnv(&cfg.Log)

	return &env{
		cfg:    cfg,
		format: format,
		log:    logging.New(stderr, "lebedev", cfg.Log),
		stdout: stdout,
		stderr: stderr,
	}, nil
}

// options returns the quadrature options implied by the config.
func (e *env) options() []quadrature.Option {
	return []quadrature.Option{
		quadrature.WithWorkers(e.cfg.Workers),
		quadrature.WithRadius(e.cfg.Radius),
		quadrature.WithTolerance(e.cfg.Tolerance),
	}
}

// pointSet builds the configured rule, by order or by degree.
func (e *env) pointSet() (*quadrature.PointSet, error) {
	if e.cfg.Order == 0 {
		return quadrature.ForDegree(e.cfg.Degree, e.options()...)
	}

	return quadrature.New(e.cfg.Order, e.options()...)
}

// output opens the configured destination. The returned close func is
// never nil.
func (e *env) output() (io.Writer, func() error, error) {
	if e.cfg.Output == "" || e.cfg.Output == "-" {
		return e.stdout, func() error { return nil }, nil
	}
	f, err := os.Create(e.cfg.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}

	return f, f.Close, nil
}

// emit writes through the configured output and logs the destination.
func (e *env) emit(what string, write func(io.Writer) error) error {
	w, closeFn, err := e.output()
	if err != nil {
		return err
	}
	if err = write(w); err != nil {
		_ = closeFn()
		return err
	}
	if err = closeFn(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	e.log.Debug().Str("what", what).Str("format", string(e.format)).Str("output", e.cfg.Output).Msg("written")

	return nil
}
