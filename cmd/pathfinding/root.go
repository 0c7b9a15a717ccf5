package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pathfinding/city"
	"github.com/katalvlaran/pathfinding/config"
	"github.com/katalvlaran/pathfinding/distance"
	"github.com/katalvlaran/pathfinding/metrics"
)

const metricsNamespace = "pathfinding"

// app carries state shared by all subcommands of one invocation.
type app struct {
	// persistent flags
	cfgPath     string
	logLevel    string
	devLog      bool
	cities      int
	grid        int
	edgeProb    float64
	seed        int64
	metricsAddr string

	cfg       config.Config
	log       *zap.Logger
	runID     string
	collector *metrics.Collector
	server    *http.Server
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "pathfinding",
		Short:         "Tour a random town with exact and evolutionary TSP solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.cfgPath, "config", "c", "", "YAML config file (defaults apply when empty)")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&a.devLog, "dev-log", false, "human-readable development logging")
	f.IntVar(&a.cities, "cities", 0, "number of cities")
	f.IntVar(&a.grid, "grid", 0, "grid side length")
	f.Float64Var(&a.edgeProb, "edge-probability", 0, "probability of each extra edge; 1 is a complete town")
	f.Int64Var(&a.seed, "seed", 0, "town and solver seed; 0 picks one")
	f.StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")

	root.AddCommand(newEvolveCmd(a), newExactCmd(a), newCompareCmd(a))

	return root
}

// setup loads the config, applies flag overrides, builds the logger and
// starts the metrics endpoint.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if f.Changed("dev-log") {
		cfg.Log.Development = a.devLog
	}
	if f.Changed("cities") {
		cfg.Town.Cities = a.cities
	}
	if f.Changed("grid") {
		cfg.Town.GridSize = a.grid
	}
	if f.Changed("edge-probability") {
		cfg.Town.EdgeProbability = a.edgeProb
	}
	if f.Changed("seed") {
		cfg.Town.Seed = a.seed
	}
	if f.Changed("metrics-addr") {
		cfg.Metrics.Addr = a.metricsAddr
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if cfg.Town.Seed == 0 {
		cfg.Town.Seed = time.Now().UnixNano()
	}
	a.cfg = cfg

	a.runID = uuid.NewString()
	if a.log, err = newLogger(cfg.Log, cmd.ErrOrStderr()); err != nil {
		return err
	}
	a.log = a.log.With(zap.String("run_id", a.runID), zap.String("command", cmd.Name()))

	a.collector = metrics.NewCollector(metricsNamespace)
	if cfg.Metrics.Addr != "" {
		a.serveMetrics(cfg.Metrics.Addr)
	}

	return nil
}

// newLogger builds a zap logger writing to w.
func newLogger(cfg config.LogConfig, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var enc zapcore.Encoder
	if cfg.Development {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)), nil
}

func (a *app) serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.collector.Handler())
	a.server = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server stopped", zap.Error(err))
		}
	}()
	a.log.Info("serving metrics", zap.String("addr", addr))
}

// close stops the metrics endpoint and flushes the logger. Safe to call
// when setup never ran.
func (a *app) close() {
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = a.server.Shutdown(ctx)
		cancel()
		a.server = nil
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// buildTown generates the configured town and its distance matrix.
func (a *app) buildTown() (city.Town, *distance.Matrix, error) {
	t := a.cfg.Town
	town, err := city.Generate(t.Cities, t.GridSize, a.cfg.CityOptions(t.Seed)...)
	if err != nil {
		return nil, nil, err
	}
	m, err := distance.Compute(town)
	if err != nil {
		return nil, nil, err
	}
	a.log.Info("town ready",
		zap.Int("cities", t.Cities),
		zap.Int("grid", t.GridSize),
		zap.Float64("edge_probability", t.EdgeProbability),
		zap.Int64("seed", t.Seed),
		zap.Bool("complete", town.Complete()),
	)

	return town, m, nil
}
