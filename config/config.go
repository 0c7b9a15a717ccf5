// Package config loads and validates the YAML run configuration.
//
// Load starts from Default, overlays the file, then validates with struct
// tags (go-playground/validator) plus the cross-field rules of the consuming
// packages. Field names in errors are the YAML keys.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfinding/city"
	"github.com/katalvlaran/pathfinding/genetic"
	"github.com/katalvlaran/pathfinding/tsp"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Exact solver names accepted in exact.algo.
const (
	AlgoBranchAndBound = "bb"
	AlgoHeldKarp       = "heldkarp"
)

// Config is the complete run configuration.
type Config struct {
	Town    TownConfig    `yaml:"town"`
	Genetic GeneticConfig `yaml:"genetic"`
	Exact   ExactConfig   `yaml:"exact"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// TownConfig controls city generation.
type TownConfig struct {
	Cities          int     `yaml:"cities" validate:"min=2,max=5000"`
	GridSize        int     `yaml:"grid_size" validate:"min=1,max=10000"`
	EdgeProbability float64 `yaml:"edge_probability" validate:"gte=0,lte=1"`
	Seed            int64   `yaml:"seed"` // 0 picks a fresh seed per run
}

// GeneticConfig mirrors genetic.Config.
type GeneticConfig struct {
	PopulationSize int           `yaml:"population_size" validate:"min=3"`
	MutationChance int           `yaml:"mutation_chance" validate:"min=0,max=100"`
	TimeBudget     time.Duration `yaml:"time_budget" validate:"min=0s"`
	MaxGenerations int           `yaml:"max_generations" validate:"min=0"`
	SeedRetries    int           `yaml:"seed_retries" validate:"min=1"`
	SeedAttempts   int           `yaml:"seed_attempts" validate:"min=1"`
	LogEvery       int           `yaml:"log_every" validate:"min=0"`
	Polish         bool          `yaml:"polish"`
}

// ExactConfig mirrors tsp.ExactOptions plus the solver choice.
type ExactConfig struct {
	Algo      string        `yaml:"algo" validate:"oneof=bb heldkarp"`
	Bound     string        `yaml:"bound" validate:"oneof=none partial minout"`
	TimeLimit time.Duration `yaml:"time_limit" validate:"min=0s"`
	MaxCities int           `yaml:"max_cities" validate:"min=2,max=20"`
}

// LogConfig selects the zap preset and level.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the reference run: 25 cities on a 40×40 grid, complete
// adjacency, P=10000, 5% mutation and a 10s budget.
func Default() Config {
	g := genetic.DefaultConfig()

	return Config{
		Town: TownConfig{
			Cities:          25,
			GridSize:        40,
			EdgeProbability: 1,
		},
		Genetic: GeneticConfig{
			PopulationSize: g.PopulationSize,
			MutationChance: g.MutationChance,
			TimeBudget:     g.TimeBudget,
			MaxGenerations: g.MaxGenerations,
			SeedRetries:    g.SeedRetries,
			SeedAttempts:   g.SeedAttempts,
			LogEvery:       g.LogEvery,
			Polish:         g.Polish,
		},
		Exact: ExactConfig{
			Algo:      AlgoBranchAndBound,
			Bound:     tsp.MinOutBound.String(),
			TimeLimit: time.Minute,
			MaxCities: tsp.DefaultMaxCities,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	return v
}

// Validate checks field ranges and the cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, describe(err))
	}
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("%w: genetic: %w", ErrInvalid, err)
	}
	if c.Exact.Algo == AlgoHeldKarp && c.Town.Cities > 20 {
		return fmt.Errorf("%w: exact.algo heldkarp needs town.cities <= 20", ErrInvalid)
	}

	return nil
}

// describe flattens validator errors into "field: rule" items.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if _, rest, ok := strings.Cut(ns, "."); ok {
			ns = rest
		}
		rule := fe.Tag()
		if p := fe.Param(); p != "" {
			rule += "=" + p
		}
		parts = append(parts, fmt.Sprintf("%s: %s", ns, rule))
	}

	return strings.Join(parts, "; ")
}

// EngineConfig converts the genetic section. The engine seed follows the
// town seed so that one number reproduces a whole run.
func (c Config) EngineConfig() genetic.Config {
	g := c.Genetic

	return genetic.Config{
		PopulationSize: g.PopulationSize,
		MutationChance: g.MutationChance,
		TimeBudget:     g.TimeBudget,
		MaxGenerations: g.MaxGenerations,
		SeedRetries:    g.SeedRetries,
		SeedAttempts:   g.SeedAttempts,
		LogEvery:       g.LogEvery,
		Polish:         g.Polish,
		Seed:           c.Town.Seed,
	}
}

// ExactOptions converts the exact section.
func (c Config) ExactOptions() (tsp.ExactOptions, error) {
	b, err := tsp.ParseBoundAlgo(c.Exact.Bound)
	if err != nil {
		return tsp.ExactOptions{}, err
	}
	opts := tsp.DefaultExactOptions()
	opts.Bound = b
	opts.TimeLimit = c.Exact.TimeLimit
	opts.MaxCities = c.Exact.MaxCities

	return opts, nil
}

// CityOptions converts the town section. seed is the effective seed, which
// the caller resolves when Town.Seed is 0.
func (c Config) CityOptions(seed int64) []city.Option {
	return []city.Option{
		city.WithSeed(seed),
		city.WithEdgeProbability(c.Town.EdgeProbability),
	}
}
