// Package config loads the YAML run configuration of the nwalign CLI.
//
// Document layout:
//
//	scoring:
//	  match: 5
//	  mismatch: -3
//	  gap: -5
//	limits:
//	  max_paths: 100000   # 0 = unlimited
//	  timeout: 30s        # 0 = none
//	  parallelism: 1
//	output:
//	  color: auto         # auto | always | never
//	  gap_symbol: "-"
//
// Keys missing from the document keep their Default value. Unknown keys are
// rejected so a misspelt setting never silently falls back to a default.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/nwalign/nw"
	"gopkg.in/yaml.v3"
)

// Colour modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultMaxPaths bounds the listing of the CLI unless configured otherwise.
const DefaultMaxPaths = 100000

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the whole run configuration.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Limits  LimitsConfig  `yaml:"limits"`
	Output  OutputConfig  `yaml:"output"`
}

// ScoringConfig mirrors nw.Scoring. Any integers are legal.
type ScoringConfig struct {
	Match    int `yaml:"match"`
	Mismatch int `yaml:"mismatch"`
	Gap      int `yaml:"gap"`
}

// LimitsConfig bounds the traceback.
type LimitsConfig struct {
	MaxPaths    int           `yaml:"max_paths" validate:"gte=0"`
	Timeout     time.Duration `yaml:"timeout" validate:"gte=0"`
	Parallelism int           `yaml:"parallelism" validate:"gte=0,lte=1024"`
}

// OutputConfig controls presentation.
type OutputConfig struct {
	Color     string `yaml:"color" validate:"oneof=auto always never"`
	GapSymbol string `yaml:"gap_symbol" validate:"len=1"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	s := nw.DefaultScoring()

	return Config{
		Scoring: ScoringConfig{Match: s.Match, Mismatch: s.Mismatch, Gap: s.Gap},
		Limits:  LimitsConfig{MaxPaths: DefaultMaxPaths, Parallelism: 1},
		Output:  OutputConfig{Color: ColorAuto, GapSymbol: string(nw.DefaultGapSymbol)},
	}
}

// Load reads the file at path over Default and validates the result.
// An empty file yields Default.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode is Load for an already opened document.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the struct tags of every section.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Scheme converts the scoring section.
func (c Config) Scheme() nw.Scoring {
	return nw.Scoring{Match: c.Scoring.Match, Mismatch: c.Scoring.Mismatch, Gap: c.Scoring.Gap}
}

// GapRune returns the configured gap symbol, or the default for an invalid one.
func (c Config) GapRune() rune {
	r, size := utf8.DecodeRuneInString(c.Output.GapSymbol)
	if size == 0 || r == utf8.RuneError {
		return nw.DefaultGapSymbol
	}

	return r
}

// Options converts the limits and output sections to nw options.
// The timeout is not among them; it belongs to the caller's context.
func (c Config) Options() []nw.Option {
	return []nw.Option{
		nw.WithMaxPaths(c.Limits.MaxPaths),
		nw.WithParallelism(c.Limits.Parallelism),
		nw.WithGapSymbol(c.GapRune()),
	}
}
