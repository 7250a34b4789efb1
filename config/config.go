// Package config holds the process-wide knobs of a fuzzing session,
// generalizing dualnet.Config's plain-struct-plus-IsValid pattern from the
// teacher repo to the table in spec.md section 6. Values are set once at
// startup and passed down as a read-only record rather than kept as mutable
// globals.
package config

import (
	"math"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// ScoreFunction selects the scoring policy used by node and seed scoring.
type ScoreFunction uint8

const (
	// UCT scores nodes/seeds with the UCT1 exploitation+exploration formula.
	UCT ScoreFunction = iota
	// Random returns a uniformly distributed score from the shared RNG,
	// a testing aid per spec.md section 4.2.
	Random
)

func (f ScoreFunction) String() string {
	if f == Random {
		return "Random"
	}
	return "UCT"
}

// EnvPrefix is the environment variable prefix that selects the variables
// Load reads; normalizeEnvKey strips it and lowercases the rest to match a
// Config field, e.g. AFLNET_LEGION_RHO -> "rho".
const EnvPrefix = "AFLNET_LEGION_"

// LogPathEnvVar is the environment variable Initialisation reads the log
// sink path from.
const LogPathEnvVar = "AFLNET_LEGION_LOG"

// Config is the process-wide configuration table from spec.md section 6.
type Config struct {
	RHO           float64       `koanf:"rho"`
	MinSamples    uint32        `koanf:"min_samples"`
	MaxSamples    uint32        `koanf:"max_samples"`
	ConexTimeout  uint32        `koanf:"conex_timeout"`
	Persistent    bool          `koanf:"persistent"`
	CoverageOnly  bool          `koanf:"coverage_only"`
	ScoreFunction ScoreFunction `koanf:"-"`
}

// Default returns the documented defaults of spec.md section 6.
func Default() Config {
	return Config{
		RHO:           math.Sqrt2,
		MinSamples:    1,
		MaxSamples:    100,
		ConexTimeout:  0,
		Persistent:    false,
		CoverageOnly:  true,
		ScoreFunction: UCT,
	}
}

// Validate reports whether the config is usable, mirroring
// dualnet.Config.IsValid's style but returning a wrapped error so callers
// can report exactly what is wrong.
func (c Config) Validate() error {
	if c.RHO < 0 {
		return errors.New("config: RHO must be non-negative")
	}
	if c.MinSamples > c.MaxSamples {
		return errors.New("config: MIN_SAMPLES must not exceed MAX_SAMPLES")
	}
	return nil
}

// Load builds a Config by layering an optional YAML file under environment
// variables prefixed with AFLNET_LEGION_, the way storbeck-augustus loads
// its runtime config with koanf. path may be empty, in which case only the
// environment and the documented defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, errors.Wrapf(err, "config: loading %s", path)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return cfg, errors.Wrap(err, "config: loading environment")
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, errors.Wrap(err, "config: unmarshalling")
	}

	if k.Exists("score_function") {
		switch k.String("score_function") {
		case "random", "Random", "RANDOM":
			cfg.ScoreFunction = Random
		default:
			cfg.ScoreFunction = UCT
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func normalizeEnvKey(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s[len(EnvPrefix):] {
		if r >= 'A' && r <= 'Z' {
			out = append(out, byte(r-'A'+'a'))
		} else {
			out = append(out, byte(r))
		}
	}
	return string(out)
}
