package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"taxalign/internal/constraint"
	"taxalign/internal/node"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// DefaultMaxRounds bounds runs whose file does not set max_rounds.
const DefaultMaxRounds = 100

// Config holds the alignment settings.
type Config struct {
	Version     string           `yaml:"version"`
	Constraints []ConstraintSpec `yaml:"constraints" validate:"required,min=1,dive"`
	// Heuristic scales combined hyper+hypo contributions.
	Heuristic float64 `yaml:"heuristic" validate:"gte=0"`
	// TieEpsilon is the tolerance for weight comparisons.
	TieEpsilon float64 `yaml:"tie_epsilon" validate:"gt=0"`
	// MaxRounds caps relaxation. Zero means unbounded.
	MaxRounds int `yaml:"max_rounds" validate:"gte=0"`
	// Workers is the scoring parallelism.
	Workers int `yaml:"workers" validate:"gte=0,lte=1024"`
	// Suggestions is how many lemma suggestions accompany an unmapped synset.
	Suggestions int `yaml:"suggestions" validate:"gte=0"`
}

// ConstraintSpec enables one HH type with a weight. The weight may be
// omitted only when the type is disabled.
type ConstraintSpec struct {
	Type     string   `yaml:"type" validate:"required,hhtype"`
	Weight   *float64 `yaml:"weight,omitempty" validate:"omitempty,gte=0"`
	Disabled bool     `yaml:"disabled,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("hhtype", validateHHType)
}

func validateHHType(fl validator.FieldLevel) bool {
	_, err := constraint.ParseHHType(fl.Field().String())
	return err == nil
}

// Default returns every HH type enabled with weight 1.
func Default() Config {
	all := constraint.AllHHTypes()
	specs := make([]ConstraintSpec, len(all))

	for i, t := range all {
		w := 1.0
		specs[i] = ConstraintSpec{Type: t.Code(), Weight: &w}
	}

	return Config{
		Version:     "1",
		Constraints: specs,
		Heuristic:   constraint.DefaultHeuristic,
		TieEpsilon:  node.DefaultEpsilon,
		MaxRounds:   DefaultMaxRounds,
		Workers:     1,
		Suggestions: 3,
	}
}

// LoadFile loads and validates a YAML config file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyDefaults fills in values that YAML may have zeroed.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.TieEpsilon == 0 {
		cfg.TieEpsilon = node.DefaultEpsilon
	}
}

// Validate checks field constraints and rejects duplicate types.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrInvalid, describe(verrs))
		}

		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	_, err := c.WeightedTypes()

	return err
}

// WeightedTypes returns the enabled constraints in file order.
func (c Config) WeightedTypes() ([]constraint.WeightedType, error) {
	seen := map[constraint.HHType]bool{}
	out := make([]constraint.WeightedType, 0, len(c.Constraints))

	for i, spec := range c.Constraints {
		t, err := constraint.ParseHHType(spec.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: constraints[%d]: %w", ErrInvalid, i, err)
		}

		if seen[t] {
			return nil, fmt.Errorf("%w: constraints[%d]: duplicate type %s", ErrInvalid, i, t.Code())
		}

		seen[t] = true

		if spec.Disabled {
			continue
		}

		if spec.Weight == nil {
			return nil, fmt.Errorf("%w: constraints[%d]: %s has no weight", ErrInvalid, i, t.Code())
		}

		out = append(out, constraint.WeightedType{Type: t, Weight: *spec.Weight})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no enabled constraints", ErrInvalid)
	}

	return out, nil
}

// Marshal serializes a Config to YAML.
func Marshal(c Config) ([]byte, error) {
	return yaml.Marshal(c)
}

func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))

	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")

		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}

	return strings.Join(msgs, "; ")
}
