package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wick/diagram"
	"github.com/katalvlaran/wick/space"
	"github.com/katalvlaran/wick/wick"
)

// ErrInvalidConfig marks a configuration that cannot be turned into a
// registry, operators or engine options.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of a configuration file.
type Config struct {
	Spaces    []Space             `yaml:"spaces"`
	Engine    Engine              `yaml:"engine"`
	Operators map[string]Operator `yaml:"operators"`
}

// Space describes one orbital space.
type Space struct {
	Label   string   `yaml:"label"`
	Field   string   `yaml:"field"`
	Kind    string   `yaml:"kind"`
	Indices []string `yaml:"indices"`
}

// Engine holds the contraction engine options. Pointer fields distinguish
// "not set" from false.
type Engine struct {
	MaxCumulant       int   `yaml:"max_cumulant"`
	CanonicalizeGraph *bool `yaml:"canonicalize_graph"`
	SingleThreaded    bool  `yaml:"single_threaded"`
	Workers           int   `yaml:"workers"`
	ConnectedOnly     bool  `yaml:"connected_only"`
}

// Operator is a named operator built from one or more components such as
// "v+ o" or "o->v". Unique components are summed without repetition.
type Operator struct {
	Label      string   `yaml:"label"`
	Components []string `yaml:"components"`
	Unique     bool     `yaml:"unique"`
}

// Default returns the single-reference setup: occupied and unoccupied
// spaces with the usual coupled-cluster operators.
func Default() *Config {
	return &Config{
		Spaces: []Space{
			{Label: "o", Field: "fermion", Kind: "occupied", Indices: []string{"i", "j", "k", "l", "m", "n"}},
			{Label: "v", Field: "fermion", Kind: "unoccupied", Indices: []string{"a", "b", "c", "d", "e", "f"}},
		},
		Operators: map[string]Operator{
			"T1": {Label: "t", Components: []string{"v+ o"}},
			"T2": {Label: "t", Components: []string{"v+ v+ o o"}},
			"F":  {Label: "f", Components: []string{"o+ o", "o+ v", "v+ o", "v+ v"}},
			"V": {Label: "v", Components: []string{
				"o+ o+ o o", "o+ o+ v o", "o+ o+ v v",
				"o+ v+ o o", "o+ v+ v o", "o+ v+ v v",
				"v+ v+ o o", "v+ v+ v o", "v+ v+ v v",
			}},
		},
	}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: Load(%q): %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: Load(%q): %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: Parse: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks the fields that do not need a registry: labels, kinds,
// fields, engine limits and operator shapes. Registry-level conflicts
// (duplicate labels or indices) surface in Registry.
func (c *Config) Validate() error {
	if len(c.Spaces) == 0 {
		return fmt.Errorf("config: no spaces: %w", ErrInvalidConfig)
	}
	for n, s := range c.Spaces {
		if utf8.RuneCountInString(s.Label) != 1 {
			return fmt.Errorf("config: space #%d: label %q must be one character: %w", n, s.Label, ErrInvalidConfig)
		}
		if _, err := space.ParseKind(s.Kind); err != nil {
			return fmt.Errorf("config: space %q: %w: %w", s.Label, ErrInvalidConfig, err)
		}
		if _, err := space.ParseField(s.Field); err != nil {
			return fmt.Errorf("config: space %q: %w: %w", s.Label, ErrInvalidConfig, err)
		}
	}
	if c.Engine.MaxCumulant < 0 {
		return fmt.Errorf("config: engine.max_cumulant %d < 0: %w", c.Engine.MaxCumulant, ErrInvalidConfig)
	}
	if c.Engine.Workers < 0 {
		return fmt.Errorf("config: engine.workers %d < 0: %w", c.Engine.Workers, ErrInvalidConfig)
	}
	for _, name := range c.OperatorNames() {
		op := c.Operators[name]
		if op.Label == "" {
			return fmt.Errorf("config: operator %q: empty label: %w", name, ErrInvalidConfig)
		}
		if len(op.Components) == 0 {
			return fmt.Errorf("config: operator %q: no components: %w", name, ErrInvalidConfig)
		}
	}

	return nil
}

// Registry builds the orbital-space registry in file order.
func (c *Config) Registry() (*space.Registry, error) {
	reg := space.NewRegistry()
	for _, s := range c.Spaces {
		kind, err := space.ParseKind(s.Kind)
		if err != nil {
			return nil, fmt.Errorf("config: Registry: %w: %w", ErrInvalidConfig, err)
		}
		field, err := space.ParseField(s.Field)
		if err != nil {
			return nil, fmt.Errorf("config: Registry: %w: %w", ErrInvalidConfig, err)
		}
		label, _ := utf8.DecodeRuneInString(s.Label)
		if err := reg.Add(label, field, kind, s.Indices); err != nil {
			return nil, fmt.Errorf("config: Registry: %w: %w", ErrInvalidConfig, err)
		}
	}

	return reg, nil
}

// OperatorNames returns the operator names in sorted order.
func (c *Config) OperatorNames() []string {
	names := make([]string, 0, len(c.Operators))
	for name := range c.Operators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// BuildOperators builds every named operator over reg.
func (c *Config) BuildOperators(reg *space.Registry) (map[string]*diagram.OperatorExpression, error) {
	out := make(map[string]*diagram.OperatorExpression, len(c.Operators))
	for _, name := range c.OperatorNames() {
		op := c.Operators[name]
		build := diagram.MakeOperator
		if op.Unique {
			build = diagram.MakeUniqueOperator
		}
		e, err := build(reg, op.Label, op.Components...)
		if err != nil {
			return nil, fmt.Errorf("config: operator %q: %w: %w", name, ErrInvalidConfig, err)
		}
		out[name] = e
	}

	return out, nil
}

// TheoremOptions translates the engine section into wick options.
func (c *Config) TheoremOptions() []wick.Option {
	opts := []wick.Option{
		wick.WithMaxCumulant(c.Engine.MaxCumulant),
		wick.WithSingleThreaded(c.Engine.SingleThreaded),
		wick.WithWorkers(c.Engine.Workers),
		wick.WithConnectedOnly(c.Engine.ConnectedOnly),
	}
	if c.Engine.CanonicalizeGraph != nil {
		opts = append(opts, wick.WithGraphCanonicalization(*c.Engine.CanonicalizeGraph))
	}

	return opts
}
