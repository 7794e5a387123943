package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/springlab/internal/spring"
)

const (
	DefaultDt       = 1.0 / 120.0
	DefaultDuration = 10.0
	DefaultX        = 0.2
)

type Config struct {
	Mode       string          `yaml:"mode"`
	Integrator string          `yaml:"integrator"`
	Dt         float64         `yaml:"dt"`
	Duration   float64         `yaml:"duration"`
	Params     ParamsConfig    `yaml:"params"`
	InitState  InitStateConfig `yaml:"init_state"`
}

type ParamsConfig struct {
	Mass          float64 `yaml:"mass"`
	Stiffness     float64 `yaml:"stiffness"`
	Damping       float64 `yaml:"damping"`
	Gravity       float64 `yaml:"gravity"`
	NaturalLength float64 `yaml:"natural_length"`
}

type InitStateConfig struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
}

func DefaultConfig() *Config {
	p := spring.DefaultParams()
	return &Config{
		Mode:       p.Mode.String(),
		Integrator: "rk4",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Params: ParamsConfig{
			Mass:          p.Mass,
			Stiffness:     p.Stiffness,
			Damping:       p.Damping,
			Gravity:       p.Gravity,
			NaturalLength: p.NaturalLength,
		},
		InitState: InitStateConfig{
			X: DefaultX,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SpringParams converts the file representation into a validated
// parameter set.
func (c *Config) SpringParams() (spring.Params, error) {
	mode, err := spring.ParseMode(c.Mode)
	if err != nil {
		return spring.Params{}, err
	}
	p := spring.Params{
		Mass:          c.Params.Mass,
		Stiffness:     c.Params.Stiffness,
		Damping:       c.Params.Damping,
		Gravity:       c.Params.Gravity,
		NaturalLength: c.Params.NaturalLength,
		Mode:          mode,
	}
	return p, p.Validate()
}

// GetInitState builds the initial state vector for the configured mode.
func (c *Config) GetInitState() []float64 {
	mode, err := spring.ParseMode(c.Mode)
	if err == nil && mode == spring.ModeVector {
		return []float64{c.InitState.X, c.InitState.Y, c.InitState.VX, c.InitState.VY}
	}
	return []float64{c.InitState.X, c.InitState.VX}
}
