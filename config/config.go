// Package config loads valvenet run settings from YAML.
//
// A config file looks like:
//
//	start: AA
//	budget: 30
//	team:
//	  agents: 2
//	  budget: 26
//	  members:          # optional, overrides agents
//	    - start: AA
//	    - start: HH
//	      budget: 20
//	distance:
//	  method: bfs       # or floyd-warshall
//
// Missing keys keep the values of Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/search"
)

// ErrInvalidConfig is returned when a config decodes but makes no sense.
var ErrInvalidConfig = errors.New("config: invalid config")

// Config is a full run configuration.
type Config struct {
	Start    string   `yaml:"start"`
	Budget   int      `yaml:"budget"`
	Team     Team     `yaml:"team"`
	Distance Distance `yaml:"distance"`
}

// Team configures the multi-agent search.
type Team struct {
	Agents  int      `yaml:"agents"`
	Budget  int      `yaml:"budget"`
	Members []Member `yaml:"members"`
}

// Member overrides one agent. Empty Start uses Config.Start; a missing
// Budget uses Team.Budget.
type Member struct {
	Start  string `yaml:"start"`
	Budget *int   `yaml:"budget"`
}

// Distance configures the distance precomputation.
type Distance struct {
	Method string `yaml:"method"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Start:    search.DefaultStart,
		Budget:   30,
		Team:     Team{Agents: 2, Budget: 26},
		Distance: Distance{Method: distance.MethodBFS.String()},
	}
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks budgets, the team size and the distance method.
func (c Config) Validate() error {
	if c.Start == "" {
		return fmt.Errorf("%w: empty start valve", ErrInvalidConfig)
	}
	if c.Budget < 0 {
		return fmt.Errorf("%w: negative budget %d", ErrInvalidConfig, c.Budget)
	}
	if c.Team.Budget < 0 {
		return fmt.Errorf("%w: negative team budget %d", ErrInvalidConfig, c.Team.Budget)
	}
	if len(c.Team.Members) == 0 && c.Team.Agents < 1 {
		return fmt.Errorf("%w: team needs at least one agent, got %d", ErrInvalidConfig, c.Team.Agents)
	}
	for i, m := range c.Team.Members {
		if m.Budget != nil && *m.Budget < 0 {
			return fmt.Errorf("%w: member %d: negative budget %d", ErrInvalidConfig, i, *m.Budget)
		}
	}
	if _, err := distance.ParseMethod(c.Distance.Method); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Method returns the configured distance method. It assumes Validate passed.
func (c Config) Method() distance.Method {
	m, _ := distance.ParseMethod(c.Distance.Method)
	return m
}

// Agents expands the team section into one Agent per member.
func (c Config) Agents() []search.Agent {
	if len(c.Team.Members) == 0 {
		out := make([]search.Agent, c.Team.Agents)
		for i := range out {
			out[i] = search.Agent{Start: c.Start, Budget: c.Team.Budget}
		}
		return out
	}
	out := make([]search.Agent, len(c.Team.Members))
	for i, m := range c.Team.Members {
		out[i] = search.Agent{Start: m.Start, Budget: c.Team.Budget}
		if out[i].Start == "" {
			out[i].Start = c.Start
		}
		if m.Budget != nil {
			out[i].Budget = *m.Budget
		}
	}
	return out
}
