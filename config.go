package schedq

import "fmt"

// Config is a serialisable representation of the service configuration. It
// can be populated from JSON, YAML, environment variables, etc. The
// zero-value is useful – all nested fields inherit their package defaults.

type Config struct {
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`
	Bench     BenchConfig     `json:"bench" yaml:"bench"`
}

type SchedulerConfig struct {
	// MaxTime is the default inclusive simulation horizon used when a task
	// set does not carry its own.
	MaxTime int `json:"maxTime" yaml:"maxTime"`
}

type BenchConfig struct {
	Trials int   `json:"trials" yaml:"trials"`
	Sizes  []int `json:"sizes,omitempty" yaml:"sizes,omitempty"`
}

// DefaultConfig returns a Config populated with the package defaults.
// Callers may modify the returned struct before passing it to New.
func DefaultConfig() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			MaxTime: 50,
		},
		Bench: BenchConfig{
			Trials: 7,
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Scheduler.MaxTime < 0 {
		return fmt.Errorf("scheduler.maxTime must be >= 0")
	}
	if c.Bench.Trials <= 0 {
		return fmt.Errorf("bench.trials must be > 0")
	}
	for _, size := range c.Bench.Sizes {
		if size <= 0 {
			return fmt.Errorf("bench.sizes entries must be > 0")
		}
	}
	return nil
}
